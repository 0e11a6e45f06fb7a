// This file is part of ChipVoice.
//
// ChipVoice is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChipVoice is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChipVoice.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each with its own set of flags.
//
// The arguments are given to NewArgs() and then Parse() is called with no
// arguments. Flags are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print log entries")
//	p, err := md.Parse()
//
// Sub-modes are added with AddSubModes(). The first sub-mode is the default.
// After Parse(), the selected mode is returned by Mode(). If the first
// argument after the flags is the name of a sub-mode then that mode is
// selected and the argument is consumed. Mode names are case insensitive and
// are always reported in upper case.
//
//	md.AddSubModes("RENDER", "INSPECT")
//	md.Parse()
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		rate := md.AddInt("rate", 44100, "sample rate")
//		md.Parse()
//		...
//	}
//
// Each call to NewMode() starts a new set of flags, which are parsed from the
// arguments remaining after the previous mode was selected. The modes that
// have been selected are recorded and returned by Path(), separated by a
// slash.
//
// If the flags given to a Parse() call with sub-modes are not recognised then
// the default sub-mode is selected and the flags are left for the next call to
// Parse(). This allows the flags of the default mode to be used without the
// name of the mode.
//
// The -help flag is handled by Parse(), which prints the flags and sub-modes of
// the current mode to the Output writer and returns ParseHelp.
package modalflag
