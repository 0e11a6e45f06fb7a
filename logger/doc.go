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

// Package logger is the central log for ChipVoice. Entries are made up of a
// tag and a detail. The tag should be short and name the part of the program
// making the entry.
//
//	logger.Logf(logger.Allow, "render", "%d samples clamped", n)
//
// The first argument to Log() and Logf() is a Permission. If the Permission
// does not allow logging then the entry is discarded. Allow is a Permission
// that always allows logging.
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count.
//
// The log is not echoed anywhere by default. Use SetEcho() to send new
// entries to an io.Writer as they are made. The contents of the log can be
// written out at any time with Write() or Tail().
package logger
