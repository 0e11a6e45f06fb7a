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

package modalflag

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const modeSeparator = "/"

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Modes provides an easy way of handling command line arguments.
type Modes struct {
	// where to print help messages. defaults to os.Stdout
	Output io.Writer

	flags *flag.FlagSet

	// output of the flag package is captured and amended before it is
	// written to Output
	captured bytes.Buffer

	args    []string
	argsIdx int

	// sub-modes of the current mode and the path of modes selected so far
	subModes []string
	path     []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a description of all modes selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes instance with the command line arguments. It
// also calls NewMode().
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(&md.captured)
	md.additionalHelp = ""
}

// AddSubModes to the current mode. The first sub-mode is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flags and sub-modes when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parse the current mode's flags from the remaining arguments.
func (md *Modes) Parse() (ParseResult, error) {
	md.captured.Reset()

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}

		// unrecognised flags are left for the default sub-mode
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// move the argument index past the flags that have been parsed
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that have not been consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument that has not been consumed by Parse().
// An empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	a := md.RemainingArgs()
	if i < 0 || i >= len(a) {
		return ""
	}
	return a[i]
}

func (md *Modes) help() {
	out := md.Output
	if out == nil {
		out = os.Stdout
	}

	// the flag package has already written its usage message. the first line
	// is replaced with a banner that includes the current mode
	lines := strings.SplitN(md.captured.String(), "\n", 2)
	flags := ""
	if len(lines) > 1 {
		flags = lines[1]
	}

	if flags == "" && len(md.subModes) == 0 && md.additionalHelp == "" {
		if p := md.Path(); p != "" {
			fmt.Fprintf(out, "No help available for %s mode\n", p)
		} else {
			fmt.Fprintln(out, "No help available")
		}
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(out, "Usage of %s mode:\n", p)
	} else {
		fmt.Fprintln(out, "Usage:")
	}

	io.WriteString(out, flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(out, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(out, "\n%s\n", md.additionalHelp)
	}
}

// AddBool flag for the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddFloat64 flag for the current mode.
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
