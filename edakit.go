// This file is part of edakit.
//
// edakit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edakit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with edakit.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edakit/edakit/logger"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/modalflag"
	"github.com/edakit/edakit/session"
	"github.com/edakit/edakit/statsview"
	"github.com/edakit/edakit/version"
)

// launch the stats server once the binary has been loaded
var statsServer bool

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DUMP", "REGIONS", "SYMBOLS", "VERSION")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	statsServer = *stats

	err = launch(md, os.Stdout)
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// launch the mode selected by the most recent call to md.Parse().
func launch(md *modalflag.Modes, output io.Writer) error {
	switch md.Mode() {
	case "DUMP":
		return dump(md, output)
	case "REGIONS":
		return regions(md, output)
	case "SYMBOLS":
		return listSymbols(md, output)
	case "VERSION":
		io.WriteString(output, fmt.Sprintf("%s\n", version.Version()))
	}
	return nil
}

// parseAddress accepts addresses in hex (with 0x prefix), octal or decimal.
func parseAddress(s string) (memory.Address, error) {
	a, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return memory.Address(a), nil
}

// common flags for every mode that loads a binary.
type loadFlags struct {
	base *string
	idc  *string
	log  *bool
}

func addLoadFlags(md *modalflag.Modes) loadFlags {
	return loadFlags{
		base: md.AddString("base", "0", "address at which to load the binary"),
		idc:  md.AddString("idc", "", "IDC script to import names from"),
		log:  md.AddBool("log", false, "echo log to stderr"),
	}
}

// prepare a new session from the parsed flags and the binary named by the
// first remaining argument.
func (lf loadFlags) prepare(md *modalflag.Modes, output io.Writer) (*session.Session, memory.Address, error) {
	if *lf.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) == 0 {
		return nil, 0, fmt.Errorf("binary required for %s mode", md)
	}

	base, err := parseAddress(*lf.base)
	if err != nil {
		return nil, 0, err
	}

	s := session.NewSession()
	err = s.LoadBinary(md.GetArg(0), base)
	if err != nil {
		return nil, 0, err
	}

	if *lf.idc != "" {
		_, err = s.ImportNames(*lf.idc)
		if err != nil {
			return nil, 0, err
		}
	}

	if statsServer {
		statsview.Launch(output, s.Mem)
	}

	return s, base, nil
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	lf := addLoadFlags(md)
	length := md.AddInt("len", 0x40, "number of bytes to dump")
	changelist := md.AddInt("cl", 0, "changelist to dump")
	md.AdditionalHelp("arguments: binary [address]")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 2 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *changelist < 0 || uint64(*changelist) > math.MaxUint32 {
		return fmt.Errorf("invalid changelist (%d)", *changelist)
	}

	s, address, err := lf.prepare(md, output)
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) == 2 {
		address, err = parseAddress(md.GetArg(1))
		if err != nil {
			return err
		}
	}

	io.WriteString(output, fmt.Sprintf("%s:\n", s.Symbols.GetName(address)))
	s.Mem.ConsoleDump(output, address, *length, memory.Changelist(*changelist))

	return nil
}

func regions(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	lf := addLoadFlags(md)
	graph := md.AddBool("graph", false, "write graphviz representation of memory instead")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, _, err := lf.prepare(md, output)
	if err != nil {
		return err
	}

	if *graph {
		s.Mem.Visualise(output)
		return nil
	}
	s.Mem.DebugPrint(output)

	return nil
}

func listSymbols(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	lf := addLoadFlags(md)
	funcs := md.AddString("func", "", "comma separated list of function start addresses")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, _, err := lf.prepare(md, output)
	if err != nil {
		return err
	}

	if *funcs != "" {
		for _, f := range strings.Split(*funcs, ",") {
			a, err := parseAddress(strings.TrimSpace(f))
			if err != nil {
				return err
			}
			s.Functions.AddFunction(a)
		}
	}

	s.Symbols.List(output)

	return nil
}
