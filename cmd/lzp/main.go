// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command lzp compresses and decompresses single files in the lzp format.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/ulikunitz/lzp"
	"github.com/ulikunitz/lzp/internal/xlog"
)

const usageStr = `Usage: lzp [OPTION]... compress [1|2] INFILE OUTFILE
  or:  lzp [OPTION]... decompress INFILE OUTFILE
Compress or decompress INFILE into OUTFILE.

Mode 1 writes literals as raw bytes, mode 2 as ranks of an adaptive
move-to-front list. The default mode is 1. The mode of a compressed file is
read from its header. The commands may be abbreviated as c, c1, c2 and d.
A file name of - denotes standard input or standard output.

  -f, --force    overwrite the output file
  -h, --help     give this help
  -q, --quiet    suppress all messages except errors
  -v, --verbose  verbose mode
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// command describes a single invocation.
type command struct {
	decompress bool
	mode       lzp.Mode
	in, out    string
}

// errUsage is wrapped by all errors for invalid command lines.
var errUsage = errors.New("usage error")

func usageErrorf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, a...))
}

// parseMode parses a mode argument.
func parseMode(s string) (m lzp.Mode, ok bool) {
	switch s {
	case "1":
		return lzp.ModeRaw, true
	case "2":
		return lzp.ModeRank, true
	}
	return 0, false
}

// parseCommand parses the positional arguments. It doesn't access any
// file.
func parseCommand(args []string) (c command, err error) {
	if len(args) == 0 {
		return c, usageErrorf("command missing")
	}
	name, args := args[0], args[1:]
	switch name {
	case "compress", "c":
		c.mode = lzp.ModeRaw
		switch len(args) {
		case 3:
			var ok bool
			if c.mode, ok = parseMode(args[0]); !ok {
				return c, usageErrorf("invalid mode %q",
					args[0])
			}
			args = args[1:]
		case 2:
			// a mode without OUTFILE; "2" is not taken as INFILE
			if _, ok := parseMode(args[0]); ok {
				return c, usageErrorf(
					"%s requires INFILE and OUTFILE", name)
			}
		}
	case "c1", "c2":
		c.mode, _ = parseMode(name[1:])
	case "decompress", "d":
		c.decompress = true
		if len(args) == 3 {
			if _, ok := parseMode(args[0]); ok {
				return c, usageErrorf(
					"decompress takes the mode from the file header")
			}
		}
	default:
		return c, usageErrorf("unknown command %q", name)
	}
	if len(args) != 2 {
		return c, usageErrorf("%s requires INFILE and OUTFILE", name)
	}
	c.in, c.out = args[0], args[1]
	if c.in == "" || c.out == "" {
		return c, usageErrorf("empty file name")
	}
	if c.in == c.out && c.in != "-" {
		return c, usageErrorf("INFILE and OUTFILE are the same")
	}
	return c, nil
}

func main() {
	// setup logger
	xlog.SetPrefix("lzp: ")
	xlog.SetFlags(xlog.Lnodebug)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet("lzp", pflag.ExitOnError)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(2) }
	var (
		help    = pflag.BoolP("help", "h", false, "")
		force   = pflag.BoolP("force", "f", false, "")
		quiet   = pflag.BoolP("quiet", "q", false, "")
		verbose = pflag.BoolP("verbose", "v", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	switch {
	case *quiet:
		xlog.SetFlags(xlog.Lnodebug | xlog.Lnoprint | xlog.Lnowarn)
	case *verbose:
		xlog.SetFlags(0)
	}

	c, err := parseCommand(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzp: %s\nfor help, type lzp -h\n", err)
		os.Exit(2)
	}
	if err = run(c, &options{force: *force}); err != nil {
		xlog.Fatal(userError(err))
	}
}
