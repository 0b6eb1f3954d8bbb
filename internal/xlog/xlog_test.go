// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xlog

import (
	"bytes"
	"os"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "lzp: ", Lnodebug)
	l.Debugf("debug %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug output %q not suppressed", buf.String())
	}
	l.Printf("print %d", 2)
	if got, want := buf.String(), "lzp: print 2\n"; got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
	buf.Reset()
	l.SetFlags(Lnoprint | Lnodebug)
	l.Print("print")
	l.Warn("warn")
	if got, want := buf.String(), "lzp: warn\n"; got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
	buf.Reset()
	l.SetFlags(0)
	l.Debug("debug")
	if got, want := buf.String(), "lzp: debug\n"; got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
	buf.Reset()
	l.SetFlags(Lnowarn)
	l.Warnf("warn %s", "x")
	if buf.Len() != 0 {
		t.Fatalf("warning %q not suppressed", buf.String())
	}
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	flags := Flags()
	defer func() {
		SetFlags(flags)
		SetOutput(os.Stderr)
		SetPrefix("")
	}()
	SetOutput(&buf)
	SetPrefix("x: ")
	SetFlags(Lnodebug)
	Debugf("hidden")
	Printf("shown %d", 1)
	if got, want := buf.String(), "x: shown 1\n"; got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
}
