// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/lzp"
	"github.com/ulikunitz/lzp/internal/xlog"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args []string
		want command
		ok   bool
	}{
		{[]string{"compress", "a", "b"},
			command{mode: lzp.ModeRaw, in: "a", out: "b"}, true},
		{[]string{"compress", "2", "a", "b"},
			command{mode: lzp.ModeRank, in: "a", out: "b"}, true},
		{[]string{"c", "1", "a", "b"},
			command{mode: lzp.ModeRaw, in: "a", out: "b"}, true},
		{[]string{"c2", "a", "b"},
			command{mode: lzp.ModeRank, in: "a", out: "b"}, true},
		{[]string{"c1", "-", "-"},
			command{mode: lzp.ModeRaw, in: "-", out: "-"}, true},
		{[]string{"decompress", "a", "b"},
			command{decompress: true, in: "a", out: "b"}, true},
		{[]string{"d", "a", "b"},
			command{decompress: true, in: "a", out: "b"}, true},
		{nil, command{}, false},
		{[]string{"compress", "3", "a", "b"}, command{}, false},
		{[]string{"compress", "a"}, command{}, false},
		{[]string{"compress", "2", "data.txt"}, command{}, false},
		{[]string{"c", "1", "data.txt"}, command{}, false},
		{[]string{"c2", "1", "a", "b"}, command{}, false},
		{[]string{"decompress", "1", "a", "b"}, command{}, false},
		{[]string{"d", "a"}, command{}, false},
		{[]string{"x", "a", "b"}, command{}, false},
		{[]string{"c", "a", "a"}, command{}, false},
	}
	for _, tc := range tests {
		c, err := parseCommand(tc.args)
		if !tc.ok {
			if !errors.Is(err, errUsage) {
				t.Errorf("parseCommand(%q) error %v; want %v",
					tc.args, err, errUsage)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCommand(%q) error %s", tc.args, err)
			continue
		}
		if c != tc.want {
			t.Errorf("parseCommand(%q) = %+v; want %+v", tc.args,
				c, tc.want)
		}
	}
}

func TestSavedPercent(t *testing.T) {
	tests := []struct {
		in, out int64
		want    float64
	}{
		{0, 6, 0},
		{100, 25, 75},
		{100, 100, 0},
		{100, 150, -50},
	}
	for _, tc := range tests {
		if g := savedPercent(tc.in, tc.out); g != tc.want {
			t.Errorf("savedPercent(%d, %d) = %g; want %g",
				tc.in, tc.out, g, tc.want)
		}
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0666); err != nil {
		t.Fatalf("os.WriteFile(%q) error %s", path, err)
	}
}

func TestRun(t *testing.T) {
	xlog.SetOutput(new(bytes.Buffer))
	defer xlog.SetOutput(os.Stderr)

	dir := t.TempDir()
	data := make([]byte, 3*chunkSize/2)
	rand.New(rand.NewSource(1)).Read(data[:len(data)/2])
	in := filepath.Join(dir, "in")
	writeFile(t, in, data)

	for _, m := range []lzp.Mode{lzp.ModeRaw, lzp.ModeRank} {
		z := filepath.Join(dir, m.String()+".lzp")
		out := filepath.Join(dir, m.String()+".out")
		err := run(command{mode: m, in: in, out: z}, &options{})
		if err != nil {
			t.Fatalf("run compress error %s", err)
		}
		if _, err = os.Stat(z + ".pack"); !os.IsNotExist(err) {
			t.Fatalf("temporary file %s.pack exists", z)
		}
		err = run(command{decompress: true, in: z, out: out},
			&options{})
		if err != nil {
			t.Fatalf("run decompress error %s", err)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("os.ReadFile error %s", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("%s: decompressed file differs", m)
		}
		p, err := os.ReadFile(z)
		if err != nil {
			t.Fatalf("os.ReadFile error %s", err)
		}
		if p[3] != byte(m) {
			t.Fatalf("mode byte %d; want %d", p[3], m)
		}

		// output exists
		err = run(command{decompress: true, in: z, out: out},
			&options{})
		if err == nil {
			t.Fatalf("run into existing file succeeded")
		}
		err = run(command{decompress: true, in: z, out: out},
			&options{force: true})
		if err != nil {
			t.Fatalf("run with force error %s", err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	xlog.SetOutput(new(bytes.Buffer))
	defer xlog.SetOutput(os.Stderr)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.lzp")
	writeFile(t, bad, []byte("LZP\x07data"))
	out := filepath.Join(dir, "out")
	err := run(command{decompress: true, in: bad, out: out}, &options{})
	if !errors.Is(err, lzp.ErrFormat) {
		t.Fatalf("run error %v; want %v", err, lzp.ErrFormat)
	}
	for _, p := range []string{out, out + ".unpack"} {
		if _, err = os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("file %s exists after failure", p)
		}
	}

	truncated := filepath.Join(dir, "truncated.lzp")
	writeFile(t, truncated, []byte("LZP\x02"))
	err = run(command{decompress: true, in: truncated, out: out},
		&options{})
	if err != lzp.ErrUnexpectedEOS {
		t.Fatalf("run error %v; want %v", err, lzp.ErrUnexpectedEOS)
	}

	missing := filepath.Join(dir, "missing")
	err = run(command{mode: lzp.ModeRaw, in: missing, out: out},
		&options{})
	if err == nil {
		t.Fatalf("run with missing input succeeded")
	}
	var upe *userPathError
	if !errors.As(userError(err), &upe) || upe.Path != missing {
		t.Fatalf("userError(%v) = %v; want path error for %s", err,
			userError(err), missing)
	}
	if err = run(command{mode: lzp.ModeRaw, in: dir, out: out},
		&options{}); err == nil {
		t.Fatalf("run with directory input succeeded")
	}
}
