// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp_test

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/ulikunitz/lzp"
)

func ExampleWriter() {
	const text = "The quick brown fox jumps over the lazy dog.\n"
	var buf bytes.Buffer

	// compress text
	w, err := lzp.NewWriterConfig(&buf,
		lzp.WriterConfig{Mode: lzp.ModeRank})
	if err != nil {
		log.Fatalf("NewWriterConfig error %s", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		log.Fatalf("WriteString error %s", err)
	}
	if err := w.Close(); err != nil {
		log.Fatalf("w.Close error %s", err)
	}

	// decompress buffer and write output to stdout
	r, err := lzp.NewReader(&buf)
	if err != nil {
		log.Fatalf("NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}

	// Output:
	// The quick brown fox jumps over the lazy dog.
}

func ExampleCompress() {
	z, err := lzp.Compress(nil, lzp.ModeRaw)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(z[:3])
	os.Stdout.WriteString("\n")

	// Output:
	// LZP
}
