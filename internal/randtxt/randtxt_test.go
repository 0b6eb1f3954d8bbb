// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package randtxt

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestReader(t *testing.T) {
	const n = 1 << 14
	var a, b bytes.Buffer
	if _, err := io.CopyN(&a, NewReader(rand.NewSource(41)), n); err != nil {
		t.Fatalf("io.CopyN error %s", err)
	}
	if _, err := io.CopyN(&b, NewReader(rand.NewSource(41)), n); err != nil {
		t.Fatalf("io.CopyN error %s", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("same seed produced different text")
	}
	if !bytes.Contains(a.Bytes(), []byte("the ")) {
		t.Fatalf("text doesn't contain the most frequent word")
	}
	for i, c := range a.Bytes() {
		ok := c == ' ' || c == '.' || c == '\n' ||
			('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
		if !ok {
			t.Fatalf("unexpected byte %q at offset %d", c, i)
		}
	}
}
