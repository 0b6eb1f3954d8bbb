// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"bytes"
	"io"
)

// Compress returns the compressed stream for p using the given mode.
func Compress(p []byte, m Mode) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriterConfig(&buf, WriterConfig{Mode: m})
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(p); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses the complete stream in p.
func Decompress(p []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(p))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
