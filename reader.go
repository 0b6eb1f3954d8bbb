// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"bufio"
	"errors"
	"io"

	"github.com/ulikunitz/lzp/internal/bitio"
	"github.com/ulikunitz/lzp/internal/xlog"
)

// byteReader combines io.Reader and io.ByteReader. A bufio.Reader
// implements it.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// Reader decompresses an lzp stream. The mode is always taken from the
// stream header.
type Reader struct {
	mode Mode
	dec  *decoder
	err  error
}

// NewReader reads the header of the stream and creates a reader. The
// function returns an error wrapping ErrFormat for an invalid header. No
// data beyond the header is read.
//
// If r doesn't support io.ByteReader it will be wrapped by a bufio.Reader,
// which may read beyond the end of the compressed stream.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, errors.New("lzp: reader must not be nil")
	}
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	mode, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	z := &Reader{
		mode: mode,
		dec:  newDecoder(bitio.NewReader(br), mode),
	}
	return z, nil
}

// Mode returns the mode stored in the stream header.
func (z *Reader) Mode() Mode { return z.mode }

// Read decompresses data into p. It returns io.EOF after the complete stream
// has been read and ErrUnexpectedEOS if the compressed data is truncated.
func (z *Reader) Read(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	n, err = z.dec.read(p)
	if err != nil {
		z.err = err
		if err == io.EOF {
			s := z.dec.stats
			xlog.Debugf("lzp: %s mode: %d compressed bytes,"+
				" %d bytes, %d matched in %d runs,"+
				" %d literals", z.mode,
				headerLen+z.dec.br.Count(), s.bytes,
				s.matched, s.runs, s.literals)
		}
	}
	return n, err
}
