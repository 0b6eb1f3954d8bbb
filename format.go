// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

/*** Header ***/

// headerMagic stores the magic bytes of the header.
var headerMagic = []byte{'L', 'Z', 'P'}

// headerLen is the length of the header: the magic and the mode byte.
const headerLen = 4

// Mode selects the coding of literals. It is stored in the header and fixed
// for the whole stream.
type Mode byte

// Modes supported by the package.
const (
	// ModeRaw writes literals as 8-bit values.
	ModeRaw Mode = 1
	// ModeRank writes literals as variable-length coded ranks in an
	// adaptive move-to-front list.
	ModeRank Mode = 2
)

// String returns a readable name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeRank:
		return "rank"
	default:
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
}

// Verify returns an error if the mode is not supported.
func (m Mode) Verify() error {
	switch m {
	case ModeRaw, ModeRank:
		return nil
	default:
		return fmt.Errorf("lzp: unsupported mode %d", byte(m))
	}
}

// Errors returned while decoding a stream.
var (
	// ErrFormat indicates an invalid header magic or mode byte.
	ErrFormat = errors.New("lzp: invalid format")
	// ErrUnexpectedEOS indicates that the compressed data ended before the
	// end-of-stream marker.
	ErrUnexpectedEOS = errors.New("lzp: unexpected end of stream")
	// ErrCorrupt indicates a code that no encoder can produce.
	ErrCorrupt = errors.New("lzp: corrupt data")
)

// writeHeader writes the stream header.
func writeHeader(w io.Writer, m Mode) error {
	if err := m.Verify(); err != nil {
		return err
	}
	p := make([]byte, 0, headerLen)
	p = append(p, headerMagic...)
	p = append(p, byte(m))
	_, err := w.Write(p)
	return err
}

// readHeader reads the stream header and returns the mode.
func readHeader(r io.Reader) (m Mode, err error) {
	p := make([]byte, headerLen)
	if _, err = io.ReadFull(r, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrUnexpectedEOS
		}
		return 0, err
	}
	if !bytes.Equal(p[:len(headerMagic)], headerMagic) {
		return 0, fmt.Errorf("%w: header magic %q", ErrFormat,
			p[:len(headerMagic)])
	}
	m = Mode(p[len(headerMagic)])
	if m.Verify() != nil {
		return 0, fmt.Errorf("%w: mode byte %d", ErrFormat, byte(m))
	}
	return m, nil
}
