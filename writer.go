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

// WriterConfig describes the parameters of an lzp writer.
type WriterConfig struct {
	// Mode selects the literal coding (default: ModeRaw).
	Mode Mode
}

// SetDefaults replaces zero values with default values.
func (c *WriterConfig) SetDefaults() {
	if c.Mode == 0 {
		c.Mode = ModeRaw
	}
}

// Verify checks the configuration for errors.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("lzp: writer configuration is nil")
	}
	return c.Mode.Verify()
}

// errClosed indicates a write to a closed writer.
var errClosed = errors.New("lzp: writer is closed")

// Writer compresses data written to it. It must be closed to write the
// end-of-stream marker.
type Writer struct {
	WriterConfig

	bw  *bufio.Writer
	enc *encoder
	err error
}

// NewWriter creates a writer using ModeRaw.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a new writer using the given configuration. The
// header is written immediately.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if w == nil {
		return nil, errors.New("lzp: writer must not be nil")
	}
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, cfg.Mode); err != nil {
		return nil, err
	}
	z := &Writer{
		WriterConfig: cfg,
		bw:           bw,
		enc:          newEncoder(bitio.NewWriter(bw), cfg.Mode),
	}
	return z, nil
}

// Write compresses the data in p.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	if err = z.enc.encode(p); err != nil {
		z.err = err
		return 0, err
	}
	return len(p), nil
}

// Close writes the end-of-stream marker and flushes all data. It doesn't
// close the underlying writer.
func (z *Writer) Close() error {
	if z.err != nil {
		if z.err == errClosed {
			return nil
		}
		return z.err
	}
	if err := z.enc.close(); err != nil {
		z.err = err
		return err
	}
	if err := z.bw.Flush(); err != nil {
		z.err = err
		return err
	}
	z.err = errClosed
	s := z.enc.stats
	xlog.Debugf("lzp: %s mode: %d bytes, %d matched in %d runs,"+
		" %d literals, %d compressed bytes", z.Mode, s.bytes,
		s.matched, s.runs, s.literals,
		headerLen+z.enc.bw.Count())
	return nil
}
