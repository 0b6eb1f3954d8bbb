// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bitio provides bit writers and readers on top of byte streams. It
// adapts github.com/icza/bitio to the needs of the lzp format: byte
// counters, sticky write errors and truncation reported as
// io.ErrUnexpectedEOF.
//
// Bits are written most significant bit first. A Writer pads the final byte
// with zero bits when it is flushed. A Reader reports io.ErrUnexpectedEOF if
// the underlying byte stream ends before the requested bits are available;
// it never makes up zero bits.
package bitio

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// MaxBits is the largest number of bits that can be written or read by a
// single call of WriteBits or ReadBits.
const MaxBits = 64

// errBitCount indicates a bit count outside the range [0, MaxBits].
var errBitCount = errors.New("bitio: bit count out of range")

// ByteWriter is the interface the Writer requires from the underlying
// writer. A bufio.Writer or a bytes.Buffer implements it.
type ByteWriter interface {
	io.Writer
	io.ByteWriter
}

// ByteReader is the interface the Reader requires from the underlying
// reader. Since no byte is read ahead, the Reader stops directly after the
// last byte it needs.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// countWriter counts the bytes written to w.
type countWriter struct {
	w ByteWriter
	n int64
}

func (c *countWriter) Write(p []byte) (n int, err error) {
	n, err = c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countWriter) WriteByte(b byte) error {
	if err := c.w.WriteByte(b); err != nil {
		return err
	}
	c.n++
	return nil
}

// Writer writes bits into a ByteWriter.
type Writer struct {
	cw  *countWriter
	w   *bitio.Writer
	err error
}

// NewWriter creates a new bit writer.
func NewWriter(w ByteWriter) *Writer {
	cw := &countWriter{w: w}
	return &Writer{cw: cw, w: bitio.NewWriter(cw)}
}

// setErr records a write error, which will be returned by all following
// calls.
func (w *Writer) setErr(err error) error {
	if err != nil {
		w.err = err
	}
	return err
}

// WriteBit writes the lowest bit of b.
func (w *Writer) WriteBit(b uint) error {
	if w.err != nil {
		return w.err
	}
	return w.setErr(w.w.WriteBool(b&1 != 0))
}

// WriteBits writes the n lowest bits of v, the most significant of them
// first.
func (w *Writer) WriteBits(v uint64, n int) error {
	if n < 0 || n > MaxBits {
		return errBitCount
	}
	if w.err != nil {
		return w.err
	}
	if n == 0 {
		return nil
	}
	if n < MaxBits {
		v &= 1<<uint(n) - 1
	}
	return w.setErr(w.w.WriteBits(v, uint8(n)))
}

// Flush writes pending bits padded with zero bits to a full byte. It doesn't
// flush the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	_, err := w.w.Align()
	return w.setErr(err)
}

// Count returns the number of bytes written to the underlying writer.
func (w *Writer) Count() int64 { return w.cw.n }

// countReader counts the bytes read from r.
type countReader struct {
	r ByteReader
	n int64
}

func (c *countReader) Read(p []byte) (n int, err error) {
	n, err = c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countReader) ReadByte() (b byte, err error) {
	if b, err = c.r.ReadByte(); err != nil {
		return 0, err
	}
	c.n++
	return b, nil
}

// Reader reads bits from a ByteReader.
type Reader struct {
	cr *countReader
	r  *bitio.Reader
}

// NewReader creates a new bit reader.
func NewReader(r ByteReader) *Reader {
	cr := &countReader{r: r}
	return &Reader{cr: cr, r: bitio.NewReader(cr)}
}

// readErr converts the end of the byte stream into io.ErrUnexpectedEOF,
// because a caller only asks for bits it requires.
func readErr(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (b uint, err error) {
	t, err := r.r.ReadBool()
	if err != nil {
		return 0, readErr(err)
	}
	if t {
		return 1, nil
	}
	return 0, nil
}

// ReadBits reads n bits and returns them as the lowest bits of v. The first
// bit read is the most significant one.
func (r *Reader) ReadBits(n int) (v uint64, err error) {
	if n < 0 || n > MaxBits {
		return 0, errBitCount
	}
	if n == 0 {
		return 0, nil
	}
	if v, err = r.r.ReadBits(uint8(n)); err != nil {
		return 0, readErr(err)
	}
	return v, nil
}

// Count returns the number of bytes consumed from the underlying reader.
func (r *Reader) Count() int64 { return r.cr.n }
