// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"github.com/ulikunitz/lzp/internal/bitio"
	"github.com/ulikunitz/lzp/internal/mtf"
	"github.com/ulikunitz/lzp/internal/vlc"
)

const (
	// rawEOS is the raw literal that may start the end-of-stream marker.
	// A following one bit marks the end of the stream, a zero bit the
	// literal itself.
	rawEOS = 0xff
	// rankEOS is the rank that marks the end of the stream. Valid ranks
	// are 0 to 255.
	rankEOS = mtf.Size
	// rankWidth is the minimum width of the rank codes. The first 8 ranks
	// need 4 bits.
	rankWidth = 3
)

// eosCode is used as literal code for the end-of-stream marker in trace
// events.
const eosCode = -1

// literal is the result of decoding a literal: either a byte or the end of
// the stream.
type literal struct {
	c   byte
	eos bool
}

// literalEncoder writes the byte ending a run.
type literalEncoder interface {
	// encode writes c and returns the code used for it.
	encode(c byte) (code int, err error)
	encodeEOS() error
	// matched accounts for a correctly predicted byte.
	matched(c byte)
}

// literalDecoder reads the byte ending a run.
type literalDecoder interface {
	decode() (lit literal, code int, err error)
	matched(c byte)
}

// newLiteralEncoder creates the literal encoder for the given mode.
func newLiteralEncoder(bw *bitio.Writer, m Mode) literalEncoder {
	switch m {
	case ModeRaw:
		return &rawLiteralEncoder{bw: bw}
	case ModeRank:
		return &rankLiteralEncoder{bw: bw, t: mtf.NewTracker()}
	default:
		panic("lzp: unsupported mode")
	}
}

// newLiteralDecoder creates the literal decoder for the given mode.
func newLiteralDecoder(br *bitio.Reader, m Mode) literalDecoder {
	switch m {
	case ModeRaw:
		return &rawLiteralDecoder{br: br}
	case ModeRank:
		return &rankLiteralDecoder{br: br, t: mtf.NewTracker()}
	default:
		panic("lzp: unsupported mode")
	}
}

// rawLiteralEncoder writes literals as 8-bit fields.
type rawLiteralEncoder struct {
	bw *bitio.Writer
}

func (e *rawLiteralEncoder) encode(c byte) (code int, err error) {
	if err = e.bw.WriteBits(uint64(c), 8); err != nil {
		return 0, err
	}
	if c == rawEOS {
		err = e.bw.WriteBit(0)
	}
	return int(c), err
}

func (e *rawLiteralEncoder) encodeEOS() error {
	if err := e.bw.WriteBits(rawEOS, 8); err != nil {
		return err
	}
	return e.bw.WriteBit(1)
}

func (e *rawLiteralEncoder) matched(c byte) {}

type rawLiteralDecoder struct {
	br *bitio.Reader
}

func (d *rawLiteralDecoder) decode() (lit literal, code int, err error) {
	v, err := d.br.ReadBits(8)
	if err != nil {
		return literal{}, 0, err
	}
	lit.c = byte(v)
	if lit.c == rawEOS {
		b, err := d.br.ReadBit()
		if err != nil {
			return literal{}, 0, err
		}
		if b == 1 {
			return literal{eos: true}, eosCode, nil
		}
	}
	return lit, int(lit.c), nil
}

func (d *rawLiteralDecoder) matched(c byte) {}

// rankLiteralEncoder writes literals as their rank in the tracker list.
type rankLiteralEncoder struct {
	bw *bitio.Writer
	t  *mtf.Tracker
}

func (e *rankLiteralEncoder) encode(c byte) (code int, err error) {
	rank := e.t.EncodeLiteral(c)
	return rank, vlc.Encode(e.bw, uint64(rank), rankWidth)
}

func (e *rankLiteralEncoder) encodeEOS() error {
	return vlc.Encode(e.bw, rankEOS, rankWidth)
}

func (e *rankLiteralEncoder) matched(c byte) { e.t.Matched(c) }

type rankLiteralDecoder struct {
	br *bitio.Reader
	t  *mtf.Tracker
}

func (d *rankLiteralDecoder) decode() (lit literal, code int, err error) {
	u, err := vlc.Decode(d.br, rankWidth)
	if err != nil {
		return literal{}, 0, err
	}
	if u == rankEOS {
		return literal{eos: true}, eosCode, nil
	}
	if u > rankEOS {
		return literal{}, 0, ErrCorrupt
	}
	c, err := d.t.DecodeLiteral(int(u))
	if err != nil {
		return literal{}, 0, err
	}
	return literal{c: c}, int(u), nil
}

func (d *rankLiteralDecoder) matched(c byte) { d.t.Matched(c) }
