// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"io"

	"github.com/ulikunitz/lzp/internal/bitio"
)

// decoder is the stream controller for decompression. It mirrors the
// encoder: the run is replayed from the predictor before the following
// literal is decoded, because in rank mode the replayed bytes change the
// rank order.
type decoder struct {
	br   *bitio.Reader
	lits literalDecoder
	pred predictor
	ctx  contextHash
	// pending is the number of run bytes still to be replayed.
	pending int64
	// run is the length of the current run; needed for trace events.
	run int64
	// runRead is set if the run flag for the next literal has been read.
	runRead bool
	eos     bool
	stats   stats
	trace   func(e event)
}

// newDecoder creates a decoder reading from br.
func newDecoder(br *bitio.Reader, m Mode) *decoder {
	return &decoder{br: br, lits: newLiteralDecoder(br, m)}
}

// wrapErr converts the truncation errors of the bit reader into
// ErrUnexpectedEOS.
func wrapErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOS
	}
	return err
}

// read decompresses data into p. It returns io.EOF after the end-of-stream
// marker has been decoded.
func (d *decoder) read(p []byte) (n int, err error) {
	for n < len(p) {
		if d.pending > 0 {
			k := len(p) - n
			if int64(k) > d.pending {
				k = int(d.pending)
			}
			for j := n; j < n+k; j++ {
				c := d.pred.predict(d.ctx)
				d.lits.matched(c)
				p[j] = c
				d.ctx = d.ctx.advance(c)
			}
			n += k
			d.pending -= int64(k)
			d.stats.bytes += int64(k)
			continue
		}
		if d.eos {
			return n, io.EOF
		}
		if !d.runRead {
			if d.run, err = readRun(d.br); err != nil {
				return n, wrapErr(err)
			}
			d.runRead = true
			d.pending = d.run
			if d.run > 0 {
				d.stats.runs++
				d.stats.matched += d.run
			}
			continue
		}
		var (
			lit  literal
			code int
		)
		if lit, code, err = d.lits.decode(); err != nil {
			return n, wrapErr(err)
		}
		d.runRead = false
		if d.trace != nil {
			d.trace(event{Run: d.run, Code: code})
		}
		if lit.eos {
			d.eos = true
			continue
		}
		p[n] = lit.c
		n++
		d.stats.bytes++
		d.stats.literals++
		d.pred.update(d.ctx, lit.c)
		d.ctx = d.ctx.advance(lit.c)
	}
	if d.eos && d.pending == 0 {
		return n, io.EOF
	}
	return n, nil
}
