// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"github.com/ulikunitz/lzp/internal/bitio"
)

// event describes one step of the coded stream: a run of correctly predicted
// bytes followed by a literal code or the end-of-stream marker (eosCode).
// Encoder and decoder of the same data produce the same events.
type event struct {
	Run  int64
	Code int
}

// stats counts the coding steps of a stream.
type stats struct {
	bytes    int64
	matched  int64
	runs     int64
	literals int64
}

// encoder is the stream controller for compression. It owns all the state
// of a single stream.
type encoder struct {
	bw   *bitio.Writer
	lits literalEncoder
	pred predictor
	ctx  contextHash
	// run counts the correctly predicted bytes since the last literal.
	run   int64
	stats stats
	trace func(e event)
}

// newEncoder creates a new encoder writing to bw.
func newEncoder(bw *bitio.Writer, m Mode) *encoder {
	return &encoder{bw: bw, lits: newLiteralEncoder(bw, m)}
}

// encode compresses the bytes in p. A run of predicted bytes may continue
// over multiple calls.
func (e *encoder) encode(p []byte) error {
	for _, c := range p {
		if e.pred.predict(e.ctx) == c {
			e.run++
			e.lits.matched(c)
		} else {
			run := e.run
			if err := e.flushRun(); err != nil {
				return err
			}
			code, err := e.lits.encode(c)
			if err != nil {
				return err
			}
			e.stats.literals++
			if e.trace != nil {
				e.trace(event{Run: run, Code: code})
			}
			e.pred.update(e.ctx, c)
		}
		e.ctx = e.ctx.advance(c)
	}
	e.stats.bytes += int64(len(p))
	return nil
}

// flushRun writes the pending run and resets the run counter.
func (e *encoder) flushRun() error {
	if err := writeRun(e.bw, e.run); err != nil {
		return err
	}
	if e.run > 0 {
		e.stats.runs++
		e.stats.matched += e.run
	}
	e.run = 0
	return nil
}

// close writes the pending run, the end-of-stream marker and the padding
// bits of the last byte.
func (e *encoder) close() error {
	run := e.run
	if err := e.flushRun(); err != nil {
		return err
	}
	if err := e.lits.encodeEOS(); err != nil {
		return err
	}
	if e.trace != nil {
		e.trace(event{Run: run, Code: eosCode})
	}
	return e.bw.Flush()
}
