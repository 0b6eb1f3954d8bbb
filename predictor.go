// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

// contextBits is the number of bits of the context hash.
const contextBits = 20

// contextMask masks a context hash value.
const contextMask = 1<<contextBits - 1

// contextHash is a rolling hash of all bytes processed so far. Older bytes
// are shifted out of the 20 bits; collisions are accepted.
type contextHash uint32

// advance adds the byte c to the context hash.
func (h contextHash) advance(c byte) contextHash {
	return (h<<5 + contextHash(c)) & contextMask
}

// predictor stores the byte that followed each context hash when the
// prediction failed the last time.
type predictor struct {
	table [1 << contextBits]byte
}

// predict returns the predicted byte for the context. Unseen contexts
// predict zero.
func (p *predictor) predict(h contextHash) byte { return p.table[h] }

// update records c as the byte following the context. Only mispredictions
// update the table.
func (p *predictor) update(h contextHash, c byte) { p.table[h] = c }
