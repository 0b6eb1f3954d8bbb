// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package mtf

import "errors"

// ErrRank indicates a rank outside of the list.
var ErrRank = errors.New("mtf: rank out of range")

// Tracker maintains the symbol order used for coding literals. Literals get a
// full move-to-front promotion. Predicted bytes only update frequency
// counters; they move the anchor, the most frequent recent symbol, to the
// front of the list.
//
// Encoder and decoder reach identical states if they call the methods with
// the same symbols in the same order.
type Tracker struct {
	list   List
	freq   [Size]uint64
	anchor byte
}

// NewTracker creates a tracker with identity order, zero frequencies and
// anchor 0.
func NewTracker() *Tracker {
	t := new(Tracker)
	t.Init()
	return t
}

// Init resets the tracker.
func (t *Tracker) Init() {
	*t = Tracker{}
	t.list.Init()
}

// Matched accounts for a correctly predicted symbol c.
func (t *Tracker) Matched(c byte) {
	t.freq[c]++
	if t.freq[c] >= t.freq[t.anchor] {
		t.anchor = c
	}
	if t.list.Front() != t.anchor {
		t.list.MoveToFront(t.anchor)
	}
}

// EncodeLiteral returns the rank of the literal c and promotes it.
func (t *Tracker) EncodeLiteral(c byte) (rank int) {
	rank = t.list.MoveToFront(c)
	t.literal(c)
	return rank
}

// DecodeLiteral returns the literal at rank and promotes it. It mirrors
// EncodeLiteral.
func (t *Tracker) DecodeLiteral(rank int) (c byte, err error) {
	if !(0 <= rank && rank < Size) {
		return 0, ErrRank
	}
	c = t.list.MoveRankToFront(rank)
	t.literal(c)
	return c, nil
}

// literal updates frequency and anchor after c has been moved to the front.
// The anchor stays only if it is more frequent than c and c is not at the
// front.
func (t *Tracker) literal(c byte) {
	t.freq[c]++
	if !(t.freq[t.anchor] > t.freq[c] && t.list.Front() != c) {
		t.anchor = c
	}
}

// Anchor returns the current anchor symbol.
func (t *Tracker) Anchor() byte { return t.anchor }

// Front returns the symbol at rank 0.
func (t *Tracker) Front() byte { return t.list.Front() }

// Freq returns the frequency counter of c.
func (t *Tracker) Freq(c byte) uint64 { return t.freq[c] }

// Rank returns the current rank of c without changing the order.
func (t *Tracker) Rank(c byte) int { return t.list.Rank(c) }

// Symbol returns the symbol at rank without changing the order.
func (t *Tracker) Symbol(rank int) byte { return t.list.Symbol(rank) }
