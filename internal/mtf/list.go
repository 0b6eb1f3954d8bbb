// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package mtf provides the move-to-front list of the 256 byte values and the
// Tracker, which orders that list by a mix of recency and frequency.
package mtf

// Size is the number of symbols in a list.
const Size = 256

// List is a move-to-front list of all byte values. The zero value is not
// usable; call Init or NewList.
type List struct {
	syms [Size]byte
}

// NewList returns a list in identity order.
func NewList() *List {
	l := new(List)
	l.Init()
	return l
}

// Init puts the list into identity order.
func (l *List) Init() {
	for i := range l.syms {
		l.syms[i] = byte(i)
	}
}

// Front returns the symbol at rank 0.
func (l *List) Front() byte { return l.syms[0] }

// Rank returns the current position of c.
func (l *List) Rank(c byte) int {
	for i, s := range l.syms {
		if s == c {
			return i
		}
	}
	panic("mtf: symbol missing from list")
}

// Symbol returns the symbol at the given rank.
func (l *List) Symbol(rank int) byte { return l.syms[rank] }

// MoveToFront moves c to the front of the list and returns its position
// before the move.
func (l *List) MoveToFront(c byte) (rank int) {
	rank = l.Rank(c)
	l.shift(rank)
	return rank
}

// MoveRankToFront moves the symbol at the given rank to the front and
// returns it.
func (l *List) MoveRankToFront(rank int) byte {
	c := l.syms[rank]
	l.shift(rank)
	return c
}

// shift moves the symbol at rank to the front.
func (l *List) shift(rank int) {
	if rank == 0 {
		return
	}
	c := l.syms[rank]
	copy(l.syms[1:rank+1], l.syms[:rank])
	l.syms[0] = c
}
