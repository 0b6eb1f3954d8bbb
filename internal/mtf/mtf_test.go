// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package mtf

import (
	"math/rand"
	"testing"
)

func TestList(t *testing.T) {
	l := NewList()
	for i := 0; i < Size; i++ {
		if r := l.Rank(byte(i)); r != i {
			t.Fatalf("l.Rank(%d) = %d; want %d", i, r, i)
		}
	}
	if r := l.MoveToFront(10); r != 10 {
		t.Fatalf("l.MoveToFront(10) = %d; want 10", r)
	}
	if r := l.MoveToFront(10); r != 0 {
		t.Fatalf("second l.MoveToFront(10) = %d; want 0", r)
	}
	if r := l.MoveToFront(0); r != 1 {
		t.Fatalf("l.MoveToFront(0) = %d; want 1", r)
	}
	want := []byte{0, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11}
	for i, c := range want {
		if s := l.Symbol(i); s != c {
			t.Fatalf("l.Symbol(%d) = %d; want %d", i, s, c)
		}
	}
	if c := l.MoveRankToFront(255); c != 255 {
		t.Fatalf("l.MoveRankToFront(255) = %d; want 255", c)
	}
	if l.Front() != 255 {
		t.Fatalf("l.Front() = %d; want 255", l.Front())
	}
	if s := l.Symbol(255); s != 254 {
		t.Fatalf("l.Symbol(255) = %d; want 254", s)
	}
}

func TestTrackerAnchor(t *testing.T) {
	tr := NewTracker()
	tr.Matched(5)
	if tr.Anchor() != 5 || tr.Front() != 5 {
		t.Fatalf("after Matched(5): anchor %d front %d; want 5 5",
			tr.Anchor(), tr.Front())
	}
	if r := tr.EncodeLiteral(3); r != 4 {
		t.Fatalf("tr.EncodeLiteral(3) = %d; want 4", r)
	}
	if tr.Anchor() != 3 {
		t.Fatalf("after literal 3: anchor %d; want 3", tr.Anchor())
	}
	tr.Matched(7)
	tr.Matched(7)
	if tr.Anchor() != 7 || tr.Freq(7) != 2 {
		t.Fatalf("after Matched(7) twice: anchor %d freq %d; want 7 2",
			tr.Anchor(), tr.Freq(7))
	}
	tr.Matched(5)
	if tr.Anchor() != 5 {
		t.Fatalf("after Matched(5): anchor %d; want 5", tr.Anchor())
	}
	want := []byte{5, 7, 3, 0, 1, 2, 4, 6, 8}
	for i, c := range want {
		if s := tr.Symbol(i); s != c {
			t.Fatalf("tr.Symbol(%d) = %d; want %d", i, s, c)
		}
	}
}

func TestTrackerMatchedKeepsFrequentAnchor(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 3; i++ {
		tr.Matched('a')
	}
	tr.Matched('b')
	if tr.Anchor() != 'a' {
		t.Fatalf("anchor %q; want %q", tr.Anchor(), 'a')
	}
	if tr.Front() != 'a' {
		t.Fatalf("front %q; want %q", tr.Front(), 'a')
	}
	if r := tr.Rank('b'); r != 'b' {
		t.Fatalf("tr.Rank('b') = %d; want %d", r, 'b')
	}
}

func TestTrackerDecodeRank(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.DecodeLiteral(Size); err != ErrRank {
		t.Fatalf("tr.DecodeLiteral(%d) error %v; want %v", Size, err,
			ErrRank)
	}
	if _, err := tr.DecodeLiteral(-1); err != ErrRank {
		t.Fatalf("tr.DecodeLiteral(-1) error %v; want %v", err, ErrRank)
	}
}

// TestTrackerMirror drives an encoding and a decoding tracker with the same
// symbol stream and checks that both stay in identical states.
func TestTrackerMirror(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	enc, dec := NewTracker(), NewTracker()
	for i := 0; i < 20000; i++ {
		c := byte(rnd.Intn(16))
		if rnd.Intn(3) == 0 {
			c = byte(rnd.Intn(Size))
		}
		if rnd.Intn(2) == 0 {
			enc.Matched(c)
			dec.Matched(c)
		} else {
			rank := enc.EncodeLiteral(c)
			d, err := dec.DecodeLiteral(rank)
			if err != nil {
				t.Fatalf("dec.DecodeLiteral(%d) error %s",
					rank, err)
			}
			if d != c {
				t.Fatalf("step %d: decoded %d; want %d", i, d, c)
			}
		}
		if *enc != *dec {
			t.Fatalf("step %d: tracker states differ", i)
		}
	}
}
