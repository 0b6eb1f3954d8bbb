// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package vlc implements a self-delimiting variable-length code for
non-negative integers.

The code is parameterized by a minimum field width w. The values 0 to 2^w-1
are coded as a zero bit followed by a w-bit field. Every following range of
values doubles in size: each one bit of the unary prefix moves to the next
range and widens the field by one bit. For w = 3 the ranks 0 to 7 need four
bits, 8 to 23 need six bits, 24 to 55 need eight bits and so on.

The code length never decreases with the value, and encoder and decoder must
use the same minimum width.
*/
package vlc

import "errors"

// MaxWidth is the largest field width. A prefix that reaches the width is not
// terminated by a zero bit.
const MaxWidth = 63

// BitWriter is the interface required for writing codes.
type BitWriter interface {
	WriteBit(b uint) error
	WriteBits(v uint64, n int) error
}

// BitReader is the interface required for reading codes.
type BitReader interface {
	ReadBit() (b uint, err error)
	ReadBits(n int) (v uint64, err error)
}

// Errors returned by the package.
var (
	ErrWidth = errors.New("vlc: minimum width out of range")
	ErrRange = errors.New("vlc: value cannot be encoded")
)

// Encode writes the code for u using minimum field width width.
func Encode(w BitWriter, u uint64, width int) error {
	if !(0 <= width && width <= MaxWidth) {
		return ErrWidth
	}
	n := width
	for n < MaxWidth && u>>uint(n) != 0 {
		u -= 1 << uint(n)
		n++
		if err := w.WriteBit(1); err != nil {
			return err
		}
	}
	if u>>uint(n) != 0 {
		return ErrRange
	}
	if n < MaxWidth {
		if err := w.WriteBit(0); err != nil {
			return err
		}
	}
	return w.WriteBits(u, n)
}

// Decode reads a code written with the minimum field width width.
func Decode(r BitReader, width int) (u uint64, err error) {
	if !(0 <= width && width <= MaxWidth) {
		return 0, ErrWidth
	}
	n := width
	var base uint64
	for n < MaxWidth {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b == 0 {
			break
		}
		base += 1 << uint(n)
		n++
	}
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return base + v, nil
}

// Len returns the length of the code for u in bits. It returns -1 if the
// value cannot be encoded.
func Len(u uint64, width int) int {
	if !(0 <= width && width <= MaxWidth) {
		return -1
	}
	n := width
	k := 0
	for n < MaxWidth && u>>uint(n) != 0 {
		u -= 1 << uint(n)
		n++
		k++
	}
	if u>>uint(n) != 0 {
		return -1
	}
	if n < MaxWidth {
		k++
	}
	return k + n
}
