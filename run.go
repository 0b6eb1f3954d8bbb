// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

import (
	"math"

	"github.com/ulikunitz/lzp/internal/bitio"
	"github.com/ulikunitz/lzp/internal/vlc"
)

// runWidth is the minimum width of the run length codes.
const runWidth = 0

// writeRun writes the length of a run of correctly predicted bytes. An empty
// run is a single zero bit; otherwise a one bit is followed by the code of
// n-1.
func writeRun(bw *bitio.Writer, n int64) error {
	if n == 0 {
		return bw.WriteBit(0)
	}
	if err := bw.WriteBit(1); err != nil {
		return err
	}
	return vlc.Encode(bw, uint64(n-1), runWidth)
}

// readRun reads a run length written by writeRun.
func readRun(br *bitio.Reader) (n int64, err error) {
	b, err := br.ReadBit()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, nil
	}
	u, err := vlc.Decode(br, runWidth)
	if err != nil {
		return 0, err
	}
	if u >= math.MaxInt64 {
		return 0, ErrCorrupt
	}
	return int64(u) + 1, nil
}
