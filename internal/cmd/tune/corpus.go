// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ulikunitz/lzp"
	"github.com/ulikunitz/lzp/internal/tuning"
	"github.com/ulikunitz/zdata"
)

var (
	_silesiaFiles []tuning.File
	silesiaOnce   sync.Once
)

func silesiaFiles() []tuning.File {
	silesiaOnce.Do(func() {
		var err error
		_silesiaFiles, err = tuning.Files(zdata.Silesia)
		if err != nil {
			panic(fmt.Errorf("silesiaFiles() error %w", err))
		}
	})
	return _silesiaFiles
}

func writerBenchmark(files []tuning.File, m lzp.Mode) func(b *testing.B) {
	return func(b *testing.B) {
		size := tuning.Size(files)
		b.SetBytes(size)
		var (
			err            error
			compressedSize int64
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize, err = tuning.Compress(files, m)
			if err != nil {
				b.Fatalf("tuning.Compress error %s", err)
			}
		}
		b.StopTimer()
		b.ReportMetric(tuning.Ratio(compressedSize, size), "c/u")
	}
}
