// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package tuning evaluates the compression modes on a corpus of files and
// compares them with xz and the coverage of an LZ77 parser.
package tuning

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"sort"

	"github.com/ulikunitz/lz"
	"github.com/ulikunitz/lzp"
	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"
)

// File is a corpus file held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus. The files are sorted by name.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.Type().IsRegular() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, err
}

// Size returns the total size of all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// CompressFile returns the size of the lzp stream for data.
func CompressFile(data []byte, m lzp.Mode) (compressedSize int64, err error) {
	cw := &countWriter{}
	w, err := lzp.NewWriterConfig(cw, lzp.WriterConfig{Mode: m})
	if err != nil {
		return 0, err
	}
	if _, err = io.Copy(w, bytes.NewReader(data)); err != nil {
		return 0, err
	}
	if err = w.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// Compress compresses every file separately and returns the sum of the
// compressed sizes.
func Compress(files []File, m lzp.Mode) (compressedSize int64, err error) {
	for _, f := range files {
		n, err := CompressFile(f.Data, m)
		if err != nil {
			return compressedSize, err
		}
		compressedSize += n
	}
	return compressedSize, nil
}

// XZCompressFile returns the size of the xz stream for data. It serves as
// the baseline for the lzp modes.
func XZCompressFile(data []byte) (compressedSize int64, err error) {
	cw := &countWriter{}
	w, err := xz.NewWriter(cw)
	if err != nil {
		return 0, err
	}
	if _, err = io.Copy(w, bytes.NewReader(data)); err != nil {
		return 0, err
	}
	if err = w.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// DefaultLZConfig returns the configuration of the LZ77 parser used by
// Evaluate.
func DefaultLZConfig() lz.HSConfig {
	return lz.HSConfig{
		WindowSize: 1 << 20,
		InputLen:   3,
		HashBits:   18,
	}
}

// LZMatched parses data with an LZ77 hash sequencer and returns the number
// of bytes covered by matches. The data is fed to the sequencer as far as
// its buffer accepts it; after the buffered data has been parsed the buffer
// is shrunk to the window.
func LZMatched(data []byte, cfg lz.HSConfig) (matched int64, err error) {
	seq, err := lz.NewHashSequencer(cfg)
	if err != nil {
		return 0, err
	}
	var blk lz.Block
	stalled := false
	for {
		k, werr := seq.Write(data)
		data = data[k:]
		for {
			blk.Sequences = blk.Sequences[:0]
			blk.Literals = blk.Literals[:0]
			n, err := seq.Sequence(&blk, 0)
			if err != nil {
				if err == lz.ErrEmptyBuffer {
					break
				}
				return matched, err
			}
			for _, s := range blk.Sequences {
				matched += int64(s.MatchLen)
			}
			if n == 0 {
				break
			}
		}
		if len(data) == 0 {
			return matched, nil
		}
		if k == 0 {
			if stalled {
				if werr == nil {
					werr = errors.New(
						"tuning: sequencer accepts no data")
				}
				return matched, werr
			}
			stalled = true
		} else {
			stalled = false
		}
		seq.Shrink()
	}
}

// Result holds the evaluation of a single file.
type Result struct {
	Name string
	Size int64
	// compressed sizes
	Raw  int64
	Rank int64
	XZ   int64
	// bytes covered by LZ77 matches
	LZMatched int64
}

// Total sums up the results.
func Total(results []Result) Result {
	t := Result{Name: "total"}
	for _, r := range results {
		t.Size += r.Size
		t.Raw += r.Raw
		t.Rank += r.Rank
		t.XZ += r.XZ
		t.LZMatched += r.LZMatched
	}
	return t
}

// Ratio returns the ratio of compressed and uncompressed size.
func Ratio(compressed, size int64) float64 {
	if size == 0 {
		return 0
	}
	return float64(compressed) / float64(size)
}

// EvalConfig controls Evaluate.
type EvalConfig struct {
	// Workers is the maximum number of files evaluated concurrently.
	// Zero or a negative value means no limit.
	Workers int
	// XZ requests the xz baseline.
	XZ bool
	// LZ requests the LZ77 coverage if not nil.
	LZ func() lz.HSConfig
}

// evaluate computes the result for a single file.
func evaluate(ctx context.Context, f File, cfg *EvalConfig) (r Result, err error) {
	r = Result{Name: f.Name, Size: int64(len(f.Data))}
	if r.Raw, err = CompressFile(f.Data, lzp.ModeRaw); err != nil {
		return r, err
	}
	if err = ctx.Err(); err != nil {
		return r, err
	}
	if r.Rank, err = CompressFile(f.Data, lzp.ModeRank); err != nil {
		return r, err
	}
	if cfg.XZ {
		if err = ctx.Err(); err != nil {
			return r, err
		}
		if r.XZ, err = XZCompressFile(f.Data); err != nil {
			return r, err
		}
	}
	if cfg.LZ != nil {
		if err = ctx.Err(); err != nil {
			return r, err
		}
		if r.LZMatched, err = LZMatched(f.Data, cfg.LZ()); err != nil {
			return r, err
		}
	}
	return r, nil
}

// Evaluate evaluates all files concurrently. Every file uses its own
// writers. The results are returned in the order of files.
func Evaluate(ctx context.Context, files []File, cfg EvalConfig) ([]Result, error) {
	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			r, err := evaluate(ctx, f, &cfg)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
