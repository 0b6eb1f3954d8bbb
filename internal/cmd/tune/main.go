// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command tune evaluates the lzp modes on the Silesia corpus. For every file
// it prints the compression ratios of both modes, of xz and the share of
// bytes an LZ77 parser covers with matches.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"testing"
	"text/tabwriter"

	"github.com/kr/pretty"
	"github.com/spf13/pflag"
	"github.com/ulikunitz/lzp"
	"github.com/ulikunitz/lzp/internal/tuning"
	"github.com/ulikunitz/lzp/internal/xlog"
)

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

func printResults(results []tuning.Result, withXZ, withLZ bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "file\tsize\traw\trank\t")
	if withXZ {
		fmt.Fprint(tw, "xz\t")
	}
	if withLZ {
		fmt.Fprint(tw, "lz matched\t")
	}
	fmt.Fprintln(tw)
	line := func(r tuning.Result) {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t", r.Name, r.Size,
			tuning.Ratio(r.Raw, r.Size),
			tuning.Ratio(r.Rank, r.Size))
		if withXZ {
			fmt.Fprintf(tw, "%.3f\t", tuning.Ratio(r.XZ, r.Size))
		}
		if withLZ {
			fmt.Fprintf(tw, "%.3f\t",
				tuning.Ratio(r.LZMatched, r.Size))
		}
		fmt.Fprintln(tw)
	}
	for _, r := range results {
		line(r)
	}
	line(tuning.Total(results))
	tw.Flush()
}

func main() {
	testing.Init()
	xlog.SetPrefix("tune: ")
	xlog.SetFlags(xlog.Lnodebug)

	var (
		workers = pflag.IntP("workers", "w", runtime.GOMAXPROCS(0),
			"number of files evaluated in parallel")
		withXZ = pflag.Bool("xz", true, "compute the xz baseline")
		withLZ = pflag.Bool("lz", true,
			"compute the LZ77 match coverage")
		bench = pflag.BoolP("bench", "b", false,
			"measure the throughput of both modes")
		verbose = pflag.BoolP("verbose", "v", false,
			"print the summary as Go value")
	)
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files := silesiaFiles()
	xlog.Printf("evaluating %d files with %d bytes", len(files),
		tuning.Size(files))
	cfg := tuning.EvalConfig{Workers: *workers, XZ: *withXZ}
	if *withLZ {
		cfg.LZ = tuning.DefaultLZConfig
	}
	results, err := tuning.Evaluate(ctx, files, cfg)
	if err != nil {
		xlog.Fatal(err)
	}
	printResults(results, *withXZ, *withLZ)
	if *verbose {
		pretty.Println(tuning.Total(results))
	}

	if !*bench {
		return
	}
	for _, m := range []lzp.Mode{lzp.ModeRaw, lzp.ModeRank} {
		r := testing.Benchmark(writerBenchmark(files, m))
		fmt.Printf("%s\t%.3f c/u\t%.2f MB/s\n", m, ratio(r),
			mbPerSec(r))
	}
}
