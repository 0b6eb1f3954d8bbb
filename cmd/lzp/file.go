// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ulikunitz/lzp"
	"github.com/ulikunitz/lzp/internal/xlog"
)

// chunkSize is the size of the buffer used to read the input file.
const chunkSize = 1 << 20

type options struct {
	force bool
}

// countReader counts the bytes read.
type countReader struct {
	r io.Reader
	n int64
}

func (r *countReader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	r.n += int64(n)
	return n, err
}

// countWriter counts the bytes written.
type countWriter struct {
	w io.Writer
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n, err = w.w.Write(p)
	w.n += int64(n)
	return n, err
}

func compress(w io.Writer, r io.Reader, m lzp.Mode) error {
	z, err := lzp.NewWriterConfig(w, lzp.WriterConfig{Mode: m})
	if err != nil {
		return err
	}
	if _, err = io.CopyBuffer(z, r, make([]byte, chunkSize)); err != nil {
		return err
	}
	return z.Close()
}

func decompress(w io.Writer, r io.Reader) error {
	z, err := lzp.NewReader(bufio.NewReaderSize(r, chunkSize))
	if err != nil {
		return err
	}
	xlog.Debugf("mode %s", z.Mode())
	bw := bufio.NewWriterSize(w, chunkSize)
	if _, err = io.Copy(bw, z); err != nil {
		return err
	}
	return bw.Flush()
}

// signalHandler removes the temporary file on an interrupt. Closing the
// returned channel stops the handler.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// openInput opens a regular file or returns standard input for "-".
func openInput(path string) (f *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	if fi, err = f.Stat(); err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return f, nil
}

// createTmp creates the temporary output file or returns standard output
// for "-".
func createTmp(tmpPath string, opts *options) (f *os.File, err error) {
	if tmpPath == "-" {
		return os.Stdout, nil
	}
	if opts.force {
		os.Remove(tmpPath)
	}
	return os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
}

// savedPercent returns the space saved by compression in percent of the
// input size. Expansion gives a negative value.
func savedPercent(in, out int64) float64 {
	if in <= 0 {
		return 0
	}
	return 100 * float64(in-out) / float64(in)
}

// process runs the command on already opened files and reports the sizes.
func process(w io.Writer, r io.Reader, c command) error {
	start := time.Now()
	cr := &countReader{r: r}
	cw := &countWriter{w: w}
	var err error
	if c.decompress {
		err = decompress(cw, cr)
	} else {
		err = compress(cw, cr, c.mode)
	}
	if err != nil {
		return err
	}
	secs := time.Since(start).Seconds()
	if c.decompress {
		xlog.Printf("in (%d) -> out (%d)", cr.n, cw.n)
	} else {
		xlog.Printf("in (%d) -> out (%d), mode %s,"+
			" compression ratio %.2f%%",
			cr.n, cw.n, c.mode, savedPercent(cr.n, cw.n))
	}
	xlog.Printf("elapsed time %.3f seconds", secs)
	return nil
}

// run executes the command. The output is written to a temporary file that
// is renamed to the output path after success.
func run(c command, opts *options) (err error) {
	tmpPath := "-"
	if c.out != "-" {
		_, err = os.Lstat(c.out)
		if err == nil && !opts.force {
			return fmt.Errorf("file %s exists", c.out)
		}
		if c.decompress {
			tmpPath = c.out + ".unpack"
		} else {
			tmpPath = c.out + ".pack"
		}
	}

	r, err := openInput(c.in)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := createTmp(tmpPath, opts)
	if err != nil {
		return err
	}
	if tmpPath == "-" {
		return process(w, r, c)
	}
	quit := signalHandler(tmpPath)
	defer close(quit)
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	err = process(w, r, c)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmpPath, c.out)
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError removes the operation from an *os.PathError. A user doesn't
// need to know that lstat found a missing file.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}
