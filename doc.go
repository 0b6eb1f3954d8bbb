// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package lzp supports the compression and decompression of lzp streams.

The compressor predicts every byte from a 20-bit rolling hash of the
preceding bytes. The table of predictions is updated only after a failed
prediction. Runs of correctly predicted bytes are written as a flag bit and a
variable-length run length. The byte that broke a run is written as a
literal, either as a raw 8-bit value (ModeRaw) or as its rank in an adaptive
move-to-front list of all byte values (ModeRank).

A stream starts with the 4-byte header "LZP" followed by the mode byte. The
bit stream follows and is padded with zero bits to a full byte. There is no
checksum.

	var buf bytes.Buffer
	w, err := lzp.NewWriterConfig(&buf, lzp.WriterConfig{Mode: lzp.ModeRank})
	if err != nil {
		log.Fatal(err)
	}
	if _, err = io.WriteString(w, "hello, hello, hello"); err != nil {
		log.Fatal(err)
	}
	if err = w.Close(); err != nil {
		log.Fatal(err)
	}
	r, err := lzp.NewReader(&buf)
	if err != nil {
		log.Fatal(err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatal(err)
	}

Writers and Readers keep all their state, in particular the 1 MiB prediction
table, to themselves. Independent streams can be processed concurrently.
*/
package lzp
