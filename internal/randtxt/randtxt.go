// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt supports the generation of random text for testing. The
// text consists of lower case English words with Zipf distributed
// frequencies, grouped into sentences and lines.
package randtxt

import (
	"math/rand"
)

// words is the vocabulary; more frequent words come first.
var words = []string{
	"the", "of", "and", "to", "a", "in", "is", "that", "for", "it",
	"as", "was", "with", "be", "by", "on", "not", "he", "this", "are",
	"or", "his", "from", "at", "which", "but", "have", "an", "had", "they",
	"you", "were", "their", "one", "all", "we", "can", "her", "has",
	"there", "been", "if", "more", "when", "will", "would", "who", "so",
	"no", "she", "other", "its", "may", "these", "what", "them", "than",
	"some", "him", "time", "into", "only", "do", "could", "new", "about",
	"two", "first", "then", "must", "over", "such", "through", "before",
	"stream", "byte", "context", "table", "prediction", "literal", "rank",
	"frequency", "anchor", "encoder", "decoder", "window", "buffer",
	"quick", "brown", "fox", "jumps", "lazy", "dog", "river", "mountain",
}

// Reader provides an endless stream of random text.
type Reader struct {
	rnd  *rand.Rand
	zipf *rand.Zipf
	// pending bytes of the current word
	buf []byte
	// words in the current sentence and characters in the current line
	sentence int
	line     int
}

// NewReader creates a reader using the given random source. Readers with
// sources initialized by the same seed produce the same text.
func NewReader(src rand.Source) *Reader {
	rnd := rand.New(src)
	return &Reader{
		rnd:  rnd,
		zipf: rand.NewZipf(rnd, 1.1, 2, uint64(len(words)-1)),
	}
}

// next appends the next word to the buffer.
func (r *Reader) next() {
	w := words[r.zipf.Uint64()]
	if r.sentence == 0 {
		r.buf = append(r.buf, w[0]-'a'+'A')
		r.buf = append(r.buf, w[1:]...)
	} else {
		r.buf = append(r.buf, w...)
	}
	r.sentence++
	if r.sentence > 4 && r.rnd.Intn(8) == 0 {
		r.buf = append(r.buf, '.')
		r.sentence = 0
	}
	r.line += len(w) + 1
	if r.line >= 72 {
		r.buf = append(r.buf, '\n')
		r.line = 0
	} else {
		r.buf = append(r.buf, ' ')
	}
}

// Read fills p with random text. It never returns an error.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.buf) == 0 {
			r.next()
		}
		k := copy(p[n:], r.buf)
		n += k
		r.buf = r.buf[k:]
	}
	return n, nil
}
