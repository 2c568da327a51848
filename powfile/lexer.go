// SPDX-License-Identifier: MIT

package powfile

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// pairStatus classifies the outcome of reading one "<re>,<im>" pair.
type pairStatus int

const (
	pairOK     pairStatus = iota
	pairEOF               // input ended before the pair started
	pairNoReal            // no number where the real part belongs
	pairNoImag            // real part read, comma or imaginary part missing
	pairNoClose           // "(" opened but never closed
)

// lexer reads numbers with scanf-like rules: whitespace is skipped before
// every number and header dash, and a literal comma must follow the real
// part with nothing in between.
type lexer struct {
	r   *bufio.Reader
	err error // first non-EOF read error
}

func newLexer(r io.Reader) *lexer {
	if br, ok := r.(*bufio.Reader); ok {
		return &lexer{r: br}
	}

	return &lexer{r: bufio.NewReader(r)}
}

func (lx *lexer) read() (rune, bool) {
	c, _, err := lx.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) && lx.err == nil {
			lx.err = err
		}
		return 0, false
	}

	return c, true
}

func (lx *lexer) unread() { _ = lx.r.UnreadRune() }

// skipSpace consumes whitespace and reports whether input remains.
func (lx *lexer) skipSpace() bool {
	for {
		c, ok := lx.read()
		if !ok {
			return false
		}
		if !unicode.IsSpace(c) {
			lx.unread()
			return true
		}
	}
}

// accept consumes c if it is the next rune.
func (lx *lexer) accept(c rune) bool {
	got, ok := lx.read()
	if !ok {
		return false
	}
	if got != c {
		lx.unread()
		return false
	}

	return true
}

// token collects a number-shaped run of runes. A sign is allowed first and
// right after an exponent marker; letters are collected so that "inf" and
// "nan" reach strconv and fail or pass there.
func (lx *lexer) token(integer bool) string {
	var b strings.Builder
	var last rune
	for {
		c, ok := lx.read()
		if !ok {
			break
		}
		keep := false
		switch {
		case c >= '0' && c <= '9':
			keep = true
		case c == '+' || c == '-':
			keep = b.Len() == 0 || (!integer && (last == 'e' || last == 'E'))
		case integer:
		case c == '.', c < unicode.MaxASCII && unicode.IsLetter(c):
			keep = true
		}
		if !keep {
			lx.unread()
			break
		}
		b.WriteRune(c)
		last = c
	}

	return b.String()
}

// float skips whitespace and reads a float64.
func (lx *lexer) float() (float64, bool) {
	if !lx.skipSpace() {
		return 0, false
	}
	tok := lx.token(false)
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return v, true
}

// integer skips whitespace and reads a signed decimal int.
func (lx *lexer) integer() (int, bool) {
	if !lx.skipSpace() {
		return 0, false
	}
	v, err := strconv.Atoi(lx.token(true))
	if err != nil {
		return 0, false
	}

	return v, true
}

// dash skips whitespace and consumes one '-' separator.
func (lx *lexer) dash() bool {
	return lx.skipSpace() && lx.accept('-')
}

// pair reads "<re>,<im>" or "(<re>,<im>)".
func (lx *lexer) pair() (complex128, pairStatus) {
	if !lx.skipSpace() {
		return 0, pairEOF
	}
	open := lx.accept('(')
	re, ok := lx.float()
	if !ok {
		return 0, pairNoReal
	}
	if !lx.accept(',') {
		return 0, pairNoImag
	}
	im, ok := lx.float()
	if !ok {
		return 0, pairNoImag
	}
	if open && !(lx.skipSpace() && lx.accept(')')) {
		return 0, pairNoClose
	}

	return complex(re, im), pairOK
}

// PairReader yields complex pairs from free-form text, one at a time.
// It accepts the same pair syntax as the matrix body of an input file.
type PairReader struct {
	lx *lexer
	n  int
}

// NewPairReader wraps r.
func NewPairReader(r io.Reader) *PairReader {
	return &PairReader{lx: newLexer(r)}
}

// Next returns the next pair, io.EOF at a clean end of input, or a
// *ParseError naming the 1-based pair index in Col.
func (p *PairReader) Next() (complex128, error) {
	v, st := p.lx.pair()
	if p.lx.err != nil {
		return 0, &ParseError{Field: "pair", Detail: DetailRead, Err: p.lx.err}
	}
	p.n++
	switch st {
	case pairOK:
		return v, nil
	case pairEOF:
		return 0, io.EOF
	default:
		return 0, &ParseError{Field: "pair", Row: 1, Col: p.n, Detail: st.detail()}
	}
}

func (st pairStatus) detail() string {
	switch st {
	case pairNoImag:
		return DetailNoImag
	case pairNoClose:
		return DetailNoClose
	default:
		return DetailNoReal
	}
}
