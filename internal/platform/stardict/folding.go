package stardict

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// whitespaceFolder trims leading and trailing whitespace and collapses every
// internal whitespace span to a single ASCII space.
type whitespaceFolder struct {
	notStart bool
	wsSpan   bool
}

func (w *whitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if !w.notStart {
				continue
			}
			w.wsSpan = true
			continue
		}

		if w.wsSpan {
			// Trailing whitespace is never emitted.
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.wsSpan = false
		}
		w.notStart = true
		nSrc += size

		// c could be utf8.RuneError whose encoded length is 3, not size.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

func (w *whitespaceFolder) Reset() {
	*w = whitespaceFolder{}
}

// Fold normalizes a term for index comparison: whitespace folding followed
// by Unicode case folding.
func Fold(s string) string {
	folded, _, err := transform.String(transform.Chain(&whitespaceFolder{}, cases.Fold()), s)
	if err != nil {
		return s
	}
	return folded
}
