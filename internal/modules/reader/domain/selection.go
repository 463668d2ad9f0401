package domain

import (
	"strings"
	"unicode"

	apperrors "lector/internal/platform/errors"
)

// Selection is the word found under a point, together with the span it was
// taken from.
type Selection struct {
	Word string
	Span TextSpan
}

// WordAt finds the word under the given point. The point is hit-tested
// against span bounding boxes; within a span the character is estimated by
// proportional advance, then grown to word boundaries.
func WordAt(layout PageLayout, x, y float64) (Selection, error) {
	span, ok := spanAt(layout, x, y)
	if !ok {
		return Selection{}, apperrors.ErrNoSelection
	}
	word := wordAtOffset(span.Text, charIndex(span, x))
	if word == "" {
		return Selection{}, apperrors.ErrNoSelection
	}
	return Selection{Word: word, Span: span}, nil
}

func spanAt(layout PageLayout, x, y float64) (TextSpan, bool) {
	for _, span := range layout.Spans {
		height := span.FontSize
		if height <= 0 {
			height = 12
		}
		// Y is the baseline, so the glyph box extends upward from it.
		if x < span.X || x > span.X+span.W {
			continue
		}
		if y < span.Y-height || y > span.Y+height*0.25 {
			continue
		}
		return span, true
	}
	return TextSpan{}, false
}

func charIndex(span TextSpan, x float64) int {
	runes := []rune(span.Text)
	if len(runes) == 0 || span.W <= 0 {
		return 0
	}
	i := int((x - span.X) / span.W * float64(len(runes)))
	if i < 0 {
		i = 0
	}
	if i >= len(runes) {
		i = len(runes) - 1
	}
	return i
}

func wordAtOffset(text string, i int) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if !isWordRune(runes[i]) {
		// Nudge onto an adjacent word when the point lands on punctuation
		// or a space between words.
		switch {
		case i > 0 && isWordRune(runes[i-1]):
			i--
		case i+1 < len(runes) && isWordRune(runes[i+1]):
			i++
		default:
			return ""
		}
	}
	start := i
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := i + 1
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return strings.Trim(string(runes[start:end]), "'-")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}
