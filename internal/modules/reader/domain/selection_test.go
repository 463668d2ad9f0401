package domain_test

import (
	"errors"
	"testing"

	"lector/internal/modules/reader/domain"
	apperrors "lector/internal/platform/errors"
)

func layoutFixture() domain.PageLayout {
	return domain.PageLayout{
		Number: 1,
		Spans: []domain.TextSpan{
			{Text: "The quick brown fox", X: 72, Y: 700, W: 190, FontSize: 12},
			{Text: "jumps over the lazy dog.", X: 72, Y: 684, W: 240, FontSize: 12},
		},
	}
}

func TestWordAt(t *testing.T) {
	t.Parallel()
	layout := layoutFixture()

	// "The quick brown fox" is 19 runes over 190 points, 10 points per rune.
	// x=72 lands on 'T', x=120 lands inside "quick".
	sel, err := domain.WordAt(layout, 72, 695)
	if err != nil {
		t.Fatalf("word at start: %v", err)
	}
	if sel.Word != "The" {
		t.Fatalf("word = %q, want The", sel.Word)
	}

	sel, err = domain.WordAt(layout, 120, 695)
	if err != nil {
		t.Fatalf("word in middle: %v", err)
	}
	if sel.Word != "quick" {
		t.Fatalf("word = %q, want quick", sel.Word)
	}

	// Second line, past the trailing period.
	sel, err = domain.WordAt(layout, 280, 680)
	if err != nil {
		t.Fatalf("word on second line: %v", err)
	}
	if sel.Word != "dog" {
		t.Fatalf("word = %q, want dog", sel.Word)
	}
}

func TestWordAtMissesReturnNoSelection(t *testing.T) {
	t.Parallel()
	layout := layoutFixture()

	if _, err := domain.WordAt(layout, 400, 695); !errors.Is(err, apperrors.ErrNoSelection) {
		t.Fatalf("point right of the line should miss, got %v", err)
	}
	if _, err := domain.WordAt(layout, 100, 500); !errors.Is(err, apperrors.ErrNoSelection) {
		t.Fatalf("point below all lines should miss, got %v", err)
	}
	if _, err := domain.WordAt(domain.PageLayout{}, 100, 100); !errors.Is(err, apperrors.ErrNoSelection) {
		t.Fatalf("empty layout should miss, got %v", err)
	}
}

func TestWordAtNudgesOffPunctuation(t *testing.T) {
	t.Parallel()
	layout := domain.PageLayout{Spans: []domain.TextSpan{
		{Text: "wait... what", X: 0, Y: 100, W: 120, FontSize: 10},
	}}
	// x=45 is rune index 4, the first dot after "wait".
	sel, err := domain.WordAt(layout, 45, 95)
	if err != nil {
		t.Fatalf("word at punctuation: %v", err)
	}
	if sel.Word != "wait" {
		t.Fatalf("word = %q, want wait", sel.Word)
	}
}
