package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesMasksUntypedLetters(t *testing.T) {
	target := []rune("HI YOU")
	input := []rune("h")
	runes := buildStyledRunes(target, input, len(input))

	if len(runes) != 6 {
		t.Fatalf("expected 6 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("H") {
		t.Fatalf("expected typed rune uppercased and correct")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("_") {
		t.Fatalf("expected underlined placeholder at cursor")
	}
	if runes[2].s != pendingStyle.Render(" ") {
		t.Fatalf("expected visible space")
	}
	if runes[3].s != pendingStyle.Render("_") {
		t.Fatalf("expected pending placeholder for next word")
	}
}

func TestBuildStyledRunesMistype(t *testing.T) {
	target := []rune("AB")
	input := []rune("AX")
	runes := buildStyledRunes(target, input, -1)
	if runes[0].s != correctStyle.Render("A") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Render("X") {
		t.Fatalf("expected typed rune shown in incorrect style")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("A B")
	input := []rune("AX")
	runes := buildStyledRunes(target, input, len(input))
	if runes[1].s != incorrectStyle.Render(string(wrongSpaceRune)) {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesCursorOnPunctuation(t *testing.T) {
	target := []rune("A!")
	input := []rune("A")
	runes := buildStyledRunes(target, input, len(input))
	if runes[1].s != cursorStyle.Render("!") {
		t.Fatalf("expected punctuation shown with cursor style")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("MEET ME AT THE PARK")
	runes := buildStyledRunes(target, target, -1)
	wrapped := wrapStyledRunes(runes, 10)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), wrapped)
	}
}

func TestWrapStyledRunesSplitsLongWord(t *testing.T) {
	target := []rune("ABCDEFGH")
	runes := buildStyledRunes(target, target, -1)
	lines := strings.Split(wrapStyledRunes(runes, 3), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
}
