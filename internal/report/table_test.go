package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Key", "Score", "Plaintext"}
	rows := [][]string{
		{"SECRET", "104", "HELLO WORLD"},
		{"DRAGON", "7", "KJYYZ"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Key    Score Plaintext" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "SECRET   104 HELLO WORLD" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "DRAGON     7 KJYYZ" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableUsesDisplayWidth(t *testing.T) {
	// Wide CJK glyphs take two cells each.
	lines := formatTable([]string{"Glyph", "N"}, [][]string{{"暗号", "1"}, {"A", "2"}}, map[int]bool{1: true})
	if lines[1] != "暗号  1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "A     2" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("HELLO WORLD", 5); displayWidth(got) > 5 {
		t.Fatalf("truncate too wide: %q", got)
	}
	if got := truncate("HI", 5); got != "HI" {
		t.Fatalf("short value changed: %q", got)
	}
}
