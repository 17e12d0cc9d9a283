package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	placeholderRune = '_'
	wrongSpaceRune  = '•'
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// hidden reports whether the answer rune is masked until typed.
func hidden(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// sameRune compares answers case-insensitively.
func sameRune(expected, typed rune) bool {
	return unicode.ToUpper(expected) == unicode.ToUpper(typed)
}

// buildStyledRunes renders the answer line. Letters stay masked until typed;
// typed runes are shown as entered and colored against the plaintext.
func buildStyledRunes(targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	words := findWords(targetRunes)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		if i < len(inputRunes) {
			typed := inputRunes[i]
			displayed = unicode.ToUpper(typed)
			switch {
			case target == ' ' && typed != ' ':
				displayed = wrongSpaceRune
				style = incorrectStyle
			case sameRune(target, typed):
				style = correctStyle
			default:
				style = incorrectStyle
			}
		} else if hidden(target) {
			displayed = placeholderRune
			if currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			}
		}
		if i == cursorIndex && i >= len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	var words []wordRange
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

// wordForCursor returns the word holding the cursor, or the next one when the
// cursor sits on a space.
func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i := range words {
		if cursorIndex < words[i].end {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits; words longer than
// width are split.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpace := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				lines = append(lines, renderStyledRunes(line[:lastSpace]))
				line = append([]styledRune{}, line[lastSpace+1:]...)
			} else {
				lines = append(lines, renderStyledRunes(line))
				line = line[:0]
			}
			lineWidth, lastSpace = measure(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	lines = append(lines, renderStyledRunes(line))
	return strings.Join(lines, "\n")
}

func measure(line []styledRune) (width, lastSpace int) {
	lastSpace = -1
	for i, item := range line {
		width += item.width
		if item.isSpace {
			lastSpace = i
		}
	}
	return width, lastSpace
}
