package cipher

import (
	"strings"
)

// PigpenGrid identifies which of the four pigpen frames a letter is drawn in.
type PigpenGrid int

const (
	// GridSquare is the tic-tac-toe frame (A-I, J-R with a dot).
	GridSquare PigpenGrid = iota + 1
	// GridCross is the X frame (S-V, W-Z with a dot).
	GridCross
)

// PigpenGlyph describes one pigpen symbol. Literal is set for characters that
// have no symbol.
type PigpenGlyph struct {
	Grid     PigpenGrid
	Position int
	Dot      bool
	Literal  rune
}

var squareShapes = []string{"⌟", "⊔", "⌞", "⊐", "□", "⊏", "⌝", "⊓", "⌜"}

var crossShapes = []string{"∨", ">", "<", "∧"}

const pigpenDot = "•"

// String renders the glyph as a compact token.
func (g PigpenGlyph) String() string {
	var shape string
	switch g.Grid {
	case GridSquare:
		shape = squareShapes[g.Position]
	case GridCross:
		shape = crossShapes[g.Position]
	default:
		return string(g.Literal)
	}
	if g.Dot {
		return shape + pigpenDot
	}
	return shape
}

// Letter returns the letter drawn by g, or Literal for non-letter glyphs.
func (g PigpenGlyph) Letter() rune {
	switch g.Grid {
	case GridSquare:
		if g.Dot {
			return 'J' + rune(g.Position)
		}
		return 'A' + rune(g.Position)
	case GridCross:
		if g.Dot {
			return 'W' + rune(g.Position)
		}
		return 'S' + rune(g.Position)
	default:
		return g.Literal
	}
}

func pigpenGlyphFor(r rune) PigpenGlyph {
	switch {
	case r >= 'A' && r <= 'I':
		return PigpenGlyph{Grid: GridSquare, Position: int(r - 'A')}
	case r >= 'J' && r <= 'R':
		return PigpenGlyph{Grid: GridSquare, Position: int(r - 'J'), Dot: true}
	case r >= 'S' && r <= 'V':
		return PigpenGlyph{Grid: GridCross, Position: int(r - 'S')}
	case r >= 'W' && r <= 'Z':
		return PigpenGlyph{Grid: GridCross, Position: int(r - 'W'), Dot: true}
	default:
		return PigpenGlyph{Literal: r}
	}
}

// PigpenGlyphs returns one glyph per rune of the uppercased text.
func PigpenGlyphs(text string) []PigpenGlyph {
	runes := []rune(strings.ToUpper(text))
	out := make([]PigpenGlyph, 0, len(runes))
	for _, r := range runes {
		out = append(out, pigpenGlyphFor(r))
	}
	return out
}

var pigpenTokens = func() map[string]rune {
	out := make(map[string]rune, 26)
	for r := 'A'; r <= 'Z'; r++ {
		out[pigpenGlyphFor(r).String()] = r
	}
	return out
}()

// PigpenEncode renders text as space-separated glyph tokens with "/" between words.
func PigpenEncode(text string) string {
	words := strings.Fields(text)
	encoded := make([]string, 0, len(words))
	for _, word := range words {
		glyphs := PigpenGlyphs(word)
		tokens := make([]string, 0, len(glyphs))
		for _, g := range glyphs {
			tokens = append(tokens, g.String())
		}
		encoded = append(encoded, strings.Join(tokens, " "))
	}
	return strings.Join(encoded, " / ")
}

// PigpenDecode reverses PigpenEncode. Unknown tokens pass through unchanged.
func PigpenDecode(tokens string) string {
	var words []string
	for _, word := range strings.Split(tokens, "/") {
		fields := strings.Fields(word)
		if len(fields) == 0 {
			continue
		}
		var b strings.Builder
		for _, tok := range fields {
			if r, ok := pigpenTokens[tok]; ok {
				b.WriteRune(r)
				continue
			}
			b.WriteString(tok)
		}
		words = append(words, b.String())
	}
	return strings.Join(words, " ")
}
