package cipher

import (
	"strings"
)

const (
	morseLetterSep = " "
	morseWordSep   = "/"
)

var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--", '\'': ".----.",
	'-': "-....-", '(': "-.--.", ')': "-.--.-", ':': "---...", '=': "-...-",
	'+': ".-.-.", '@': ".--.-.", '"': ".-..-.", '/': "-..-.",
}

var morseReverse = func() map[string]rune {
	out := make(map[string]rune, len(morseTable))
	for r, code := range morseTable {
		out[code] = r
	}
	return out
}()

// MorseEncode renders text as Morse code. Letters are separated by a space and
// words by " / ". Characters without a code are emitted as themselves.
func MorseEncode(text string) string {
	words := strings.Fields(strings.ToUpper(text))
	encoded := make([]string, 0, len(words))
	for _, word := range words {
		codes := make([]string, 0, len(word))
		for _, r := range word {
			if code, ok := morseTable[r]; ok {
				codes = append(codes, code)
				continue
			}
			codes = append(codes, string(r))
		}
		encoded = append(encoded, strings.Join(codes, morseLetterSep))
	}
	return strings.Join(encoded, morseLetterSep+morseWordSep+morseLetterSep)
}

// MorseDecode reverses MorseEncode. Unknown codes pass through unchanged.
func MorseDecode(code string) string {
	var words []string
	for _, word := range strings.Split(code, morseWordSep) {
		tokens := strings.Fields(word)
		if len(tokens) == 0 {
			continue
		}
		var b strings.Builder
		for _, tok := range tokens {
			if r, ok := morseReverse[tok]; ok {
				b.WriteRune(r)
				continue
			}
			b.WriteString(tok)
		}
		words = append(words, b.String())
	}
	return strings.Join(words, " ")
}
