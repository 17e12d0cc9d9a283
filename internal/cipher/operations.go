package cipher

import "fmt"

type baseOperation struct {
	name        string
	description string
}

func (b baseOperation) Name() string        { return b.name }
func (b baseOperation) Description() string { return b.description }

type caesarOp struct{ baseOperation }

func (op caesarOp) Encrypt(text string, p Params) (string, error) {
	return Caesar(text, p.Shift, false, p.alphabet()), nil
}

func (op caesarOp) Decrypt(text string, p Params) (string, error) {
	return Caesar(text, p.Shift, true, p.alphabet()), nil
}

type atbashOp struct{ baseOperation }

func (op atbashOp) Encrypt(text string, p Params) (string, error) {
	return Atbash(text, p.alphabet()), nil
}

func (op atbashOp) Decrypt(text string, p Params) (string, error) {
	return Atbash(text, p.alphabet()), nil
}

type vigenereOp struct{ baseOperation }

func (op vigenereOp) Encrypt(text string, p Params) (string, error) {
	a := p.alphabet()
	if len(KeyShifts(p.Key, a)) == 0 {
		return "", ErrMissingKey
	}
	return Vigenere(text, p.Key, false, a), nil
}

func (op vigenereOp) Decrypt(text string, p Params) (string, error) {
	a := p.alphabet()
	if len(KeyShifts(p.Key, a)) == 0 {
		return "", ErrMissingKey
	}
	return Vigenere(text, p.Key, true, a), nil
}

type keywordOp struct{ baseOperation }

func (op keywordOp) Encrypt(text string, p Params) (string, error) {
	if p.Key == "" {
		return "", ErrMissingKey
	}
	return Keyword(text, p.Key, false, p.alphabet()), nil
}

func (op keywordOp) Decrypt(text string, p Params) (string, error) {
	if p.Key == "" {
		return "", ErrMissingKey
	}
	return Keyword(text, p.Key, true, p.alphabet()), nil
}

type railFenceOp struct{ baseOperation }

func (op railFenceOp) Encrypt(text string, p Params) (string, error) {
	if p.Rails < 2 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidRails, p.Rails)
	}
	return RailFence(text, p.Rails, false, p.alphabet()), nil
}

func (op railFenceOp) Decrypt(text string, p Params) (string, error) {
	if p.Rails < 2 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidRails, p.Rails)
	}
	return RailFence(text, p.Rails, true, p.alphabet()), nil
}

type pigpenOp struct{ baseOperation }

func (op pigpenOp) Encrypt(text string, _ Params) (string, error) {
	return PigpenEncode(text), nil
}

func (op pigpenOp) Decrypt(text string, _ Params) (string, error) {
	return PigpenDecode(text), nil
}

type morseOp struct{ baseOperation }

func (op morseOp) Encrypt(text string, _ Params) (string, error) {
	return MorseEncode(text), nil
}

func (op morseOp) Decrypt(text string, _ Params) (string, error) {
	return MorseDecode(text), nil
}

func init() {
	ops := []Operation{
		caesarOp{baseOperation{"caesar", "Shift every letter along the alphabet by a fixed amount"}},
		atbashOp{baseOperation{"atbash", "Swap each letter with its mirror: A<->Z, B<->Y"}},
		vigenereOp{baseOperation{"vigenere", "Shift each letter by the matching letter of a repeating key"}},
		keywordOp{baseOperation{"keyword", "Substitute letters using an alphabet that starts with a keyword"}},
		railFenceOp{baseOperation{"railfence", "Write letters in a zig-zag over several rails and read row by row"}},
		pigpenOp{baseOperation{"pigpen", "Draw each letter as its shape in the pigpen grids"}},
		morseOp{baseOperation{"morse", "Spell letters as dots and dashes"}},
	}
	for _, op := range ops {
		if err := Register(op); err != nil {
			panic(err)
		}
	}
}
