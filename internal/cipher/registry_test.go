package cipher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryListsAllCiphers(t *testing.T) {
	want := []string{"atbash", "caesar", "keyword", "morse", "pigpen", "railfence", "vigenere"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Fatalf("registered ciphers mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	if err := Register(caesarOp{baseOperation{"caesar", "dup"}}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := Register(nil); err == nil {
		t.Fatalf("expected nil registration to fail")
	}
	if _, err := Get("enigma"); !errors.Is(err, ErrUnknownCipher) {
		t.Fatalf("expected ErrUnknownCipher, got %v", err)
	}
}

func TestOperationsRoundTrip(t *testing.T) {
	params := Params{Key: "PIRATE", Shift: 7, Rails: 3}
	text := "X MARKS THE SPOT"
	for _, op := range List() {
		t.Run(op.Name(), func(t *testing.T) {
			enc, err := op.Encrypt(text, params)
			if err != nil {
				t.Fatalf("encrypt failed: %v", err)
			}
			dec, err := op.Decrypt(enc, params)
			if err != nil {
				t.Fatalf("decrypt failed: %v", err)
			}
			if dec != text {
				t.Fatalf("roundtrip failed: %q -> %q -> %q", text, enc, dec)
			}
		})
	}
}

func TestOperationsValidateParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"vigenere", Params{Key: "123"}, ErrMissingKey},
		{"keyword", Params{}, ErrMissingKey},
		{"railfence", Params{Rails: 1}, ErrInvalidRails},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Get(tt.name)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if _, err := op.Encrypt("HELLO", tt.params); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
