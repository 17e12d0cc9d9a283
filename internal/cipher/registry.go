package cipher

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

var (
	// ErrMissingKey is returned by keyed ciphers when no usable key is given.
	ErrMissingKey = errors.New("cipher requires a key")
	// ErrInvalidRails is returned when a rail fence has fewer than two rails.
	ErrInvalidRails = errors.New("rail fence needs at least 2 rails")
	// ErrUnknownCipher is returned by Get for unregistered names.
	ErrUnknownCipher = errors.New("unknown cipher")
)

// Params carries the key material an Operation may need.
type Params struct {
	Key      string
	Shift    int
	Rails    int
	Alphabet alphabet.Alphabet
}

func (p Params) alphabet() alphabet.Alphabet {
	if p.Alphabet.Len() == 0 {
		return alphabet.Default()
	}
	return p.Alphabet
}

// Operation is a named cipher that can encrypt and decrypt text.
type Operation interface {
	// Name returns the unique identifier used on the command line.
	Name() string
	// Description returns a one-line explanation for learners.
	Description() string
	Encrypt(text string, p Params) (string, error)
	Decrypt(text string, p Params) (string, error)
}

var (
	registry   = make(map[string]Operation)
	registryMu sync.RWMutex
)

// Register adds op to the registry.
func Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}
	name := op.Name()
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("operation %s is already registered", name)
	}
	registry[name] = op
	return nil
}

// Get looks up a registered operation by name.
func Get(name string) (Operation, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	op, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
	return op, nil
}

// List returns all registered operations sorted by name.
func List() []Operation {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ops := make([]Operation, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name() < ops[j].Name()
	})
	return ops
}

// Names returns the registered operation names in sorted order.
func Names() []string {
	ops := List()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}
	return names
}
