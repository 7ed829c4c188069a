package settings

import (
	"errors"
	"fmt"

	"github.com/comereal/gamejamtoolkit/controls"
)

// ErrDuplicateKey is matched by every DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate preference key")

// DuplicateKeyError names the two positions sharing a key.
type DuplicateKeyError struct {
	Key    string
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("preference key %q used by controls %d and %d", e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// Binding is the key-relevant part of a control definition.
type Binding struct {
	Kind controls.Kind
	Key  string
}

// ValidateKeys rejects a configuration where a persisted control has no key
// or two persisted controls share one. None and Button controls are skipped.
func ValidateKeys(bindings []Binding) error {
	seen := make(map[string]int, len(bindings))
	for i, b := range bindings {
		if !b.Kind.Persisted() {
			continue
		}
		if b.Key == "" {
			return fmt.Errorf("control %d (%s): %w", i, b.Kind, ErrEmptyKey)
		}
		if first, ok := seen[b.Key]; ok {
			return &DuplicateKeyError{Key: b.Key, First: first, Second: i}
		}
		seen[b.Key] = i
	}
	return nil
}
