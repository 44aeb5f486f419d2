// Package alphabet maps cipher symbols to dense indices 0..size-1.
package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol reports a symbol that is not part of the alphabet.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")
	// ErrIndexOutOfRange reports an index outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of alphabet range")
	// ErrDuplicateSymbol reports a repeated symbol in the alphabet string.
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")
)

// Alphabet is a bidirectional mapping between symbols and indices.
// Immutable after construction.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds an alphabet from an ordered symbol string.
// Every symbol must be unique.
func New(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}
	return &Alphabet{symbols: runes, index: index}, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Contains reports whether r is a member of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToIndex returns the index of symbol r.
func (a *Alphabet) ToIndex(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return i, nil
}

// ToSymbol returns the symbol at index i.
func (a *Alphabet) ToSymbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, len(a.symbols))
	}
	return a.symbols[i], nil
}

// String returns the symbols in index order.
func (a *Alphabet) String() string { return string(a.symbols) }
