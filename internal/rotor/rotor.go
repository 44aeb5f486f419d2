// Package rotor models the three rotor variants of a rotor cipher machine:
// reflectors, fixed rotors, and moving rotors with notches.
package rotor

import (
	"errors"
	"fmt"

	"enigma/internal/alphabet"
	"enigma/internal/permutation"
)

var (
	// ErrNotDerangement reports a reflector wired with fixed points.
	ErrNotDerangement = errors.New("reflector permutation is not a derangement")
	// ErrBadNotch reports a notch symbol outside the rotor's alphabet.
	ErrBadNotch = errors.New("notch symbol not in alphabet")
)

// Kind discriminates the rotor variants.
type Kind int

const (
	Reflector Kind = iota
	Fixed
	Moving
)

func (k Kind) String() string {
	switch k {
	case Reflector:
		return "reflector"
	case Fixed:
		return "fixed"
	case Moving:
		return "moving"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Rotor is one wheel of the machine: a permutation at a rotational setting.
// The variant is carried as a Kind so slot validation can switch exhaustively.
// Setting is the only mutable field.
type Rotor struct {
	name    string
	kind    Kind
	perm    *permutation.Permutation
	notches string
	setting int
}

// NewReflector builds a non-rotating reflector. Its permutation must be a
// derangement: a reflector never returns a signal on the contact it arrived.
func NewReflector(name string, perm *permutation.Permutation) (*Rotor, error) {
	if !perm.Derangement() {
		return nil, fmt.Errorf("%w: rotor %s", ErrNotDerangement, name)
	}
	return &Rotor{name: name, kind: Reflector, perm: perm}, nil
}

// NewFixed builds a rotor whose setting is configurable but never advances.
func NewFixed(name string, perm *permutation.Permutation) *Rotor {
	return &Rotor{name: name, kind: Fixed, perm: perm}
}

// NewMoving builds a rotating rotor. notches holds the symbols at which the
// rotor engages its pawl.
func NewMoving(name string, perm *permutation.Permutation, notches string) (*Rotor, error) {
	for _, r := range notches {
		if !perm.Alphabet().Contains(r) {
			return nil, fmt.Errorf("%w: %q on rotor %s", ErrBadNotch, r, name)
		}
	}
	return &Rotor{name: name, kind: Moving, perm: perm, notches: notches}, nil
}

// Name returns the rotor's catalog name.
func (r *Rotor) Name() string { return r.name }

// Kind returns the rotor variant.
func (r *Rotor) Kind() Kind { return r.kind }

// Permutation returns the rotor's wiring.
func (r *Rotor) Permutation() *permutation.Permutation { return r.perm }

// Alphabet returns the alphabet the rotor is wired over.
func (r *Rotor) Alphabet() *alphabet.Alphabet { return r.perm.Alphabet() }

// Rotates reports whether the machine may advance this rotor.
func (r *Rotor) Rotates() bool { return r.kind == Moving }

// Reflecting reports whether this rotor folds the signal back.
func (r *Rotor) Reflecting() bool { return r.kind == Reflector }

// Notches returns the notch symbols; empty for non-moving variants.
func (r *Rotor) Notches() string {
	if r.kind != Moving {
		return ""
	}
	return r.notches
}

// Setting returns the current rotational offset.
func (r *Rotor) Setting() int { return r.setting }

// SetIndex positions the rotor at index i of its alphabet.
func (r *Rotor) SetIndex(i int) error {
	if i < 0 || i >= r.perm.Size() {
		return fmt.Errorf("set rotor %s: %w: %d", r.name, alphabet.ErrIndexOutOfRange, i)
	}
	r.setting = i
	return nil
}

// Set positions the rotor at the given alphabet symbol.
func (r *Rotor) Set(symbol rune) error {
	i, err := r.Alphabet().ToIndex(symbol)
	if err != nil {
		return fmt.Errorf("set rotor %s: %w", r.name, err)
	}
	r.setting = i
	return nil
}

// AtNotch reports whether the current setting's symbol is a notch position.
// Always false for non-moving variants.
func (r *Rotor) AtNotch() bool {
	if r.kind != Moving {
		return false
	}
	sym, err := r.Alphabet().ToSymbol(r.setting)
	if err != nil {
		return false
	}
	for _, n := range r.notches {
		if n == sym {
			return true
		}
	}
	return false
}

// Advance steps the rotor one position, wrapping at the alphabet size.
// Calling Advance on a non-rotating rotor is a programming error; the
// machine's stepping rule must never do it.
func (r *Rotor) Advance() {
	if r.kind != Moving {
		panic(fmt.Sprintf("rotor: advance on non-rotating rotor %s", r.name))
	}
	r.setting = (r.setting + 1) % r.perm.Size()
}

// ConvertForward passes a signal through the rotor toward the reflector,
// compensating for the current rotational offset.
func (r *Rotor) ConvertForward(c int) int {
	return r.perm.Wrap(r.perm.Permute(c+r.setting) - r.setting)
}

// ConvertBackward passes a returning signal through the rotor away from the
// reflector, using the inverse wiring with the same offset compensation.
func (r *Rotor) ConvertBackward(c int) int {
	return r.perm.Wrap(r.perm.Invert(c+r.setting) - r.setting)
}

// Clone returns an independent copy sharing the immutable permutation.
func (r *Rotor) Clone() *Rotor {
	cp := *r
	return &cp
}
