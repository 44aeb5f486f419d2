// Package permutation implements cycle-notation permutations over an alphabet.
//
// A cycle spec is a sequence of whitespace-separated parenthesized groups,
// e.g. "(AELTPHQXRU) (BKNW) (S)". A group (c0c1...cm) maps c0→c1→...→cm→c0.
// Symbols not mentioned in any group are fixed points.
package permutation

import (
	"errors"
	"fmt"
	"unicode"

	"enigma/internal/alphabet"
)

// ErrMalformedCycleSpec reports an ill-formed cycle string: unbalanced or
// nested parentheses, an empty group, a symbol outside the alphabet, or a
// symbol appearing in more than one position.
var ErrMalformedCycleSpec = errors.New("malformed cycle spec")

// Permutation is an immutable permutation of an alphabet's index space,
// stored as forward and inverse lookup tables.
type Permutation struct {
	alpha    *alphabet.Alphabet
	forward  []int
	backward []int
	cycles   string
}

// New parses a cycle spec against alpha and returns the permutation.
func New(cycles string, alpha *alphabet.Alphabet) (*Permutation, error) {
	n := alpha.Size()
	p := &Permutation{
		alpha:    alpha,
		forward:  make([]int, n),
		backward: make([]int, n),
		cycles:   cycles,
	}
	for i := 0; i < n; i++ {
		p.forward[i] = i
		p.backward[i] = i
	}

	seen := make([]bool, n)
	var group []int
	inGroup := false
	for _, r := range cycles {
		switch {
		case r == '(':
			if inGroup {
				return nil, fmt.Errorf("%w: nested parenthesis", ErrMalformedCycleSpec)
			}
			inGroup = true
			group = group[:0]
		case r == ')':
			if !inGroup {
				return nil, fmt.Errorf("%w: unexpected close parenthesis", ErrMalformedCycleSpec)
			}
			if len(group) == 0 {
				return nil, fmt.Errorf("%w: empty cycle", ErrMalformedCycleSpec)
			}
			p.addCycle(group)
			inGroup = false
		case unicode.IsSpace(r):
			if inGroup {
				return nil, fmt.Errorf("%w: whitespace inside cycle", ErrMalformedCycleSpec)
			}
		default:
			if !inGroup {
				return nil, fmt.Errorf("%w: symbol %q outside cycle", ErrMalformedCycleSpec, r)
			}
			i, err := alpha.ToIndex(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q not in alphabet", ErrMalformedCycleSpec, r)
			}
			if seen[i] {
				return nil, fmt.Errorf("%w: %q appears twice", ErrMalformedCycleSpec, r)
			}
			seen[i] = true
			group = append(group, i)
		}
	}
	if inGroup {
		return nil, fmt.Errorf("%w: unclosed parenthesis", ErrMalformedCycleSpec)
	}
	return p, nil
}

// addCycle records the links c0→c1→...→cm→c0 in both lookup tables.
func (p *Permutation) addCycle(group []int) {
	for k, from := range group {
		to := group[(k+1)%len(group)]
		p.forward[from] = to
		p.backward[to] = from
	}
}

// Size returns the size of the alphabet being permuted.
func (p *Permutation) Size() int { return p.alpha.Size() }

// Alphabet returns the alphabet this permutation is bound to.
func (p *Permutation) Alphabet() *alphabet.Alphabet { return p.alpha }

// Cycles returns the original cycle spec.
func (p *Permutation) Cycles() string { return p.cycles }

// Wrap reduces i modulo the alphabet size with a non-negative remainder.
func (p *Permutation) Wrap(i int) int {
	r := i % p.Size()
	if r < 0 {
		r += p.Size()
	}
	return r
}

// Permute applies the permutation to i modulo the alphabet size.
func (p *Permutation) Permute(i int) int { return p.forward[p.Wrap(i)] }

// Invert applies the inverse permutation to i modulo the alphabet size.
func (p *Permutation) Invert(i int) int { return p.backward[p.Wrap(i)] }

// PermuteSymbol applies the permutation in symbol space.
func (p *Permutation) PermuteSymbol(r rune) (rune, error) {
	i, err := p.alpha.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alpha.ToSymbol(p.forward[i])
}

// InvertSymbol applies the inverse permutation in symbol space.
func (p *Permutation) InvertSymbol(r rune) (rune, error) {
	i, err := p.alpha.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alpha.ToSymbol(p.backward[i])
}

// Derangement reports whether no index maps to itself.
func (p *Permutation) Derangement() bool {
	for i, to := range p.forward {
		if i == to {
			return false
		}
	}
	return true
}
