// Package config describes machines as data: the alphabet, the slot and
// pawl counts, and the rotor catalog. Definitions load from YAML or JSON
// files and build into ready machine values.
package config

import (
	"errors"
	"fmt"

	"enigma/internal/alphabet"
	"enigma/internal/machine"
	"enigma/internal/permutation"
	"enigma/internal/rotor"
)

var (
	// ErrBadRotorDescription reports a catalog entry that cannot be built.
	ErrBadRotorDescription = errors.New("bad rotor description")
	// ErrTruncated reports a definition missing a required field.
	ErrTruncated = errors.New("machine definition truncated")
)

// RotorDef is one catalog entry.
type RotorDef struct {
	Name    string `yaml:"name" json:"name"`
	Kind    string `yaml:"kind" json:"kind"` // moving, fixed or reflector
	Cycles  string `yaml:"cycles" json:"cycles"`
	Notches string `yaml:"notches,omitempty" json:"notches,omitempty"`
}

// Definition is a complete machine description.
type Definition struct {
	Alphabet string     `yaml:"alphabet" json:"alphabet"`
	Rotors   int        `yaml:"rotors" json:"rotors"`
	Pawls    int        `yaml:"pawls" json:"pawls"`
	Catalog  []RotorDef `yaml:"catalog" json:"catalog"`
}

// Validate checks the definition for missing pieces before building.
func (d Definition) Validate() error {
	if d.Alphabet == "" {
		return fmt.Errorf("%w: no alphabet", ErrTruncated)
	}
	if d.Rotors == 0 {
		return fmt.Errorf("%w: no rotor slot count", ErrTruncated)
	}
	if len(d.Catalog) == 0 {
		return fmt.Errorf("%w: empty rotor catalog", ErrTruncated)
	}
	for _, rd := range d.Catalog {
		if rd.Name == "" {
			return fmt.Errorf("%w: unnamed rotor", ErrBadRotorDescription)
		}
		switch rd.Kind {
		case "moving", "fixed", "reflector":
		default:
			return fmt.Errorf("%w: rotor %s has kind %q", ErrBadRotorDescription, rd.Name, rd.Kind)
		}
	}
	return nil
}

// Build constructs the machine: alphabet, catalog rotors, then the machine
// itself with an identity plugboard.
func (d Definition) Build() (*machine.Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	alpha, err := alphabet.New(d.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("build alphabet: %w", err)
	}
	catalog := make([]*rotor.Rotor, 0, len(d.Catalog))
	for _, rd := range d.Catalog {
		r, err := buildRotor(rd, alpha)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, r)
	}
	m, err := machine.New(alpha, d.Rotors, d.Pawls, catalog)
	if err != nil {
		return nil, fmt.Errorf("build machine: %w", err)
	}
	return m, nil
}

func buildRotor(rd RotorDef, alpha *alphabet.Alphabet) (*rotor.Rotor, error) {
	p, err := permutation.New(rd.Cycles, alpha)
	if err != nil {
		return nil, fmt.Errorf("%w: rotor %s: %v", ErrBadRotorDescription, rd.Name, err)
	}
	switch rd.Kind {
	case "moving":
		r, err := rotor.NewMoving(rd.Name, p, rd.Notches)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRotorDescription, err)
		}
		return r, nil
	case "fixed":
		if rd.Notches != "" {
			return nil, fmt.Errorf("%w: fixed rotor %s has notches", ErrBadRotorDescription, rd.Name)
		}
		return rotor.NewFixed(rd.Name, p), nil
	case "reflector":
		if rd.Notches != "" {
			return nil, fmt.Errorf("%w: reflector %s has notches", ErrBadRotorDescription, rd.Name)
		}
		r, err := rotor.NewReflector(rd.Name, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRotorDescription, err)
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: rotor %s has kind %q", ErrBadRotorDescription, rd.Name, rd.Kind)
}
