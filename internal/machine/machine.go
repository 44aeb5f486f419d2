// Package machine assembles rotors into a stateful cipher machine: an
// ordered slot assignment (reflector in slot 0, fastest rotor last), a
// plugboard, the double-step advance rule, and the full signal path.
package machine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"enigma/internal/alphabet"
	"enigma/internal/permutation"
	"enigma/internal/rotor"
)

var (
	// ErrUnknownRotor reports a rotor name absent from the catalog.
	ErrUnknownRotor = errors.New("unknown rotor")
	// ErrTooManyMovingRotors reports more rotating rotors than pawls.
	ErrTooManyMovingRotors = errors.New("more moving rotors than pawls")
	// ErrMissingReflector reports a non-reflector in slot 0.
	ErrMissingReflector = errors.New("slot 0 is not a reflector")
	// ErrMisplacedReflector reports a reflector outside slot 0.
	ErrMisplacedReflector = errors.New("reflector outside slot 0")
	// ErrSettingLengthMismatch reports a setting string whose length is not
	// the number of installed rotors minus one.
	ErrSettingLengthMismatch = errors.New("setting length mismatch")
	// ErrNoRotorsInstalled reports a conversion attempted before InsertRotors.
	ErrNoRotorsInstalled = errors.New("no rotors installed")
	// ErrSlotCountMismatch reports an InsertRotors list of the wrong length.
	ErrSlotCountMismatch = errors.New("rotor name count does not match slots")
)

// Step records one keystroke for an attached trace observer. Window holds
// the post-advance settings of slots 1..n as symbols; Input, Plugged and
// Output follow the symbol through entry, the first plugboard pass, and exit.
type Step struct {
	Window  string
	Input   rune
	Plugged rune
	Output  rune
}

// TraceFunc observes one Step per converted character. Tracing is opt-in
// per machine; there is no process-wide flag.
type TraceFunc func(Step)

// Machine is the assembled cipher machine. It is a single-writer value:
// every conversion mutates rotor settings, so concurrent use of one Machine
// is invalid. Clone independent machines for parallel messages.
type Machine struct {
	alpha     *alphabet.Alphabet
	numRotors int
	numPawls  int
	catalog   []*rotor.Rotor
	slots     []*rotor.Rotor
	plugboard *permutation.Permutation
	trace     TraceFunc
}

// New builds a machine with numRotors slots of which at most numPawls may
// rotate, drawing rotors by name from catalog. The plugboard starts as the
// identity.
func New(alpha *alphabet.Alphabet, numRotors, numPawls int, catalog []*rotor.Rotor) (*Machine, error) {
	if numRotors < 2 {
		return nil, fmt.Errorf("machine needs at least 2 rotor slots, got %d", numRotors)
	}
	if numPawls < 0 || numPawls >= numRotors {
		return nil, fmt.Errorf("pawl count %d out of range [0, %d)", numPawls, numRotors)
	}
	identity, err := permutation.New("", alpha)
	if err != nil {
		return nil, err
	}
	return &Machine{
		alpha:     alpha,
		numRotors: numRotors,
		numPawls:  numPawls,
		catalog:   catalog,
		plugboard: identity,
	}, nil
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *alphabet.Alphabet { return m.alpha }

// NumRotors returns the slot count.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the maximum number of rotating rotors.
func (m *Machine) NumPawls() int { return m.numPawls }

// Rotor returns the installed rotor in slot k; slot 0 is the reflector and
// slot NumRotors()-1 the fastest rotor.
func (m *Machine) Rotor(k int) *rotor.Rotor { return m.slots[k] }

// Plugboard returns the current plugboard permutation.
func (m *Machine) Plugboard() *permutation.Permutation { return m.plugboard }

// SetTrace attaches fn as the keystroke observer; nil detaches it.
func (m *Machine) SetTrace(fn TraceFunc) { m.trace = fn }

// InsertRotors replaces the installed rotor sequence with the named catalog
// rotors, names[0] being the reflector. The previous sequence is kept intact
// if any validation fails. Installed rotors are reset to setting 0.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return fmt.Errorf("%w: got %d names for %d slots", ErrSlotCountMismatch, len(names), m.numRotors)
	}
	slots := make([]*rotor.Rotor, 0, m.numRotors)
	moving := 0
	for _, name := range names {
		r := m.lookup(name)
		if r == nil {
			return fmt.Errorf("%w: %q", ErrUnknownRotor, name)
		}
		if r.Rotates() {
			moving++
		}
		slots = append(slots, r)
	}
	if moving > m.numPawls {
		return fmt.Errorf("%w: %d moving, %d pawls", ErrTooManyMovingRotors, moving, m.numPawls)
	}
	if !slots[0].Reflecting() {
		return fmt.Errorf("%w: got %s rotor %q", ErrMissingReflector, slots[0].Kind(), slots[0].Name())
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Reflecting() {
			return fmt.Errorf("%w: %q in slot %d", ErrMisplacedReflector, slots[i].Name(), i)
		}
	}
	for _, r := range slots {
		if err := r.SetIndex(0); err != nil {
			return err
		}
	}
	m.slots = slots
	return nil
}

func (m *Machine) lookup(name string) *rotor.Rotor {
	for _, r := range m.catalog {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// SetRotors applies one character of setting to each installed rotor in
// slot order, skipping the reflector. len(setting) must be NumRotors()-1.
func (m *Machine) SetRotors(setting string) error {
	if len(m.slots) == 0 {
		return ErrNoRotorsInstalled
	}
	runes := []rune(setting)
	if len(runes) != m.numRotors-1 {
		return fmt.Errorf("%w: %d characters for %d rotors", ErrSettingLengthMismatch, len(runes), m.numRotors)
	}
	for i, r := range runes {
		if err := m.slots[i+1].Set(r); err != nil {
			return err
		}
	}
	return nil
}

// SetPlugboard replaces the plugboard permutation. Non-derangement
// plugboards are valid: a letter may be wired to itself.
func (m *Machine) SetPlugboard(p *permutation.Permutation) {
	m.plugboard = p
}

// ConvertIndex advances the rotors, then carries index c through the
// plugboard, the rotor stack and back. c is reduced modulo the alphabet
// size first.
func (m *Machine) ConvertIndex(c int) (int, error) {
	if len(m.slots) == 0 {
		return 0, ErrNoRotorsInstalled
	}
	m.advanceRotors()

	in := m.plugboard.Wrap(c)
	c = m.plugboard.Permute(in)
	plugged := c
	for i := len(m.slots) - 1; i >= 0; i-- {
		c = m.slots[i].ConvertForward(c)
	}
	// Slot 0 already folded the signal back; the return pass starts at 1.
	for i := 1; i < len(m.slots); i++ {
		c = m.slots[i].ConvertBackward(c)
	}
	c = m.plugboard.Permute(c)

	if m.trace != nil {
		m.emitStep(in, plugged, c)
	}
	return c, nil
}

// ConvertRune converts a single symbol, advancing the machine.
func (m *Machine) ConvertRune(r rune) (rune, error) {
	i, err := m.alpha.ToIndex(r)
	if err != nil {
		return 0, err
	}
	out, err := m.ConvertIndex(i)
	if err != nil {
		return 0, err
	}
	return m.alpha.ToSymbol(out)
}

// ConvertMessage strips all whitespace from msg and converts the remaining
// symbols in order, carrying rotor state across the whole message.
func (m *Machine) ConvertMessage(msg string) (string, error) {
	var out strings.Builder
	for _, r := range msg {
		if unicode.IsSpace(r) {
			continue
		}
		c, err := m.ConvertRune(r)
		if err != nil {
			return "", err
		}
		out.WriteRune(c)
	}
	return out.String(), nil
}

// Clone returns an independent machine with copies of the installed rotors
// at their current settings. The catalog and plugboard are shared; both are
// immutable.
func (m *Machine) Clone() *Machine {
	cp := &Machine{
		alpha:     m.alpha,
		numRotors: m.numRotors,
		numPawls:  m.numPawls,
		catalog:   m.catalog,
		plugboard: m.plugboard,
	}
	if m.slots != nil {
		cp.slots = make([]*rotor.Rotor, len(m.slots))
		for i, r := range m.slots {
			cp.slots[i] = r.Clone()
		}
	}
	return cp
}

// advanceRotors applies the double-step rule. Notch states are snapshotted
// before any rotor moves so every advance decision reads the same pre-step
// view; the advanced flags fill in slot order, which is what lets a rotor
// at its notch step together with its just-advanced left neighbor.
func (m *Machine) advanceRotors() {
	n := len(m.slots)
	atNotch := make([]bool, n)
	for i, r := range m.slots {
		atNotch[i] = r.AtNotch()
	}
	advanced := make([]bool, n)
	for i, r := range m.slots {
		switch {
		case i == n-1:
			advanced[i] = r.Rotates()
		case atNotch[i+1] && m.slots[i+1].Rotates() && r.Rotates():
			advanced[i] = true
		case i > 0 && atNotch[i] && advanced[i-1]:
			advanced[i] = true
		}
	}
	for i, r := range m.slots {
		if advanced[i] {
			r.Advance()
		}
	}
}

// emitStep renders the post-advance rotor window and symbol path for the
// trace observer. Lookup failures cannot happen here: every value came out
// of the alphabet's own index space.
func (m *Machine) emitStep(in, plugged, out int) {
	var window strings.Builder
	for i := 1; i < len(m.slots); i++ {
		sym, _ := m.alpha.ToSymbol(m.slots[i].Setting())
		window.WriteRune(sym)
	}
	inSym, _ := m.alpha.ToSymbol(in)
	plugSym, _ := m.alpha.ToSymbol(plugged)
	outSym, _ := m.alpha.ToSymbol(out)
	m.trace(Step{
		Window:  window.String(),
		Input:   inSym,
		Plugged: plugSym,
		Output:  outSym,
	})
}
