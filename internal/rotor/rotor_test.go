package rotor

import (
	"errors"
	"testing"

	"enigma/internal/alphabet"
	"enigma/internal/permutation"
)

func perm(t *testing.T, cycles string) *permutation.Permutation {
	t.Helper()
	a, err := alphabet.New("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		t.Fatalf("alphabet: %v", err)
	}
	p, err := permutation.New(cycles, a)
	if err != nil {
		t.Fatalf("permutation %q: %v", cycles, err)
	}
	return p
}

const rotorI = "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"

func TestNewReflector_RequiresDerangement(t *testing.T) {
	if _, err := NewReflector("B", perm(t, "(AE) (BN)")); !errors.Is(err, ErrNotDerangement) {
		t.Errorf("err = %v, want ErrNotDerangement", err)
	}
	refl, err := NewReflector("B", perm(t, "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"))
	if err != nil {
		t.Fatalf("NewReflector: %v", err)
	}
	if !refl.Reflecting() || refl.Rotates() {
		t.Errorf("reflector flags: reflecting=%v rotates=%v", refl.Reflecting(), refl.Rotates())
	}
	if refl.Notches() != "" {
		t.Errorf("reflector Notches() = %q, want empty", refl.Notches())
	}
}

func TestNewMoving_BadNotch(t *testing.T) {
	if _, err := NewMoving("I", perm(t, rotorI), "Q*"); !errors.Is(err, ErrBadNotch) {
		t.Errorf("err = %v, want ErrBadNotch", err)
	}
}

func TestAdvance_WrapsAndStaysInRange(t *testing.T) {
	r, err := NewMoving("I", perm(t, rotorI), "Q")
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	for i := 0; i < 60; i++ {
		if s := r.Setting(); s < 0 || s >= 26 {
			t.Fatalf("setting %d out of range after %d advances", s, i)
		}
		r.Advance()
	}
	if err := r.SetIndex(25); err != nil {
		t.Fatalf("SetIndex: %v", err)
	}
	r.Advance()
	if r.Setting() != 0 {
		t.Errorf("setting after wrap = %d, want 0", r.Setting())
	}
}

func TestAdvance_PanicsOnFixed(t *testing.T) {
	f := NewFixed("Beta", perm(t, rotorI))
	defer func() {
		if recover() == nil {
			t.Error("Advance on fixed rotor did not panic")
		}
	}()
	f.Advance()
}

func TestAtNotch(t *testing.T) {
	r, err := NewMoving("VI", perm(t, rotorI), "ZM")
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	for _, c := range []struct {
		sym  rune
		want bool
	}{{'Z', true}, {'M', true}, {'A', false}, {'Q', false}} {
		if err := r.Set(c.sym); err != nil {
			t.Fatalf("Set(%q): %v", c.sym, err)
		}
		if got := r.AtNotch(); got != c.want {
			t.Errorf("AtNotch at %q = %v, want %v", c.sym, got, c.want)
		}
	}

	f := NewFixed("Beta", perm(t, rotorI))
	if f.AtNotch() {
		t.Error("fixed rotor AtNotch() = true")
	}
}

func TestConvert_OffsetCompensation(t *testing.T) {
	r, err := NewMoving("I", perm(t, rotorI), "Q")
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	// At setting 0 the rotor is its bare permutation: A -> E.
	if got := r.ConvertForward(0); got != 4 {
		t.Errorf("ConvertForward(A) at 0 = %d, want 4", got)
	}
	// At setting 1 (B), input A enters on contact B: permute(1)=K(10), minus
	// offset gives J(9).
	if err := r.Set('B'); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := r.ConvertForward(0); got != 9 {
		t.Errorf("ConvertForward(A) at B = %d, want 9", got)
	}
}

func TestConvert_BackwardInvertsForward(t *testing.T) {
	r, err := NewMoving("I", perm(t, rotorI), "Q")
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	for setting := 0; setting < 26; setting++ {
		if err := r.SetIndex(setting); err != nil {
			t.Fatalf("SetIndex: %v", err)
		}
		for c := 0; c < 26; c++ {
			if got := r.ConvertBackward(r.ConvertForward(c)); got != c {
				t.Fatalf("backward(forward(%d)) = %d at setting %d", c, got, setting)
			}
		}
	}
}

func TestClone_IndependentSetting(t *testing.T) {
	r, err := NewMoving("I", perm(t, rotorI), "Q")
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	cp := r.Clone()
	cp.Advance()
	if r.Setting() != 0 || cp.Setting() != 1 {
		t.Errorf("settings after clone advance: orig=%d copy=%d", r.Setting(), cp.Setting())
	}
}
