package display_test

import (
	"strings"
	"testing"

	"enigma/internal/config"
	"enigma/internal/display"
	"enigma/internal/machine"
)

func TestGroupLetters(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"", 5, ""},
		{"ABC", 5, "ABC"},
		{"ABCDE", 5, "ABCDE"},
		{"ABCDEF", 5, "ABCDE F"},
		{"HYIHLYDIQNNJNDZDHOOEEHHL", 5, "HYIHL YDIQN NJNDZ DHOOE EHHL"},
		{"ABCDEF", 0, "ABCDEF"},
		{"ABCDEF", 3, "ABC DEF"},
	}
	for _, c := range cases {
		if got := display.GroupLetters(c.in, c.width); got != c.want {
			t.Errorf("GroupLetters(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestCatalogTable_ASCII(t *testing.T) {
	out := display.CatalogTable(config.Default().Catalog, display.ASCII)
	// The terminal style upper-cases header cells; row cells keep their case.
	for _, want := range []string{"NAME", "III", "reflector", "(AE)"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog table missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestCatalogTable_Markdown(t *testing.T) {
	out := display.CatalogTable(config.Default().Catalog, display.Markdown)
	if !strings.Contains(out, "| Name") {
		t.Errorf("expected markdown header:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator:\n%s", out)
	}
}

func TestTraceTable(t *testing.T) {
	steps := []machine.Step{
		{Window: "AAB", Input: 'H', Plugged: 'H', Output: 'D'},
		{Window: "AAC", Input: 'E', Plugged: 'E', Output: 'C'},
	}
	out := display.TraceTable(steps, display.ASCII)
	for _, want := range []string{"WINDOW", "AAB", "AAC", "D", "C"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace table missing %q:\n%s", want, out)
		}
	}
}
