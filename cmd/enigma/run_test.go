package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"enigma/internal/config"
)

func fourSlot() config.Definition {
	d := config.Default()
	d.Rotors = 4
	d.Pawls = 3
	return d
}

func TestProcessStream_SettingsAndMessages(t *testing.T) {
	in := strings.NewReader(`* B I II III AAA
HELLO
* B I II III AAA
HE LL O
`)
	var out bytes.Buffer
	if err := processStream(fourSlot(), in, &out, 5, nil); err != nil {
		t.Fatalf("processStream: %v", err)
	}
	want := "DCSBU\nDCSBU\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestProcessStream_GroupWidth(t *testing.T) {
	in := strings.NewReader("* B I II III AAA\nHELLO\n")
	var out bytes.Buffer
	if err := processStream(fourSlot(), in, &out, 2, nil); err != nil {
		t.Fatalf("processStream: %v", err)
	}
	if got := out.String(); got != "DC SB U\n" {
		t.Errorf("output = %q, want %q", got, "DC SB U\n")
	}
}

func TestProcessStream_MessageBeforeSettings(t *testing.T) {
	in := strings.NewReader("HELLO\n")
	var out bytes.Buffer
	err := processStream(fourSlot(), in, &out, 5, nil)
	if !errors.Is(err, config.ErrSettingsFirst) {
		t.Errorf("err = %v, want ErrSettingsFirst", err)
	}
}

func TestProcessStream_BlankMessageLine(t *testing.T) {
	in := strings.NewReader("* B I II III AAA\n\nHELLO\n")
	var out bytes.Buffer
	if err := processStream(fourSlot(), in, &out, 5, nil); err != nil {
		t.Fatalf("processStream: %v", err)
	}
	if got := out.String(); got != "\nDCSBU\n" {
		t.Errorf("output = %q, want %q", got, "\nDCSBU\n")
	}
}

func TestProcessStream_BadSettingsLine(t *testing.T) {
	in := strings.NewReader("* B I II\n")
	var out bytes.Buffer
	err := processStream(fourSlot(), in, &out, 5, nil)
	if !errors.Is(err, config.ErrBadSettingsLine) {
		t.Errorf("err = %v, want ErrBadSettingsLine", err)
	}
}

// encipherOnce runs the encipher command on a fresh command tree. Slice
// flags accumulate across Execute calls on a reused tree, so every
// invocation builds its own.
func encipherOnce(t *testing.T, message string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"encipher",
		"--rotors", "B,Beta,I,II,III",
		"--setting", "AAAA",
		"--group", "0",
		message,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return strings.TrimSpace(out.String())
}

func TestEncipherCommand(t *testing.T) {
	line := encipherOnce(t, "HELLO")
	if len(line) != 5 {
		t.Fatalf("output %q, want 5 symbols", line)
	}

	// The same configuration deciphers its own output.
	if got := encipherOnce(t, line); got != "HELLO" {
		t.Errorf("round trip = %q, want HELLO", got)
	}
}
