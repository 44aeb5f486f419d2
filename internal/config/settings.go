package config

import (
	"errors"
	"fmt"
	"strings"

	"enigma/internal/machine"
	"enigma/internal/permutation"
)

var (
	// ErrBadSettingsLine reports a malformed settings line.
	ErrBadSettingsLine = errors.New("bad settings line")
	// ErrSettingsFirst reports a message line arriving before any settings
	// line has configured the machine.
	ErrSettingsFirst = errors.New("message before settings line")
)

// IsSettingsLine reports whether a processed input line reconfigures the
// machine rather than carrying a message.
func IsSettingsLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "*")
}

// ApplySettings parses a settings line and reconfigures m. The grammar is
//
//	* NAME... SETTING (CYCLE)(CYCLE)...
//
// with exactly NumRotors() rotor names, an optional setting word of
// NumRotors()-1 symbols, and zero or more plugboard cycles. Rotor insertion
// is atomic: a failed InsertRotors leaves the previous rotors in place. If
// the setting word or a plugboard cycle fails after insertion succeeded, the
// newly inserted rotors stay installed at position zero with the previous
// plugboard, so the caller should treat the machine as unconfigured until
// ApplySettings returns nil.
func ApplySettings(m *machine.Machine, line string) error {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "*") {
		return fmt.Errorf("%w: missing leading *", ErrBadSettingsLine)
	}
	fields := strings.Fields(trimmed[1:])
	if len(fields) < m.NumRotors() {
		return fmt.Errorf("%w: %d tokens, need %d rotor names", ErrBadSettingsLine, len(fields), m.NumRotors())
	}

	names := fields[:m.NumRotors()]
	rest := fields[m.NumRotors():]

	setting := ""
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		setting = rest[0]
		rest = rest[1:]
	}
	var plug strings.Builder
	for _, tok := range rest {
		if !strings.HasPrefix(tok, "(") {
			return fmt.Errorf("%w: unexpected token %q", ErrBadSettingsLine, tok)
		}
		plug.WriteString(tok)
	}

	if err := m.InsertRotors(names); err != nil {
		return err
	}
	if err := m.SetRotors(setting); err != nil {
		return err
	}
	p, err := permutation.New(plug.String(), m.Alphabet())
	if err != nil {
		return fmt.Errorf("plugboard: %w", err)
	}
	m.SetPlugboard(p)
	return nil
}
