// Package display formats the core's output for terminals: converted text
// in fixed-width letter groups, and rotor catalogs and keystroke traces as
// tables.
package display

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"enigma/internal/config"
	"enigma/internal/machine"
)

// DefaultGroup is the classic transmission group width.
const DefaultGroup = 5

// Mode controls table rendering.
type Mode int

const (
	ASCII    Mode = iota // box-drawing terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// GroupLetters splits s into space-separated groups of width letters; the
// last group may be short. Width 0 or less leaves s untouched.
func GroupLetters(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%width == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CatalogTable renders a rotor catalog.
func CatalogTable(defs []config.RotorDef, m Mode) string {
	w := newWriter(m)
	w.AppendHeader(table.Row{"Name", "Kind", "Notches", "Cycles"})
	for _, rd := range defs {
		w.AppendRow(table.Row{rd.Name, rd.Kind, rd.Notches, rd.Cycles})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
	})
	return render(w, m)
}

// TraceTable renders the per-keystroke trace of a conversion: the rotor
// window after stepping and the symbol's path through the plugboard.
func TraceTable(steps []machine.Step, m Mode) string {
	w := newWriter(m)
	w.AppendHeader(table.Row{"#", "Window", "In", "Plug", "Out"})
	for i, s := range steps {
		w.AppendRow(table.Row{i + 1, s.Window, string(s.Input), string(s.Plugged), string(s.Output)})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return render(w, m)
}

func newWriter(m Mode) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
