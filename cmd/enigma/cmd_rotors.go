package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/display"
)

var rotorsFlags struct {
	markdown bool
}

func newRotorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotors",
		Short: "Show the rotor catalog of the loaded machine definition",
		RunE:  runRotors,
	}
	cmd.Flags().BoolVar(&rotorsFlags.markdown, "markdown", false, "Render as a Markdown table")
	return cmd
}

func runRotors(cmd *cobra.Command, _ []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	mode := display.ASCII
	if rotorsFlags.markdown {
		mode = display.Markdown
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Alphabet: %s\nSlots: %d  Pawls: %d\n", def.Alphabet, def.Rotors, def.Pawls)
	fmt.Fprintln(out, display.CatalogTable(def.Catalog, mode))
	return nil
}
