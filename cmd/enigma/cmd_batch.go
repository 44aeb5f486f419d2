package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"enigma/internal/display"
	"enigma/internal/logging"
	"enigma/internal/permutation"
)

var batchFlags struct {
	rotors    []string
	setting   string
	plugboard string
	group     int
	jobs      int
	suffix    string
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Convert message files in parallel",
		Long: `Converts each FILE with an independent machine started from the same
configuration, writing FILE` + "`.out`" + ` (or the --suffix) next to it. Machines
do not share rotor state, so results match running each file alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}

	f := cmd.Flags()
	f.StringSliceVar(&batchFlags.rotors, "rotors", nil, "Rotor names in slot order, reflector first (required)")
	f.StringVar(&batchFlags.setting, "setting", "", "Initial rotor positions (required)")
	f.StringVar(&batchFlags.plugboard, "plugboard", "", "Plugboard cycles")
	f.IntVar(&batchFlags.group, "group", display.DefaultGroup, "Output group width (0 = ungrouped)")
	f.IntVar(&batchFlags.jobs, "jobs", runtime.NumCPU(), "Maximum concurrent files")
	f.StringVar(&batchFlags.suffix, "suffix", ".out", "Suffix appended to each output filename")

	_ = cmd.MarkFlagRequired("rotors")
	_ = cmd.MarkFlagRequired("setting")
	return cmd
}

func runBatch(_ *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	base, err := def.Build()
	if err != nil {
		return err
	}
	if err := base.InsertRotors(batchFlags.rotors); err != nil {
		return err
	}
	if err := base.SetRotors(batchFlags.setting); err != nil {
		return err
	}
	if batchFlags.plugboard != "" {
		p, err := permutation.New(batchFlags.plugboard, base.Alphabet())
		if err != nil {
			return fmt.Errorf("plugboard: %w", err)
		}
		base.SetPlugboard(p)
	}

	logger := logging.New("batch")
	var g errgroup.Group
	g.SetLimit(batchFlags.jobs)
	for _, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			m := base.Clone()
			converted, err := m.ConvertMessage(string(data))
			if err != nil {
				return fmt.Errorf("convert %s: %w", path, err)
			}
			outPath := path + batchFlags.suffix
			grouped := display.GroupLetters(converted, batchFlags.group)
			if err := os.WriteFile(outPath, []byte(grouped+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			logger.Info("converted", "in", path, "out", outPath, "symbols", len(converted))
			return nil
		})
	}
	return g.Wait()
}
