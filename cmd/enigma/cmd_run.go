package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"enigma/internal/config"
	"enigma/internal/display"
	"enigma/internal/logging"
	"enigma/internal/machine"
)

var runFlags struct {
	group int
	trace bool
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [INPUT [OUTPUT]]",
		Short: "Process a stream of settings and message lines",
		Long: `Reads lines from INPUT (stdin when omitted). A line starting with *
reconfigures the machine:

    * B Beta I II III AXLE (YF) (ZH)

naming one rotor per slot (reflector first), then the initial rotor
positions, then plugboard cycles. Every other line is a message, converted
with the current configuration and written to OUTPUT (stdout when omitted)
in five-letter groups.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runRun,
	}

	f := cmd.Flags()
	f.IntVar(&runFlags.group, "group", display.DefaultGroup, "Output group width (0 = ungrouped)")
	f.BoolVar(&runFlags.trace, "trace", false, "Log the rotor window and symbol path per keystroke")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	out := cmd.OutOrStdout()
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	var trace machine.TraceFunc
	if runFlags.trace {
		logger := logging.New("trace")
		trace = func(s machine.Step) {
			logger.Info("keystroke",
				"window", s.Window,
				"in", string(s.Input),
				"plug", string(s.Plugged),
				"out", string(s.Output),
			)
		}
	}
	return processStream(def, in, out, runFlags.group, trace)
}

// processStream drives one machine over an input stream: settings lines
// reconfigure it, message lines convert through it. A message arriving
// before the first settings line is an error.
func processStream(def config.Definition, in io.Reader, out io.Writer, group int, trace machine.TraceFunc) error {
	m, err := def.Build()
	if err != nil {
		return err
	}
	if trace != nil {
		m.SetTrace(trace)
	}

	configured := false
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if config.IsSettingsLine(line) {
			if err := config.ApplySettings(m, line); err != nil {
				return err
			}
			configured = true
			continue
		}
		if !configured {
			return config.ErrSettingsFirst
		}
		converted, err := m.ConvertMessage(line)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, display.GroupLetters(converted, group)); err != nil {
			return err
		}
	}
	return sc.Err()
}
