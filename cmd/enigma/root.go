// enigma simulates a rotor cipher machine: a plugboard, a rotor stack with
// a reflector, and the classic double-stepping action.
//
// Usage:
//
//	enigma run [INPUT [OUTPUT]]            process settings and message lines
//	enigma encipher --rotors ... MESSAGE   one-shot conversion
//	enigma rotors                          show the rotor catalog
//	enigma batch -f FILE...                convert message files in parallel
//	enigma serve                           MCP server over stdio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"enigma/internal/config"
	"enigma/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	definition string
	logLevel   string
	logFormat  string
}

// newRootCmd builds a fresh command tree. Registering the flags anew resets
// the package-level flag values to their defaults, so each tree starts clean.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enigma",
		Short: "Rotor cipher machine simulator",
		Long: "Enigma simulates an electromechanical rotor cipher machine:\n" +
			"a plugboard, moving and fixed rotors, a reflector, and the\n" +
			"double-stepping advance rule, faithful to the historical design.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&rootFlags.definition, "definition", "d", "", "Machine definition file (YAML/JSON); built-in catalog when empty")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat, nil)
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newEncipherCmd())
	cmd.AddCommand(newRotorsCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newServeCmd())
	cmd.Version = version
	return cmd
}

// loadDefinition resolves the machine definition from --definition or the
// built-in catalog.
func loadDefinition() (config.Definition, error) {
	if rootFlags.definition == "" {
		return config.Default(), nil
	}
	return config.LoadFromPath(rootFlags.definition)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
