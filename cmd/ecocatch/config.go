package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecocatch/internal/config"
)

var flagCheckPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Without flags, prints the built-in configuration as YAML. Save it to
~/.ecocatch/configs/ecocatch.yaml or ./configs/ecocatch.yaml and edit it to
change the game; only the keys you change need to stay in the file.

With --check, loads and validates the given file and reports the first
problem found.

Examples:
  ecocatch config > ./configs/ecocatch.yaml
  ecocatch config --check ./configs/ecocatch.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheckPath, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheckPath == "" {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if _, err := config.LoadFile(flagCheckPath); err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Invalid config [%s]: %s\n", verr.Code, verr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("%s: OK\n", flagCheckPath)
}
