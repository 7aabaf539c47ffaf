// ecocatch is a terminal arcade game: move the paddle to catch falling
// recyclables and dodge the trash.
//
// Usage:
//
//	ecocatch                 - Play locally (same as "ecocatch play")
//	ecocatch play            - Play locally
//	ecocatch serve           - Start SSH server for remote play
//	ecocatch config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecocatch/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecocatch",
	Short: "Eco Catch - catch the recyclables, dodge the trash",
	Long: `Eco Catch is a terminal arcade game. Move the paddle to catch falling
recyclables (+10) and avoid trash (-5). Missing ten recyclables ends the game.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print or check game configuration

Examples:
  ecocatch
  ecocatch play --seed 42
  ecocatch serve --ssh :2222
  ecocatch config --check ./my-ecocatch.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game tuning or exits with an error.
func loadGameConfig() config.EcoConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
