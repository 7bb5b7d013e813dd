// ttrys is a terminal falling-block puzzle game.
//
// Usage:
//
//	ttrys                    - Play (marathon mode)
//	ttrys --zen              - Play without gravity speedup
//	ttrys scores             - Show high scores
//	ttrys stats              - Show aggregated play statistics
//	ttrys serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ttrys/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ttrys/ttrys/internal/core"
	"github.com/ttrys/ttrys/internal/platform/tui"
	"github.com/ttrys/ttrys/internal/registry"
	"github.com/ttrys/ttrys/internal/storage"
	"github.com/ttrys/ttrys/internal/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Play flags
	flagConfig string
	flagPreset string
	flagZen    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ttrys",
	Short: "ttrys - A falling-block puzzle game for your terminal",
	Long: `ttrys is a terminal-based falling-block puzzle game.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Up/X       - Rotate clockwise
  Z          - Rotate counter-clockwise
  Down/S     - Soft drop
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Slower starting gravity
  normal - Default gravity curve
  hard   - Faster starting gravity
  fixed  - No gravity progression

Examples:
  ttrys
  ttrys --zen
  ttrys --preset hard
  ttrys --config ./my-tetris.yaml
  ttrys scores
  ttrys serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ttrys/scores.db", "Path to scores database")

	// Play flags on the root command - running ttrys with no arguments
	// starts the game
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagZen, "zen", false, "Zen mode: gravity never speeds up")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if flagZen {
		gameID = "tetris_zen"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and preset before game creation
	tetris.SetConfigPath(flagConfig)
	tetris.SetPreset(flagPreset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
