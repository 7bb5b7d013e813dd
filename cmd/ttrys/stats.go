package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttrys/ttrys/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated play statistics",
	Long: `Display aggregated statistics for all game modes: games played,
high score, average score, and total lines cleared.

Examples:
  ttrys stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-10s  %-10s  %-6s  %s\n", "Mode", "Games", "Best", "Average", "Lines", "Last played")
	fmt.Printf("  %-12s  %-6s  %-10s  %-10s  %-6s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")

	for _, id := range []string{"tetris", "tetris_zen"} {
		s, ok := stats[id]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-10d  %-10.1f  %-6d  %s\n",
			s.GameID, s.GamesCount, s.HighScore, s.AvgScore, s.TotalLines,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
