package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-maze/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryMode  string
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded generation runs",
	Long: `List the most recent recorded runs.

Every run stores its normalized parameters, the seed actually used and a
digest of the produced encoding. Pass a run ID to 'mazecore verify' to
regenerate the maze and compare.

Examples:
  mazecore history
  mazecore history --mode duel --limit 5
  mazecore history --stats
  mazecore history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagHistoryMode, "mode", "", "Only show runs of this mode (solo, solo-escape, duel, duel-escape)")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-mode aggregates instead of runs")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	store, err := storage.Open(cfg.Storage.Path)
	exitOnError("opening history database", err)
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearRuns(); err != nil {
			store.Close()
			exitOnError("clearing history", err)
		}
		fmt.Println("History cleared.")
	case flagHistoryStats:
		printModeStats(store)
	default:
		printRuns(store)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(storeLimit())
	if err != nil {
		store.Close()
		exitOnError("retrieving runs", err)
	}

	shown := runs[:0]
	for _, r := range runs {
		if flagHistoryMode == "" || r.Mode() == flagHistoryMode {
			shown = append(shown, r)
		}
	}
	if len(shown) > flagHistoryLimit && flagHistoryLimit > 0 {
		shown = shown[:flagHistoryLimit]
	}

	if len(shown) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mazecore generate' to record the first one.")
		return
	}

	fmt.Printf("  %-36s  %-11s  %-20s  %-7s  %-5s  %s\n", "Run", "Mode", "Seed", "Size", "Walls", "Date")
	fmt.Printf("  %-36s  %-11s  %-20s  %-7s  %-5s  %s\n", "---", "----", "----", "----", "-----", "----")
	for _, r := range shown {
		size := fmt.Sprintf("%dx%d", r.Params.Width, r.Params.Height)
		fmt.Printf("  %-36s  %-11s  %-20d  %-7s  %-5d  %s\n",
			r.RunID, r.Mode(), r.Params.Seed, size, r.Walls, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// storeLimit widens the query when filtering by mode so the filter still
// fills the requested count.
func storeLimit() int {
	if flagHistoryMode == "" {
		return flagHistoryLimit
	}
	return flagHistoryLimit * 10
}

func printModeStats(store *storage.Store) {
	stats, err := store.AllModeStats()
	if err != nil {
		store.Close()
		exitOnError("retrieving stats", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for m := range stats {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	fmt.Printf("  %-11s  %-5s  %-9s  %-9s  %-9s  %s\n", "Mode", "Runs", "Avg walls", "Avg enemy", "Fallbacks", "Last run")
	fmt.Printf("  %-11s  %-5s  %-9s  %-9s  %-9s  %s\n", "----", "----", "---------", "---------", "---------", "--------")
	for _, m := range modes {
		s := stats[m]
		fmt.Printf("  %-11s  %-5d  %-9.1f  %-9.1f  %-9d  %s\n",
			s.Mode, s.Runs, s.AvgWalls, s.AvgEnemy, s.Fallbacks, s.LastRun.Format("2006-01-02 15:04"))
	}
}
