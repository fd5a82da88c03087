package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/speedtype/internal/platform/tui"
	"github.com/vovakirdan/speedtype/internal/storage"
)

var (
	flagLimit       int
	flagScorePlayer string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded rounds.

On a terminal the scores open in an interactive table (Tab switches between
everyone's best rounds and your recent ones). When the output is piped, a
plain text list is printed instead.

Examples:
  speedtype scores
  speedtype scores --player ann --limit 5
  speedtype scores | head
  speedtype scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to list")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Only list rounds of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All recorded rounds deleted.")
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		player := flagScorePlayer
		if player == "" {
			player = defaultPlayer()
		}
		if err := tui.RunScoreboard(store, player, width, height); err != nil {
			store.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	if err := printScores(store); err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}
}

// printScores writes a plain text table for pipes.
func printScores(store *storage.Store) error {
	var results []storage.ResultEntry
	var err error
	if flagScorePlayer != "" {
		results, err = store.PlayerResults(flagScorePlayer, flagLimit)
		fmt.Printf("Recent rounds - %s\n", flagScorePlayer)
	} else {
		results, err = store.TopResults(flagLimit)
		fmt.Println("High Scores")
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'speedtype play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %-7s  %s\n", "Rank", "Player", "Score", "Time", "Acc", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %-7s  %s\n", "----", "------", "-----", "----", "---", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-12s  %-6d  %-8s  %-7s  %s\n",
			i+1,
			r.Player,
			r.Score,
			fmt.Sprintf("%.2fs", float64(r.TimeMs)/1000),
			fmt.Sprintf("%.1f%%", r.Accuracy),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Rounds: %d  Average: %.0f\n", stats.BestScore, stats.Rounds, stats.AvgScore)
	}
	return nil
}
