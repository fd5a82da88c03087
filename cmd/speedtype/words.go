package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedtype/internal/words"
)

var flagShowWords bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the word corpus",
	Long: `Shows the levels of the word corpus and how many words each holds.

Examples:
  speedtype words
  speedtype words --all
  speedtype words --words ./my-words.txt`,
	Run: runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagWords, "words", "", "Path to a word list (.yaml leveled corpus or plain text)")
	wordsCmd.Flags().BoolVar(&flagShowWords, "all", false, "Print every word")
}

func runWords(_ *cobra.Command, _ []string) {
	corpus, err := words.Load(flagWords)
	if err != nil {
		fail("%v", err)
	}

	source := flagWords
	if source == "" {
		source = "embedded"
	}
	fmt.Printf("Word corpus (%s): %d words\n", source, corpus.Len())
	fmt.Println()

	fmt.Printf("  %-5s  %s\n", "Level", "Words")
	fmt.Printf("  %-5s  %s\n", "-----", "-----")
	for _, level := range corpus.Levels() {
		list := corpus.Words(level)
		fmt.Printf("  %-5d  %d\n", level, len(list))
		if flagShowWords {
			fmt.Printf("         %s\n", strings.Join(list, " "))
		}
	}
}
