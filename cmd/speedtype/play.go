package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/game"
	"github.com/vovakirdan/speedtype/internal/platform/tui"
	"github.com/vovakirdan/speedtype/internal/scene"
	"github.com/vovakirdan/speedtype/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a typing round in the terminal.

Type "start" on the welcome screen. After a short countdown a word appears;
type it letter by letter. A wrong key shakes the letter and counts as a
mistake. Once every word of the round is typed, the score screen shows your
time, accuracy and score. Type "restart" to go again.

Controls:
  letters   - Type
  Ctrl+S    - Save a text screenshot to ~/.speedtype/screenshots
  Esc/Ctrl+C - Quit

Examples:
  speedtype play
  speedtype play --difficulty easy
  speedtype play --words ./my-words.txt
  speedtype play --config ./speedtype.toml --log-file /tmp/speedtype.log`,
	Run: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags; the root command runs play too.
func addPlayFlags(cmd *cobra.Command) {
	addSettingsFlags(cmd)
	cmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name results are recorded under")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}

	// Logs must never reach the alt screen
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "speedtype")
	if err != nil {
		fail("%v", err)
	}
	logger.Info("starting", "config", s.source, "words", s.corpus.Len(), "player", flagPlayer)

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var recorder game.ResultRecorder
	if store != nil {
		recorder = storage.Recorder{Store: store, Player: flagPlayer}
	}

	g := game.New(scene.NewWelcome(), game.Options{
		Config:   &s.cfg,
		Corpus:   s.corpus,
		Rand:     newRand(),
		Recorder: recorder,
		Logger:   logger,
		Width:    width,
		Height:   height,
	})

	runErr := tui.Run(g, tui.ModelOptions{
		TickRate: s.tickRate,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
