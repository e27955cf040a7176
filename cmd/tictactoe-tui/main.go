// Command tictactoe-tui plays a local match against the engine in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/config"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/match"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/tui"
)

const logFile = "tictactoe-arcade/tui.log"

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(config.Locate())

	logger, closeLog := initLogger()
	defer closeLog()

	app := tview.NewApplication()

	view := tui.New(func() { app.QueueUpdateDraw(func() {}) }, app.Stop)

	controller := match.New(logger, engine.New(engine.NewSource()), match.Options{
		GameID:     conf.Match.GameID,
		Difficulty: conf.Match.Difficulty(),
		ReplyDelay: conf.Match.ReplyDelay,
	}, match.Collaborators{Presenter: view})

	view.Bind(controller)
	controller.Start()

	if err := app.SetRoot(view.Root(), true).SetFocus(view.Box).Run(); err != nil {
		panic(fmt.Errorf("tui run failed: %w", err))
	}
}

// initLogger writes JSON logs under the XDG state dir; the terminal belongs to the board.
func initLogger() (*slog.Logger, func()) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		path = filepath.Join(os.TempDir(), filepath.Base(logFile))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return logger, func() { _ = file.Close() }
}
