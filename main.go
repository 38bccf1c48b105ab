// Command interactive-map shows the 1820 map of Wąwolnica with the land
// register joined to its plots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/bsmietanka/interactive-map/internal/app"
	"github.com/bsmietanka/interactive-map/internal/cli"
	"github.com/bsmietanka/interactive-map/internal/config"
	"github.com/bsmietanka/interactive-map/internal/logger"
	"github.com/bsmietanka/interactive-map/ui/mainwindow"
	"github.com/bsmietanka/interactive-map/ui/prefs"
)

const (
	appID = "pl.wawolnica.interactive-map"
	// watchInterval is how often the input files are checked for edits.
	watchInterval = 2 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(runGUI).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// runGUI loads the dataset and runs the main window until it is closed or
// ctx is cancelled.
func runGUI(ctx context.Context, cfg *config.Config, lggr logger.Logger) error {
	state := app.NewState(cfg, lggr.Named("app"))
	if err := state.Load(); err != nil {
		return err
	}

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.MapTheme{})

	win := mainwindow.New(fyneApp, state, prefs.Load(), lggr.Named("ui"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	win.StartWatching(ctx, watchInterval)

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			lggr.Info("Interrupted, closing")
			win.SavePreferences()
			fyneApp.Quit()
		case <-finished:
		}
	}()

	win.ShowAndRun()
	return nil
}
