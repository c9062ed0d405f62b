package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zfake/internal/cli"
	"github.com/zarlcorp/zfake/internal/fake"
	"github.com/zarlcorp/zfake/internal/record"
	"github.com/zarlcorp/zfake/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zfake"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) == 1 && interactive() {
		if err := runTUI(); err != nil {
			slog.Error("tui", "err", err)
			_ = app.Close()
			os.Exit(1)
		}
		_ = app.Close()
		return
	}

	if err := cli.NewRootCmd(version, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI() error {
	gen := record.NewGenerator(fake.New(fake.DefaultDomain), slog.Default())
	_, err := tea.NewProgram(tui.New(version, gen)).Run()
	return err
}
