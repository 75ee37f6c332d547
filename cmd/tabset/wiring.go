package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/term"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/config"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/dom"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/logging"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/notify"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabfile"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tui"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/watch"
)

// checkTerminal reports tabs.ErrUnsupported when f is not an interactive
// terminal; the widget cannot render or receive input there.
func checkTerminal(f *os.File) error {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("tabset: output is not a terminal, use 'tabset inspect' instead: %w", tabs.ErrUnsupported)
	}
	return nil
}

// runTUI mounts doc, runs the bubbletea program and unmounts on exit.
func runTUI(ctx context.Context, cfg *config.Config, path string, doc *dom.Document) error {
	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	changes, stopWatch, err := startWatcher(cfg.Watch, path, logger)
	if err != nil {
		return err
	}
	defer stopWatch()

	notifier := notify.New(cfg.Notifications.URL, doc.Name, cfg.Notifications.OnActivate)

	model, err := tui.New(tui.Options{
		Doc:           doc,
		Path:          path,
		Load:          tabfile.Load,
		Changes:       changes,
		AccentColor:   cfg.TUI.AccentColor,
		MarkdownStyle: cfg.TUI.MarkdownStyle,
		Framed:        cfg.TUI.Framed,
		Logger:        logger,
		OnActivate:    []func(tabs.Activation){notifier.Hook},
	})
	if err != nil {
		return err
	}
	defer model.Close()

	zone.NewGlobal()
	program := tea.NewProgram(model, programOptions(ctx, cfg.TUI)...)
	return finishTUI(program)
}

// programOptions translates TUI config into bubbletea options.
func programOptions(ctx context.Context, cfg config.TUIConfig) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// finishTUI runs the bubbletea program. Cancellation errors are suppressed
// since they indicate normal shutdown (signal).
func finishTUI(program *tea.Program) error {
	final, err := program.Run()
	closeFinal(final)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// closeFinal unmounts the widget that is current after any remounts. The
// deferred Close in runTUI only knows the first one.
func closeFinal(final tea.Model) {
	if m, ok := final.(tui.Model); ok {
		m.Close()
	}
}

// startWatcher watches the document and its panel files when enabled. The
// returned stop func is always safe to call.
func startWatcher(cfg config.WatchConfig, path string, logger *slog.Logger) (<-chan struct{}, func(), error) {
	noop := func() {}
	if !cfg.Enabled {
		return nil, noop, nil
	}

	sources, err := tabfile.Sources(path)
	if err != nil {
		return nil, noop, err
	}
	wcfg := watch.DefaultConfig(sources...)
	if cfg.DebounceMS > 0 {
		wcfg.DebounceDur = time.Duration(cfg.DebounceMS) * time.Millisecond
	}
	w, err := watch.New(wcfg)
	if err != nil {
		return nil, noop, err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, noop, err
	}
	logger.Info("watching document", "path", path, "files", len(sources))

	return changes, func() { _ = w.Stop() }, nil
}
