package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Alia5/idlgen/internal/codegen/template"
	"github.com/Alia5/idlgen/internal/idl/load"
	"github.com/Alia5/idlgen/internal/log"
)

// Watch renders a definition document and renders it again whenever the
// document or the template directory changes. Passes never overlap.
type Watch struct {
	RenderFlags `embed:""`

	Debounce time.Duration `help:"Quiet period after a change before re-rendering" default:"200ms" env:"IDLGEN_WATCH_DEBOUNCE"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, artifacts log.ArtifactLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.watch(ctx, logger, artifacts, nil)
}

// watch blocks until ctx is done. passes, when non-nil, receives the result
// of every render pass.
func (w *Watch) watch(ctx context.Context, logger *slog.Logger, artifacts log.ArtifactLogger, passes chan<- error) error {
	if w.Input == load.Stdin {
		return errors.New("watch needs a definition document file, not stdin")
	}
	if !w.Replace {
		logger.Warn("Watching without --replace: existing files will be skipped on every pass")
	}

	input, err := filepath.Abs(w.Input)
	if err != nil {
		return err
	}
	var templatesDir string
	if w.Templates != "" {
		if templatesDir, err = filepath.Abs(w.Templates); err != nil {
			return err
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace files, so watch the directories, not the files.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return err
	}
	if templatesDir != "" && templatesDir != filepath.Dir(input) {
		if err := watcher.Add(templatesDir); err != nil {
			return err
		}
	}

	relevant := func(ev fsnotify.Event) bool {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
			return false
		}
		name, err := filepath.Abs(ev.Name)
		if err != nil {
			return false
		}
		if name == input {
			return true
		}
		return templatesDir != "" && filepath.Dir(name) == templatesDir && filepath.Ext(name) == template.Ext
	}

	pass := func() {
		// The generator is rebuilt every pass so template edits are picked up.
		gen, err := w.newGenerator(logger, artifacts)
		if err == nil {
			err = w.render(gen)
		}
		if err != nil {
			logger.Error("Render pass failed", "error", err)
		}
		if passes != nil {
			select {
			case passes <- err:
			case <-ctx.Done():
			}
		}
	}

	pass()
	logger.Info("Watching for changes", "input", input, "templates", templatesDir)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			logger.Debug("Change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error", "error", err)
		case <-fire:
			fire = nil
			logger.Info("Regenerating")
			pass()
		}
	}
}
