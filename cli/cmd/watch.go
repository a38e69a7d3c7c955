package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/log"
	"github.com/ardnew/oden/pkg"
)

// Watch rebuilds the target whenever the source file changes.
type Watch struct {
	Build `embed:""`
}

// Run builds once and then after every write to the source until
// interrupted. Diagnostics are printed but do not end the watch.
func (w *Watch) Run(ctx context.Context) (err error) {
	if w.Source == "" || w.Source == stdinSource {
		return ErrWatchStdin
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := pkg.Resolve(w.Source, searchPathFrom(ctx)...)
	if err != nil {
		path = w.Source
	}

	if path, err = filepath.Abs(path); err != nil {
		return ErrWatch.With(slog.String("source", w.Source)).Wrap(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so the
	// directory is watched rather than the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return ErrWatch.With(slog.String("source", path)).Wrap(err)
	}

	log.InfoContext(ctx, "watching", slog.String("source", path))

	var last string

	rebuild := func() {
		src, err := lang.ReadSource(path)
		if err != nil {
			w.report(ctx, err)

			return
		}

		hash := src.Hash()
		if hash == last {
			log.TraceContext(ctx, "source unchanged", slog.String("hash", hash))

			return
		}

		last = hash

		if err := w.export(ctx, src); err != nil {
			w.report(ctx, err)
		}
	}

	rebuild()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != path ||
				ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			log.DebugContext(ctx, "source changed",
				slog.String("source", ev.Name),
				slog.String("op", ev.Op.String()),
			)

			rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watch error", slog.String("error", err.Error()))
		}
	}
}
