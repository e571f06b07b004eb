package blocksite

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 500 * time.Millisecond

// Watch runs Build once, then rebuilds the whole site whenever a file under
// the site descriptor's directory, PagesDir or ThemesDir changes. Rebuilds
// are debounced and never overlap. A failed rebuild is reported to out and
// watching continues. Watch returns when ctx is cancelled.
func Watch(ctx context.Context, cfg Config, out io.Writer) error {
	cfg.setDefaults()
	if _, err := Build(cfg, out); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("blocksite: create watcher: %w", err)
	}
	defer watcher.Close()

	// The site descriptor's directory usually holds the output directory
	// too, so only its top level is watched.
	if err := watcher.Add(filepath.Dir(cfg.SiteFile)); err != nil {
		fmt.Fprintf(out, "Not watching %s: %v\n", filepath.Dir(cfg.SiteFile), err)
	}
	for _, dir := range []string{cfg.PagesDir, cfg.ThemesDir} {
		if err := addRecursive(watcher, dir, cfg.OutputDir); err != nil {
			fmt.Fprintf(out, "Not watching %s: %v\n", dir, err)
		}
	}

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if within(cfg.OutputDir, event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) &&
				(within(cfg.PagesDir, event.Name) || within(cfg.ThemesDir, event.Name)) {
				if err := addRecursive(watcher, event.Name, cfg.OutputDir); err != nil {
					fmt.Fprintf(out, "Not watching %s: %v\n", event.Name, err)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			trigger = timer.C
		case <-trigger:
			trigger = nil
			fmt.Fprintln(out, "Change detected, rebuilding...")
			if _, err := Build(cfg, out); err != nil {
				fmt.Fprintf(out, "Rebuild failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "Watcher error: %v\n", err)
		}
	}
}

// addRecursive watches root and every directory below it except skip.
func addRecursive(w *fsnotify.Watcher, root, skip string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if within(skip, path) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
