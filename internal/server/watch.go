package server

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of file events into one rebuild.
const DefaultDebounce = 200 * time.Millisecond

// watchSet decides which file events trigger a rebuild.
type watchSet struct {
	dirs   []string
	files  map[string]bool
	ignore []string // build output, which would otherwise retrigger itself
}

func (ws *watchSet) relevant(name string) bool {
	name = filepath.Clean(name)
	if ws.files[name] {
		return true
	}
	for _, d := range ws.ignore {
		if within(name, d) {
			return false
		}
	}
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	for _, d := range ws.dirs {
		if within(name, d) {
			return true
		}
	}
	return false
}

func within(name, dir string) bool {
	return name == dir || strings.HasPrefix(name, dir+string(filepath.Separator))
}

// Watch rebuilds the site whenever something under paths changes, until
// ctx is cancelled. Directories are watched recursively. Files are watched
// through their parent directory so editors that replace files on save
// are still seen.
func (s *Server) Watch(ctx context.Context, paths []string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	set := &watchSet{files: make(map[string]bool)}
	if s.cfg.SiteDir != "" {
		if abs, err := filepath.Abs(s.cfg.SiteDir); err == nil {
			set.ignore = append(set.ignore, abs)
		}
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		switch {
		case err == nil && info.IsDir():
			set.dirs = append(set.dirs, abs)
			if err := addTree(w, abs); err != nil {
				return err
			}
		case err == nil || os.IsNotExist(err):
			// Watch the parent so the file may appear later.
			set.files[abs] = true
			if err := w.Add(filepath.Dir(abs)); err != nil {
				return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
			}
		default:
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !set.relevant(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						log.Printf("watch: %v", err)
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)

		case <-pending:
			pending = nil
			s.reload()
		}
	}
}

// addTree adds root and every directory below it to the watcher.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
