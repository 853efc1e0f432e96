// Package filesystem collects documents from a local directory tree.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driven"
	"github.com/ambareesh69/documentexplore/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// mimeByExtension maps supported file extensions to MIME types.
// Files with other extensions are skipped during a scan.
var mimeByExtension = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// debounceInterval coalesces rapid editor save bursts into one change event.
const debounceInterval = 500 * time.Millisecond

// Connector scans a root directory for supported documents.
type Connector struct {
	root    string
	watcher *fsnotify.Watcher
}

// New creates a filesystem connector rooted at the given directory.
func New(root string) (*Connector, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, root)
	}

	return &Connector{root: root}, nil
}

// Type returns the connector type.
func (c *Connector) Type() string {
	return "filesystem"
}

// Scan walks the root directory and returns every supported document,
// sorted by path so repeated scans of an unchanged tree yield identical
// results.
func (c *Connector) Scan(ctx context.Context) ([]domain.RawDocument, error) {
	var docs []domain.RawDocument

	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			// Skip hidden directories (.git, .cache, etc.)
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		mimeType, ok := mimeByExtension[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		docs = append(docs, domain.RawDocument{
			SourceID: c.root,
			URI:      path,
			MIMEType: mimeType,
			Content:  content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", c.root, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].URI < docs[j].URI })
	logger.Debug("filesystem scan found %d documents under %s", len(docs), c.root)
	return docs, nil
}

// Watch blocks, invoking onChange whenever a supported file under the
// root is created, written, renamed, or removed. Events arriving within
// the debounce window collapse into a single callback.
func (c *Connector) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	c.watcher = watcher
	defer func() {
		watcher.Close()
		c.watcher = nil
	}()

	// Watch the root and every subdirectory. fsnotify does not recurse.
	err = filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", c.root, err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !c.relevant(event) {
				continue
			}
			logger.Debug("filesystem change: %s %s", event.Op, event.Name)

			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			if timer == nil {
				timer = time.AfterFunc(debounceInterval, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounceInterval)
			}

		case <-fire:
			timer = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("filesystem watch error: %v", err)
		}
	}
}

// relevant reports whether an event should trigger re-analysis.
// Directory events always count; file events only for supported types.
func (c *Connector) relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return true
	}
	_, ok := mimeByExtension[strings.ToLower(filepath.Ext(event.Name))]
	return ok
}

// Close releases the watcher if one is active.
func (c *Connector) Close() error {
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}
