// Package workspace keeps the compiled state of a tree of .arith files and
// serves it over the Language Server Protocol.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/arith/arith/compiler"
)

// Ext is the extension of arithmetic source files.
const Ext = ".arith"

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	workers int
	log     commonlog.Logger
}

type FileInfo struct {
	Path    string
	Content []byte
	Report  *compiler.Report
}

type Option func(*Workspace)

// WithWorkers bounds how many files ScanAll compiles at once.
func WithWorkers(n int) Option {
	return func(w *Workspace) {
		if n > 0 {
			w.workers = n
		}
	}
}

func New(rootDir string, opts ...Option) *Workspace {
	w := &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
		workers: 4,
		log:     commonlog.GetLogger("arith.workspace"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll compiles every .arith file below the root directory. Files that
// cannot be read are skipped and their errors combined in the result.
func (w *Workspace) ScanAll(ctx context.Context) error {
	paths, err := w.findSources()
	if err != nil {
		return err
	}

	sem := make(chan struct{}, w.workers)
	g := multierror.Group{}
	for _, path := range paths {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return fmt.Errorf("scan %s: %w", path, ctx.Err())
			}
			defer func() { <-sem }()
			return w.ScanFile(ctx, path)
		})
	}
	return g.Wait().ErrorOrNil()
}

func (w *Workspace) findSources() ([]string, error) {
	info, err := os.Stat(w.rootDir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", w.rootDir, err)
	}
	if !info.IsDir() {
		return []string{w.rootDir}, nil
	}

	var paths []string
	err = filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.log.Warningf("walk %s: %v", path, err)
			return nil
		}
		if !info.IsDir() && filepath.Ext(path) == Ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", w.rootDir, err)
	}
	return paths, nil
}

func (w *Workspace) ScanFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile recompiles path from content and stores the result.
func (w *Workspace) UpdateFile(path string, content []byte) *FileInfo {
	report := compiler.CompileFile(filepath.Base(path), string(content))
	file := &FileInfo{
		Path:    path,
		Content: content,
		Report:  report,
	}
	w.log.Debugf("compiled %s: ok=%v diagnostics=%d", path, report.OK(), len(report.Diagnostics))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = file
	return file
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns all known files ordered by path.
func (w *Workspace) Files() []*FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	files := make([]*FileInfo, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}
