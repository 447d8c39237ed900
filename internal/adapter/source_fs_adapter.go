// Package adapter contains storage and infrastructure adapters for the mapconv CLI.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	m "github.com/mouse-blink/mapconv/internal/model"
)

const fileScheme = "file"

// SourceFSAdapter abstracts storage access for mapping files. Paths may be
// local paths or any URL the afs service understands, so the workflow can
// be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from storage.
type SourceFSAdapter interface {
	// Get expands roots into the mapping files accepted by filter. A root
	// ending in /... is searched recursively; a file root is taken as is.
	Get(ctx context.Context, roots []m.Path, filter PathFilter) ([]m.Path, error)

	// Walk visits every file under root, optionally descending into
	// subdirectories.
	Walk(ctx context.Context, root m.Path, recursive bool, fn WalkFunc) error

	// ReadFile loads the contents at path.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile stores content at path, creating parent directories.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// IsDir reports whether path is a directory.
	IsDir(ctx context.Context, path m.Path) (bool, error)
}

// WalkFunc is called for every file found by Walk.
type WalkFunc func(path m.Path) error

// LocalSourceFSAdapter implements SourceFSAdapter on top of afs.
type LocalSourceFSAdapter struct {
	fs afs.Service
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter backed by afs.New().
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: afs.New()}
}

// Get collects mapping files for the provided roots, without duplicates,
// in a stable order per root.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, roots []m.Path, filter PathFilter) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	seen := make(map[m.Path]struct{})

	var paths []m.Path

	add := func(path m.Path) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		isDir, err := a.IsDir(ctx, m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !isDir {
			add(m.Path(rootPath))
			continue
		}

		var found []m.Path

		err = a.Walk(ctx, m.Path(rootPath), recursive, func(path m.Path) error {
			if filter == nil || filter.Match(path) {
				found = append(found, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

		for _, path := range found {
			add(path)
		}
	}

	return paths, nil
}

// Walk iterates over files under root. Non-recursive walks only list the
// root directory itself.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn WalkFunc) error {
	if !recursive {
		objects, err := a.fs.List(ctx, string(root))
		if err != nil {
			return err
		}

		for _, object := range objects {
			if object.IsDir() {
				continue
			}

			if err := fn(localPath(object.URL())); err != nil {
				return err
			}
		}

		return nil
	}

	var visitor storage.OnVisit = func(_ context.Context, baseURL, parent string, info os.FileInfo, _ io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}

		location := url.Join(baseURL, info.Name())
		if parent != "" {
			location = url.Join(baseURL, parent, info.Name())
		}

		if err := fn(localPath(location)); err != nil {
			return false, err
		}

		return true, nil
	}

	return a.fs.Walk(ctx, string(root), visitor)
}

// ReadFile downloads the contents at path.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	return a.fs.DownloadWithURL(ctx, string(path))
}

// WriteFile uploads content to path.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	return a.fs.Upload(ctx, string(path), perm, bytes.NewReader(content))
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	return a.fs.Exists(ctx, string(path))
}

// IsDir reports whether path is a directory.
func (a *LocalSourceFSAdapter) IsDir(ctx context.Context, path m.Path) (bool, error) {
	object, err := a.fs.Object(ctx, string(path))
	if err != nil {
		return false, err
	}

	return object.IsDir(), nil
}

// localPath strips the file scheme so local files are reported as plain paths.
func localPath(URL string) m.Path {
	if url.Scheme(URL, fileScheme) == fileScheme {
		return m.Path(url.Path(URL))
	}

	return m.Path(URL)
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.Contains(rootStr, "://") {
		return rootStr, recursive, nil
	}

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
