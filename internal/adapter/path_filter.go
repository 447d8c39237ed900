package adapter

import (
	"fmt"
	"path"

	"github.com/gobwas/glob"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// PathFilter decides which discovered files are mapping inputs.
type PathFilter interface {
	Match(path m.Path) bool
}

// GlobFilter accepts files whose base name matches any include pattern and
// rejects files whose base name or full path matches any exclude pattern.
type GlobFilter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewGlobFilter compiles include and exclude patterns. An empty include
// list accepts every file.
func NewGlobFilter(include, exclude []string) (*GlobFilter, error) {
	includeGlobs, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	excludeGlobs, err := compileGlobs(exclude)
	if err != nil {
		return nil, err
	}

	return &GlobFilter{include: includeGlobs, exclude: excludeGlobs}, nil
}

// Match implements PathFilter.
func (f *GlobFilter) Match(p m.Path) bool {
	full := string(p)
	base := path.Base(full)

	for _, g := range f.exclude {
		if g.Match(base) || g.Match(full) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, g := range f.include {
		if g.Match(base) {
			return true
		}
	}

	return false
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}
