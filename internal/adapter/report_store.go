package adapter

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// ReportStore persists the conversion manifest between runs.
type ReportStore interface {
	SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error
	LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error)
}

// LocalReportStore keeps the manifest as a YAML document.
type LocalReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a ReportStore that reads and writes through fs.
func NewReportStore(fs SourceFSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveManifest writes manifest to path with entries sorted by origin.
func (rs *LocalReportStore) SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error {
	entries := append([]m.ManifestEntry(nil), manifest.Entries...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Origin < entries[j].Origin })
	manifest.Entries = entries

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := rs.fs.WriteFile(ctx, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// LoadManifest reads the manifest at path. A missing file yields an empty
// manifest.
func (rs *LocalReportStore) LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error) {
	exists, err := rs.fs.Exists(ctx, path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("failed to stat manifest %s: %w", path, err)
	}

	if !exists {
		return m.Manifest{}, nil
	}

	data, err := rs.fs.ReadFile(ctx, path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}

	return manifest, nil
}
