package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/mouse-blink/mapconv/internal/adapter"
	m "github.com/mouse-blink/mapconv/internal/model"
)

// manifestSet holds the manifest of every output directory touched by a
// run. Manifests are loaded before workers start and only read while they
// run.
type manifestSet struct {
	store     adapter.ReportStore
	name      string
	manifests map[m.Path]*m.Manifest
	dirty     map[m.Path]bool
}

func newManifestSet(store adapter.ReportStore, name string) *manifestSet {
	return &manifestSet{
		store:     store,
		name:      name,
		manifests: make(map[m.Path]*m.Manifest),
		dirty:     make(map[m.Path]bool),
	}
}

func (ms *manifestSet) enabled() bool {
	return ms.name != "" && ms.store != nil
}

// pathFor returns the manifest that tracks source's output directory.
func (ms *manifestSet) pathFor(source m.Source) m.Path {
	dir, _ := splitPath(string(source.Output))
	return m.Path(joinPath(dir, ms.name))
}

func (ms *manifestSet) load(ctx context.Context, sources []m.Source) error {
	if !ms.enabled() {
		return nil
	}

	for _, source := range sources {
		p := ms.pathFor(source)
		if _, ok := ms.manifests[p]; ok {
			continue
		}

		manifest, err := ms.store.LoadManifest(ctx, p)
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}

		ms.manifests[p] = &manifest
	}

	return nil
}

// lookup returns the cached entry for source if it was produced for the
// same output.
func (ms *manifestSet) lookup(source m.Source) (m.ManifestEntry, bool) {
	manifest, ok := ms.manifests[ms.pathFor(source)]
	if !ok {
		return m.ManifestEntry{}, false
	}

	entry, ok := manifest.Lookup(source.Origin)
	if !ok || entry.Output != source.Output {
		return m.ManifestEntry{}, false
	}

	return entry, true
}

func (ms *manifestSet) record(report m.Report) {
	if !ms.enabled() || report.Status != m.Converted {
		return
	}

	p := ms.pathFor(report.Source)

	manifest, ok := ms.manifests[p]
	if !ok {
		manifest = &m.Manifest{}
		ms.manifests[p] = manifest
	}

	manifest.Upsert(m.ManifestEntry{
		Origin:  report.Source.Origin,
		Output:  report.Source.Output,
		Hash:    report.Source.Hash,
		Classes: report.Stats.Classes,
		Fields:  report.Stats.Fields,
		Methods: report.Stats.Methods,
	})
	ms.dirty[p] = true
}

func (ms *manifestSet) save(ctx context.Context, runID string) error {
	for p := range ms.dirty {
		manifest := ms.manifests[p]
		manifest.RunID = runID
		manifest.UpdatedAt = time.Now().UTC()

		if err := ms.store.SaveManifest(ctx, p, *manifest); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}

		delete(ms.dirty, p)
	}

	return nil
}
