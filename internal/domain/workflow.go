// Package domain drives mapping conversion across many files: discovery,
// caching, parallel conversion and reporting.
package domain

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/mapconv/internal/adapter"
	"github.com/mouse-blink/mapconv/internal/controller"
	"github.com/mouse-blink/mapconv/internal/domain/mappings"
	m "github.com/mouse-blink/mapconv/internal/model"
)

// ErrOutOfDate is returned by a check run when an output differs from what
// conversion would produce.
var ErrOutOfDate = errors.New("converted mappings are out of date")

// DefaultExtension is the output extension used when none is configured.
const DefaultExtension = ".tsrg"

const outputPerm = 0o644

// ConvertArgs describes one conversion run.
type ConvertArgs struct {
	Paths     []m.Path
	Include   []string
	Exclude   []string
	OutputDir m.Path // empty writes each output next to its input
	Extension string
	Threads   int
	Force     bool
	Check     bool
	Manifest  string // manifest file name in each output directory, empty disables caching
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	Watch(ctx context.Context, args ConvertArgs) error
	Describe(ctx context.Context, path m.Path) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	store   adapter.ReportStore
	hasher  adapter.Fingerprinter
	differ  adapter.TextDiffer
	watcher adapter.Watcher
	ui      controller.UI
	log     logrus.FieldLogger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	store adapter.ReportStore,
	hasher adapter.Fingerprinter,
	differ adapter.TextDiffer,
	watcher adapter.Watcher,
	ui controller.UI,
	log logrus.FieldLogger,
) Workflow {
	return &workflow{
		fs:      fs,
		store:   store,
		hasher:  hasher,
		differ:  differ,
		watcher: watcher,
		ui:      ui,
		log:     log,
	}
}

// Convert converts every mapping file found under args.Paths. Files whose
// conversion fails are reported and make Convert return an error once all
// other files are done; storage errors stop the run immediately.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	runID := uuid.NewString()
	log := w.log.WithField("run_id", runID)

	sources, err := w.getSources(ctx, args)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	mode := controller.WithConvertMode()
	if args.Check {
		mode = controller.WithCheckMode()
	}

	if err := w.ui.Start(mode); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports, err := w.run(ctx, log, runID, sources, args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplaySummary(reports); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	return outcome(reports)
}

// Watch converts once, then reconverts each discovered file whenever it
// changes, until ctx is cancelled.
func (w *workflow) Watch(ctx context.Context, args ConvertArgs) error {
	runID := uuid.NewString()
	log := w.log.WithField("run_id", runID)
	args.Check = false

	sources, err := w.getSources(ctx, args)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if len(sources) == 0 {
		return fmt.Errorf("no mapping files to watch")
	}

	if err := w.ui.Start(controller.WithWatchMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports, err := w.run(ctx, log, runID, sources, args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplaySummary(reports); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	byOrigin := make(map[m.Path]m.Source, len(sources))
	origins := make([]m.Path, 0, len(sources))

	for _, source := range sources {
		byOrigin[source.Origin] = source
		origins = append(origins, source.Origin)
	}

	// Changed files are always reconverted, the fingerprint is only
	// recorded.
	args.Force = true

	log.WithField("files", len(origins)).Info("watching for changes")

	return w.watcher.Watch(ctx, origins, func(origin m.Path) {
		source, ok := byOrigin[origin]
		if !ok {
			return
		}

		if _, err := w.run(ctx, log.WithField("trigger", "watch"), runID, []m.Source{source}, args); err != nil {
			log.WithError(err).WithField("input", origin).Error("reconversion failed")
		}
	})
}

// Describe converts one mapping file in memory and displays its statistics.
func (w *workflow) Describe(ctx context.Context, path m.Path) error {
	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	result, err := mappings.Convert(string(data))
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}

	return w.ui.DisplayStats(path, result.Stats)
}

func (w *workflow) getSources(ctx context.Context, args ConvertArgs) ([]m.Source, error) {
	filter, err := adapter.NewGlobFilter(args.Include, args.Exclude)
	if err != nil {
		return nil, err
	}

	paths, err := w.fs.Get(ctx, args.Paths, filter)
	if err != nil {
		return nil, err
	}

	ext := args.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	sources := make([]m.Source, 0, len(paths))
	owners := make(map[m.Path]m.Path, len(paths))

	for _, p := range paths {
		output := OutputPath(p, args.OutputDir, ext)

		if other, taken := owners[output]; taken {
			return nil, fmt.Errorf("%s and %s would both be written to %s", other, p, output)
		}

		owners[output] = p
		sources = append(sources, m.Source{Origin: p, Output: output})
	}

	return sources, nil
}

// run converts sources on a bounded worker pool and records the results in
// the manifests of their output directories.
func (w *workflow) run(ctx context.Context, log logrus.FieldLogger, runID string, sources []m.Source, args ConvertArgs) ([]m.Report, error) {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	manifests := newManifestSet(w.store, args.Manifest)
	if !args.Check {
		if err := manifests.load(ctx, sources); err != nil {
			return nil, err
		}
	}

	w.ui.DisplayPlan(sources, threads)
	log.WithFields(logrus.Fields{"files": len(sources), "threads": threads}).Debug("starting conversion")

	reports := make([]m.Report, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := w.process(gctx, log, source, args, manifests)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if args.Check {
		return reports, nil
	}

	for _, report := range reports {
		manifests.record(report)
	}

	if err := manifests.save(ctx, runID); err != nil {
		return nil, err
	}

	return reports, nil
}

// process converts one source. The returned error is reserved for storage
// failures; malformed mappings produce a Failed report instead.
func (w *workflow) process(ctx context.Context, log logrus.FieldLogger, source m.Source, args ConvertArgs, manifests *manifestSet) (m.Report, error) {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"input": source.Origin, "output": source.Output})

	w.ui.DisplayStarted(source)

	report, err := w.convertSource(ctx, log, source, args, manifests)
	if err != nil {
		return m.Report{}, err
	}

	report.Duration = time.Since(start)

	if report.Err != nil {
		log.WithError(report.Err).Warn("conversion failed")
	} else {
		log.WithField("status", report.Status).Debug("conversion finished")
	}

	w.ui.DisplayCompleted(report)

	return report, nil
}

func (w *workflow) convertSource(ctx context.Context, log logrus.FieldLogger, source m.Source, args ConvertArgs, manifests *manifestSet) (m.Report, error) {
	if source.Output == source.Origin {
		return m.Report{
			Source: source,
			Status: m.Failed,
			Err:    fmt.Errorf("output %s would overwrite its input", source.Output),
		}, nil
	}

	data, err := w.fs.ReadFile(ctx, source.Origin)
	if err != nil {
		return m.Report{}, fmt.Errorf("read %s: %w", source.Origin, err)
	}

	source.Hash, err = w.hasher.Fingerprint(data)
	if err != nil {
		return m.Report{}, fmt.Errorf("fingerprint %s: %w", source.Origin, err)
	}

	report := m.Report{Source: source}

	if !args.Check && !args.Force {
		if entry, ok := manifests.lookup(source); ok && entry.Hash == source.Hash {
			exists, err := w.fs.Exists(ctx, source.Output)
			if err != nil {
				return m.Report{}, fmt.Errorf("stat %s: %w", source.Output, err)
			}

			if exists {
				report.Status = m.Skipped
				report.Stats = m.Stats{Classes: entry.Classes, Fields: entry.Fields, Methods: entry.Methods}

				return report, nil
			}
		}
	}

	result, err := mappings.Convert(string(data))
	if err != nil {
		report.Status = m.Failed
		report.Err = err

		return report, nil
	}

	report.Stats = result.Stats

	for _, dup := range result.Stats.Duplicates {
		log.WithField("class", dup).Warn("duplicate class header, last one wins")
	}

	if args.Check {
		return w.check(ctx, report, result.Output)
	}

	if err := w.fs.WriteFile(ctx, source.Output, result.Output, outputPerm); err != nil {
		return m.Report{}, fmt.Errorf("write %s: %w", source.Output, err)
	}

	report.Status = m.Converted

	return report, nil
}

// check compares output with what is on disk without writing anything.
func (w *workflow) check(ctx context.Context, report m.Report, output []byte) (m.Report, error) {
	exists, err := w.fs.Exists(ctx, report.Source.Output)
	if err != nil {
		return m.Report{}, fmt.Errorf("stat %s: %w", report.Source.Output, err)
	}

	var existing []byte

	if exists {
		existing, err = w.fs.ReadFile(ctx, report.Source.Output)
		if err != nil {
			return m.Report{}, fmt.Errorf("read %s: %w", report.Source.Output, err)
		}
	}

	if exists && string(existing) == string(output) {
		report.Status = m.UpToDate
		return report, nil
	}

	report.Status = m.OutOfDate
	report.Diff = w.differ.Diff(string(existing), string(output))

	return report, nil
}

// outcome turns per-file failures into the run's error.
func outcome(reports []m.Report) error {
	var failures []error

	outOfDate := 0

	for _, report := range reports {
		switch {
		case report.Err != nil:
			failures = append(failures, fmt.Errorf("%s: %w", report.Source.Origin, report.Err))
		case report.Status == m.OutOfDate:
			outOfDate++
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d mapping file(s) failed: %w", len(failures), len(reports), errors.Join(failures...))
	}

	if outOfDate > 0 {
		return fmt.Errorf("%d mapping file(s): %w", outOfDate, ErrOutOfDate)
	}

	return nil
}

// OutputPath derives where the converted form of origin is written: the
// input's name with ext in place of its extension, next to the input or
// inside outputDir when set. Paths may be local or afs URLs.
func OutputPath(origin, outputDir m.Path, ext string) m.Path {
	dir, file := splitPath(string(origin))
	name := strings.TrimSuffix(file, path.Ext(file)) + ext

	if outputDir != "" {
		dir = string(outputDir)
	}

	return m.Path(joinPath(dir, name))
}

func splitPath(p string) (dir, file string) {
	i := strings.LastIndex(p, "/")
	switch {
	case i < 0:
		return "", p
	case i == 0:
		return "/", p[1:]
	}

	return p[:i], p[i+1:]
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}

	return strings.TrimSuffix(dir, "/") + "/" + name
}
