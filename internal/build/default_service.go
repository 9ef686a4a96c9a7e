package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/antora"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/classify"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/editlink"
	dberrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/foundation/errors"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/metrics"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/partials"
)

// RepoDetector reads remote and branch metadata for edit links.
type RepoDetector func(root, remote string) (editlink.RepoInfo, error)

// DefaultBuildService is the standard implementation of BuildService.
type DefaultBuildService struct {
	recorder metrics.Recorder
	detect   RepoDetector
	newRunID func() string
}

// NewBuildService creates a service with no metrics and go-git repository detection.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		recorder: metrics.NoopRecorder{},
		detect:   editlink.Detect,
		newRunID: uuid.NewString,
	}
}

// WithRecorder sets the metrics recorder.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithRepoDetector replaces repository detection (for testing).
func (s *DefaultBuildService) WithRepoDetector(d RepoDetector) *DefaultBuildService {
	s.detect = d
	return s
}

// paths holds the absolute locations a run reads and writes.
type paths struct {
	root     string
	features string
	docs     string
}

func resolvePaths(req BuildRequest) (paths, error) {
	if req.Config == nil {
		return paths{}, dberrors.ConfigError("config required").Build()
	}
	if req.Root == "" {
		return paths{}, dberrors.UsageError("project root required").Build()
	}
	root, err := filepath.Abs(req.Root)
	if err != nil {
		return paths{}, dberrors.WrapError(err, dberrors.CategoryUsage, "resolve project root").Fatal().Build()
	}
	return paths{
		root:     root,
		features: filepath.Join(root, req.Config.Features.Dir),
		docs:     filepath.Join(root, req.Config.Output.DocsDir),
	}, nil
}

// Discover scans the features directory and classifies every document.
func (s *DefaultBuildService) Discover(ctx context.Context, req BuildRequest) (*classify.Result, error) {
	p, err := resolvePaths(req)
	if err != nil {
		return nil, err
	}
	res, _, err := s.discover(ctx, slog.Default(), req.Config, p)
	return res, err
}

// Run executes the complete generation pipeline.
func (s *DefaultBuildService) Run(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	startTime := time.Now()
	result := &BuildResult{
		RunID:        s.newRunID(),
		StartTime:    startTime,
		Groups:       make(map[string]int),
		FilesWritten: make(map[string]int),
	}
	log := slog.Default().With(logfields.RunID(result.RunID))

	p, err := resolvePaths(req)
	if err != nil {
		return s.finish(result, err), err
	}
	cfg := req.Config
	log.Info("Starting feature generation",
		logfields.Path(p.root),
		logfields.Layout(string(cfg.Navigation.Layout)),
		slog.Bool("dry_run", req.DryRun))

	res, failedStage, err := s.discover(ctx, log, cfg, p)
	if err != nil {
		s.recorder.IncStageResult(failedStage, resultLabel(err))
		return s.finish(result, err), err
	}
	result.Documents = len(res.Documents)
	s.recorder.SetDocuments(result.Documents)

	var writer antora.FileWriter = antora.OSWriter{}
	if req.DryRun {
		writer = antora.DryRunWriter{}
	}

	// Stage: render both axes.
	if err := ctx.Err(); err != nil {
		s.recorder.IncStageResult(StageRender, metrics.ResultCanceled)
		return s.finish(result, err), err
	}
	stageStart := time.Now()
	renderer := antora.NewRenderer(cfg.Navigation.Layout, cfg.Output.FeaturesModule, writer)
	axes := []struct {
		module   string
		grouping *classify.Grouping
	}{
		{cfg.Output.CategoriesModule, res.Categories},
		{cfg.Output.VersionsModule, res.Versions},
	}
	var stubs []antora.Stub
	for _, a := range axes {
		mod := antora.NewModule(p.docs, a.module)
		report, err := renderer.RenderAxis(mod, a.grouping, res.Opposite(a.grouping.Axis))
		if err != nil {
			s.recorder.IncStageResult(StageRender, metrics.ResultFatal)
			err = classifyError(StageRender, err)
			return s.finish(result, err), err
		}
		result.Groups[report.Axis] = report.Groups
		result.IndexCreated += report.IndexCreated
		result.IndexPreserved += report.IndexPreserved
		result.FilesWritten[metrics.KindNavigation]++
		result.FilesWritten[metrics.KindIndex] += report.IndexCreated
		result.FilesWritten[metrics.KindStub] += len(report.Stubs)
		stubs = append(stubs, report.Stubs...)

		s.recorder.SetGroups(report.Axis, report.Groups)
		s.recorder.AddIndexPages(report.Axis, report.IndexCreated, report.IndexPreserved)
	}
	s.stageDone(log, StageRender, stageStart)

	// Stage: publish partials.
	if err := ctx.Err(); err != nil {
		s.recorder.IncStageResult(StagePublish, metrics.ResultCanceled)
		return s.finish(result, err), err
	}
	stageStart = time.Now()
	publisher := partials.NewPublisher(
		filepath.Join(p.docs, cfg.Output.FeaturesModule, "partials"),
		partials.Options{
			Placeholder:      cfg.Features.Placeholder,
			VersionsModule:   cfg.Output.VersionsModule,
			CategoriesModule: cfg.Output.CategoriesModule,
			CategoryKey:      res.AxisFor(classify.AxisCategories).Key,
			DryRun:           req.DryRun,
		})
	published, err := publisher.Publish(res.Documents)
	if err != nil {
		s.recorder.IncStageResult(StagePublish, metrics.ResultFatal)
		err = classifyError(StagePublish, err)
		return s.finish(result, err), err
	}
	result.FilesWritten[metrics.KindPartial] = published
	s.stageDone(log, StagePublish, stageStart)

	// Stage: edit-url manifest.
	if cfg.EditLinks.Enabled {
		stageStart = time.Now()
		n, err := s.writeEditLinks(cfg, p, stubs, writer)
		if err != nil {
			s.recorder.IncStageResult(StageEditLinks, metrics.ResultFatal)
			err = classifyError(StageEditLinks, err)
			return s.finish(result, err), err
		}
		result.EditURLs = n
		result.FilesWritten[metrics.KindManifest] = 1
		s.stageDone(log, StageEditLinks, stageStart)
	} else {
		s.recorder.IncStageResult(StageEditLinks, metrics.ResultSkipped)
	}

	for kind, n := range result.FilesWritten {
		s.recorder.AddFilesWritten(kind, n)
	}
	s.finish(result, nil)
	log.Info("Feature generation complete",
		logfields.Count(result.Documents),
		slog.Int("categories", result.Groups[classify.AxisCategories]),
		slog.Int("versions", result.Groups[classify.AxisVersions]),
		slog.Int("index_created", result.IndexCreated),
		slog.Int("index_preserved", result.IndexPreserved),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}

// discover runs the scan, load and classify stages. On failure it also
// returns the name of the stage that failed.
func (s *DefaultBuildService) discover(ctx context.Context, log *slog.Logger, cfg *config.Config, p paths) (*classify.Result, string, error) {
	fc := cfg.Features
	categoryTitles := filepath.Join(p.features, fc.CategoryTitles)
	versionTitles := filepath.Join(p.features, fc.VersionTitles)

	// Stage: scan.
	if err := ctx.Err(); err != nil {
		return nil, StageScan, err
	}
	stageStart := time.Now()
	scan, err := docs.NewScanner(fc.Suffix, categoryTitles, versionTitles).Scan(p.features)
	if err == nil {
		err = scan.Err()
	}
	if err != nil {
		return nil, StageScan, classifyError(StageScan, err)
	}
	s.stageDone(log, StageScan, stageStart)

	// Stage: load attributes.
	if err := ctx.Err(); err != nil {
		return nil, StageLoad, err
	}
	stageStart = time.Now()
	documents, err := docs.LoadDocuments(scan.Files, p.features, docs.Attributes{
		Version:  fc.VersionAttribute,
		Category: fc.CategoryAttribute,
	})
	if err != nil {
		return nil, StageLoad, classifyError(StageLoad, err)
	}
	s.stageDone(log, StageLoad, stageStart)

	// Stage: classify.
	if err := ctx.Err(); err != nil {
		return nil, StageClassify, err
	}
	stageStart = time.Now()
	fold := cfg.Navigation.Fold()
	var categoryKey func(string) string
	if fold {
		categoryKey = classify.FoldLabel
	}
	catTitles, err := classify.LoadTitles(categoryTitles, fc.Suffix, categoryKey)
	if err != nil {
		return nil, StageClassify, classifyError(StageClassify, err)
	}
	verTitles, err := classify.LoadTitles(versionTitles, fc.Suffix, nil)
	if err != nil {
		return nil, StageClassify, classifyError(StageClassify, err)
	}
	res := classify.Classify(documents,
		classify.CategoryAxis(fold, catTitles),
		classify.VersionAxis(verTitles))
	s.stageDone(log, StageClassify, stageStart)
	return res, "", nil
}

func (s *DefaultBuildService) writeEditLinks(cfg *config.Config, p paths, stubs []antora.Stub, w antora.FileWriter) (int, error) {
	el := cfg.EditLinks
	builder := editlink.Builder{
		BaseURL:     el.BaseURL,
		Branch:      el.Branch,
		FeaturesDir: filepath.ToSlash(filepath.Clean(cfg.Features.Dir)),
	}
	if builder.BaseURL == "" || builder.Branch == "" {
		info, err := s.detect(p.root, el.Remote)
		if err != nil {
			return 0, err
		}
		if builder.BaseURL == "" {
			if builder.BaseURL, err = editlink.WebURL(info.RemoteURL); err != nil {
				return 0, err
			}
		}
		if builder.Branch == "" {
			if info.Branch == "" {
				return 0, fmt.Errorf("%w: %s", editlink.ErrDetachedHead, p.root)
			}
			builder.Branch = info.Branch
		}
	}

	manifest := editlink.NewManifest(builder, stubs)
	if err := manifest.Write(w, filepath.Join(p.root, el.Manifest)); err != nil {
		return 0, err
	}
	return len(manifest.Pages), nil
}

func (s *DefaultBuildService) stageDone(log *slog.Logger, stage string, start time.Time) {
	d := time.Since(start)
	s.recorder.ObserveStageDuration(stage, d)
	s.recorder.IncStageResult(stage, metrics.ResultSuccess)
	log.Debug("Stage complete", logfields.Stage(stage), logfields.DurationMS(float64(d.Microseconds())/1000))
}

// finish stamps timing and status on result and records the run outcome.
func (s *DefaultBuildService) finish(result *BuildResult, err error) *BuildResult {
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	switch {
	case err == nil:
		result.Status = BuildStatusSuccess
		s.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	case isCanceled(err):
		result.Status = BuildStatusCancelled
		s.recorder.IncRunOutcome(metrics.OutcomeCanceled)
	default:
		result.Status = BuildStatusFailed
		s.recorder.IncRunOutcome(metrics.OutcomeFailed)
	}
	s.recorder.ObserveRunDuration(result.Duration)
	return result
}

func resultLabel(err error) metrics.ResultLabel {
	if isCanceled(err) {
		return metrics.ResultCanceled
	}
	return metrics.ResultFatal
}
