// Package scaffold runs the project creation pipeline: validation, directory
// preparation, template materialization and config rewriting.
package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/project"
	"github.com/tauristart/cli/internal/rewrite"
	"github.com/tauristart/cli/internal/templates"
	"github.com/tauristart/cli/internal/workspace"
)

// Options configures one pipeline run.
type Options struct {
	// Config is the requested project. Derived fields are filled in by Run.
	Config project.Config

	// Templates is the templates root. Nil means the embedded templates.
	Templates fs.FS

	// WorkDir is the directory next-step commands are relative to.
	// Empty means the process working directory.
	WorkDir string
}

// Result is the outcome of a successful run.
type Result struct {
	// Config is the final configuration. TargetDirectory is absolute.
	Config project.Config

	// Framework is the framework that was materialized.
	Framework templates.Framework

	// Files lists every file written, relative to the project directory,
	// slash separated and sorted.
	Files []string

	// Report describes the config rewrites.
	Report *rewrite.Report

	// NextSteps are the commands to run after creation.
	NextSteps []string
}

// run carries the state of one pipeline execution.
type run struct {
	opts   Options
	stage  Stage
	logger *log.Logger

	cfg       project.Config
	framework templates.Framework
	src       fs.FS
	copied    *templates.Result
	report    *rewrite.Report
	extra     []string
}

// Run executes the pipeline. Stages run in order:
//
//	Start -> Validated -> DirectoryReady -> TemplatesCopied -> ConfigsRewritten -> Done
//
// The first failure stops the run and is returned as a *StageError. Stages
// already completed are not rolled back. ctx is checked between stages.
func Run(ctx context.Context, opts Options) (*Result, error) {
	r := &run{opts: opts, stage: StageStart, src: opts.Templates}
	if r.src == nil {
		r.src = templates.Embedded()
	}

	steps := []struct {
		next Stage
		fn   func() error
	}{
		{StageValidated, r.validate},
		{StageDirectoryReady, r.prepareDirectory},
		{StageTemplatesCopied, r.copyTemplates},
		{StageConfigsRewritten, r.rewriteConfigs},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, r.fail(step.next, err)
		}
		if err := step.fn(); err != nil {
			return nil, r.fail(step.next, err)
		}
		r.advance(step.next)
	}

	result, err := r.finish()
	if err != nil {
		return nil, r.fail(StageDone, err)
	}
	r.advance(StageDone)
	return result, nil
}

func (r *run) advance(next Stage) {
	r.stage = next
	r.log().Debug("stage complete", "stage", next)
}

func (r *run) fail(next Stage, err error) error {
	r.log().Debug("stage failed", "stage", next, "reached", r.stage, "err", err)
	r.stage = StageFailed
	return &StageError{Stage: next, Err: err}
}

func (r *run) log() *log.Logger {
	if r.logger == nil {
		name := r.cfg.ProjectName
		if name == "" {
			name = r.opts.Config.ProjectName
		}
		r.logger = output.ProjectLogger(name)
	}
	return r.logger
}

// validate fills derived fields and checks everything that must hold before
// the filesystem is touched.
func (r *run) validate() error {
	cfg := r.opts.Config.WithDefaults()
	if cfg.Framework == "" {
		cfg.Framework = templates.DefaultFrameworkName
	}

	fw, err := templates.Get(cfg.Framework)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.cfg = cfg
	r.framework = fw
	r.log().Debug("configuration validated",
		"package", cfg.PackageName,
		"framework", fw.Name,
		"platforms", project.Runners(cfg.ReleaseOS),
		"dir", cfg.TargetDirectory,
	)
	return nil
}

func (r *run) prepareDirectory() error {
	abs, err := workspace.Prepare(r.cfg.TargetDirectory, r.cfg.Overwrite)
	if err != nil {
		return err
	}
	r.cfg.TargetDirectory = abs
	return nil
}

func (r *run) copyTemplates() error {
	result, err := templates.Materialize(r.src, r.framework, r.cfg.TargetDirectory)
	if err != nil {
		return err
	}
	r.copied = result
	r.log().Debug("templates materialized", "files", len(result.Files), "deferred", len(result.Deferred))
	return nil
}

func (r *run) rewriteConfigs() error {
	rw := &rewrite.Rewriter{
		Target:    r.cfg.TargetDirectory,
		Templates: r.src,
		Deferred:  r.copied.Deferred,
	}
	report, err := rw.Apply(r.cfg.PackageName, r.cfg.ReleaseOS)
	if err != nil {
		return err
	}
	extra, err := rw.CopyUntouched(report)
	if err != nil {
		return err
	}
	r.report = report
	r.extra = extra
	return nil
}

func (r *run) finish() (*Result, error) {
	workDir := r.opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	files := slices.Concat(r.copied.Files, r.report.Written(), r.extra)
	slices.Sort(files)

	return &Result{
		Config:    r.cfg,
		Framework: r.framework,
		Files:     slices.Compact(files),
		Report:    r.report,
		NextSteps: project.NextSteps(r.cfg, workDir),
	}, nil
}
