package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/scaffold"
)

// ExitWithError logs msg with err and returns err as an *ExitError marked
// printed, carrying the exit code for err. DetailErrors are printed as their
// multi-line detail block.
func ExitWithError(msg string, err error) error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return err
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		output.Details(detail.Error())
	} else {
		output.Error(msg, "error", err)
	}

	var stageErr *scaffold.StageError
	if errors.As(err, &stageErr) {
		output.Debug("pipeline stopped", "stage", stageErr.Stage)
	}

	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

// PrintCreateResult writes the created tree, any skipped config files and
// the next steps to w. With verbose, the diff of every rewritten config file
// is included.
func PrintCreateResult(w io.Writer, result *scaffold.Result, verbose bool) {
	cfg := result.Config

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created %s (%s) in %s",
		output.StyleNoun.Render(cfg.PackageName), result.Framework.Label, cfg.TargetDirectory)))
	fmt.Fprintln(w)

	rewritten := make(map[string]bool)
	if result.Report != nil {
		for _, c := range result.Report.Changes {
			if c.Modified() {
				rewritten[c.Path] = true
			}
		}
	}

	entries := make([]output.TreeEntry, 0, len(result.Files))
	for _, f := range result.Files {
		e := output.TreeEntry{Path: f}
		if rewritten[f] {
			e.Description = output.StatusRewritten
		}
		entries = append(entries, e)
	}
	if tree := output.RenderFileTree(filepath.Base(cfg.TargetDirectory), entries); tree != "" {
		fmt.Fprint(w, tree)
	}

	if result.Report != nil {
		for _, path := range result.Report.Skipped() {
			fmt.Fprintln(w, output.FormatFileLine(path, output.StatusSkipped))
		}
		if verbose {
			for _, c := range result.Report.Changes {
				if !c.Modified() {
					continue
				}
				fmt.Fprintln(w, output.StyleSummary.Render(c.Path))
				fmt.Fprint(w, output.RenderConfigDiff(c.Path, c.Before, c.After))
			}
		}
	}

	if steps := output.RenderNextSteps(result.NextSteps); steps != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, steps)
	}
}
