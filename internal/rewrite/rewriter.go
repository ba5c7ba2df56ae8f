package rewrite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	oerrors "github.com/tauristart/cli/internal/errors"
	"github.com/tauristart/cli/internal/output"
	"github.com/tauristart/cli/internal/project"
)

// Target-relative paths of the rewritten files.
const (
	PackageManifestPath = "package.json"
	AppDescriptorPath   = "src-tauri/tauri.conf.json"
	NativeManifestPath  = "src-tauri/Cargo.toml"
	WorkflowPath        = ".github/workflows/release.yml"
)

// workflowMatrix is the platform line shipped in every template workflow.
const workflowMatrix = "platform: [macos-latest, ubuntu-latest, windows-latest]"

var (
	// nativePackageName matches the first line-anchored name assignment,
	// which is the [package] name in every template manifest.
	nativePackageName = NewPattern(`(?m)^name\s*=\s*"[^"\n]*"`)

	workflowPlatforms = NewPattern(`(?m)^([ \t]*)` + regexp.QuoteMeta(workflowMatrix))
)

// Change records the outcome of rewriting one file.
type Change struct {
	// Path is relative to the project directory, slash separated.
	Path string

	// Before is the content that was read.
	Before string

	// After is the content that was written.
	After string

	// Skipped is set when the file was not found. Reason then wraps
	// errors.ErrConfigWriteSkipped.
	Skipped bool
	Reason  error
}

// Modified reports whether the written content differs from what was read.
func (c Change) Modified() bool {
	return !c.Skipped && c.Before != c.After
}

// Report collects the changes of one Apply call, in operation order.
type Report struct {
	Changes []Change
}

// Skipped returns the paths that were not found.
func (r *Report) Skipped() []string {
	var out []string
	for _, c := range r.Changes {
		if c.Skipped {
			out = append(out, c.Path)
		}
	}
	return out
}

// Written returns the paths that were written.
func (r *Report) Written() []string {
	var out []string
	for _, c := range r.Changes {
		if !c.Skipped {
			out = append(out, c.Path)
		}
	}
	return out
}

// Rewriter edits the known configuration files of a project.
type Rewriter struct {
	// Target is the project directory. Files are always written here.
	Target string

	// Templates is the template filesystem deferred files are read from.
	Templates fs.FS

	// Deferred maps target-relative paths to their source path in
	// Templates. A file listed here is read from the template instead of
	// the target.
	Deferred map[string]string
}

// Apply runs every rewrite for the given package name and release platforms.
// Missing files are recorded as skipped changes; other errors stop the run.
func (r *Rewriter) Apply(name string, platforms []project.Platform) (*Report, error) {
	report := &Report{}
	ops := []func() (Change, error){
		func() (Change, error) { return r.RewritePackageManifest(name) },
		func() (Change, error) { return r.RewriteAppDescriptor(name) },
		func() (Change, error) { return r.RewriteNativeManifest(name) },
		func() (Change, error) { return r.RewriteWorkflow(platforms) },
	}
	for _, op := range ops {
		change, err := op()
		if err != nil {
			return report, err
		}
		report.Changes = append(report.Changes, change)
	}
	return report, nil
}

// CopyUntouched writes deferred files that no rewrite in report handled,
// unchanged. It returns their paths, sorted.
func (r *Rewriter) CopyUntouched(report *Report) ([]string, error) {
	handled := make(map[string]bool, len(report.Changes))
	for _, c := range report.Changes {
		handled[c.Path] = true
	}

	var copied []string
	for rel := range r.Deferred {
		if handled[rel] {
			continue
		}
		if _, err := r.edit(rel, func(text string) (string, error) { return text, nil }); err != nil {
			return nil, err
		}
		copied = append(copied, rel)
	}
	slices.Sort(copied)
	return copied, nil
}

// RewritePackageManifest sets the top-level name of package.json.
func (r *Rewriter) RewritePackageManifest(name string) (Change, error) {
	return r.editJSON(PackageManifestPath, func(root *Object) {
		root.Set("name", name)
	})
}

// RewriteAppDescriptor sets productName when present, and the title of the
// first window when app.windows is a non-empty array.
func (r *Rewriter) RewriteAppDescriptor(name string) (Change, error) {
	return r.editJSON(AppDescriptorPath, func(root *Object) {
		if root.Has("productName") {
			root.Set("productName", name)
		}
		if app, ok := root.Object("app"); ok {
			if windows, ok := app.Array("windows"); ok {
				if first, ok := windows.Object(0); ok {
					first.Set("title", name)
				}
			}
		}
	})
}

// RewriteNativeManifest replaces the package name in Cargo.toml.
func (r *Rewriter) RewriteNativeManifest(name string) (Change, error) {
	change, err := r.edit(NativeManifestPath, func(text string) (string, error) {
		out, ok := nativePackageName.ReplaceFirst(text, func([]string) string {
			return `name = "` + name + `"`
		})
		if !ok {
			output.Debug("no package name assignment found", "path", NativeManifestPath)
		}
		return out, nil
	})
	if err != nil || change.Skipped {
		return change, err
	}

	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal([]byte(change.After), &manifest); err != nil {
		output.Warn("native manifest is not valid TOML", "path", NativeManifestPath, "err", err)
	} else if manifest.Package.Name != name {
		output.Warn("native manifest package name not updated",
			"path", NativeManifestPath, "want", name, "got", manifest.Package.Name)
	}
	return change, nil
}

// RewriteWorkflow narrows the CI platform matrix to the given platforms.
// A strict subset gets a trailing comment naming the excluded runners.
func (r *Rewriter) RewriteWorkflow(platforms []project.Platform) (Change, error) {
	line := "platform: [" + strings.Join(project.Runners(platforms), ", ") + "]"
	if excluded := project.ExcludedPlatforms(platforms); len(excluded) > 0 {
		line += " # excluded: " + strings.Join(project.Runners(excluded), ", ")
	}

	change, err := r.edit(WorkflowPath, func(text string) (string, error) {
		out, ok := workflowPlatforms.ReplaceFirst(text, func(groups []string) string {
			return groups[1] + line
		})
		if !ok {
			output.Debug("no platform matrix found", "path", WorkflowPath)
		}
		return out, nil
	})
	if err != nil || change.Skipped {
		return change, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(change.After), &doc); err != nil {
		output.Warn("workflow is not valid YAML", "path", WorkflowPath, "err", err)
	}
	return change, nil
}

func (r *Rewriter) editJSON(rel string, edit func(*Object)) (Change, error) {
	return r.edit(rel, func(text string) (string, error) {
		doc, err := ParseDocument([]byte(text))
		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", rel, err)
		}
		edit(doc.Root())
		out, err := doc.Encode()
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", rel, err)
		}
		return string(out), nil
	})
}

// edit reads rel from its deferred source or the target, applies fn and
// writes the result to the target. A missing file yields a skipped change.
// Nothing is written when fn fails.
func (r *Rewriter) edit(rel string, fn func(string) (string, error)) (Change, error) {
	change := Change{Path: rel}

	before, err := r.read(rel)
	if errors.Is(err, fs.ErrNotExist) {
		change.Skipped = true
		change.Reason = fmt.Errorf("%s: %w", rel, oerrors.ErrConfigWriteSkipped)
		output.Info("config file not found, skipping", "path", rel)
		return change, nil
	}
	if err != nil {
		return change, err
	}

	change.Before = string(before)
	if change.After, err = fn(change.Before); err != nil {
		return change, err
	}

	dest := filepath.Join(r.Target, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return change, fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(dest, []byte(change.After), 0o644); err != nil {
		return change, fmt.Errorf("writing %s: %w", rel, err)
	}
	output.Debug("rewrote config file", "path", rel, "modified", change.Modified())
	return change, nil
}

func (r *Rewriter) read(rel string) ([]byte, error) {
	if src, ok := r.Deferred[rel]; ok && r.Templates != nil {
		return fs.ReadFile(r.Templates, src)
	}
	return os.ReadFile(filepath.Join(r.Target, filepath.FromSlash(rel)))
}
