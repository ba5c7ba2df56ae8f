package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"sigs.k8s.io/yaml"

	"github.com/tauristart/cli/internal/project"
	"github.com/tauristart/cli/internal/templates"
)

//go:embed schema.json
var schemaBytes []byte

const schemaURL = "config.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of validating a config file.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem found in a config file.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/releaseOS/1"
	Message string
	Keyword string
}

// String formats the issue for display.
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationErrors is the error form of a failed ValidationResult.
type ValidationErrors []ValidationIssue

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, issue := range e {
		fmt.Fprintf(&sb, "  %s\n", issue)
	}
	return sb.String()
}

// Err returns the issues as an error, or nil when the result is valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return ValidationErrors(r.Issues)
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw config YAML against the config schema. The error
// return is for parse or schema failures; problems in the document are
// reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &ValidationResult{Valid: true}, nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// ValidateFile reads a config file and validates it.
func ValidateFile(path string) (*ValidationResult, error) {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Validate(data)
}

// ValidateConfig checks a decoded Config. It catches values that reached the
// struct without passing through the schema, such as environment overrides.
func ValidateConfig(cfg *Config) error {
	var issues ValidationErrors

	if cfg.PackageManager != "" {
		if _, err := project.ParsePackageManager(cfg.PackageManager); err != nil {
			issues = append(issues, ValidationIssue{Path: "/packageManager", Message: err.Error(), Keyword: "enum"})
		}
	}
	if cfg.Framework != "" && !templates.IsValid(cfg.Framework) {
		issues = append(issues, ValidationIssue{
			Path:    "/framework",
			Message: fmt.Sprintf("unknown framework %q (valid: %s)", cfg.Framework, strings.Join(templates.Names(), ", ")),
			Keyword: "enum",
		})
	}
	for i, name := range cfg.ReleaseOS {
		if _, ok := project.LookupPlatform(name); !ok {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("/releaseOS/%d", i),
				Message: fmt.Sprintf("unknown platform %q", name),
				Keyword: "enum",
			})
		}
	}

	if len(issues) > 0 {
		return issues
	}
	return nil
}

// extractIssues flattens the error tree into leaf issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	if ve.ErrorKind == nil {
		return
	}
	keyword := ""
	if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
		keyword = kwPath[len(kwPath)-1]
	}
	if keyword == "" || keyword == "allOf" || keyword == "$ref" {
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
