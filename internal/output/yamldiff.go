package output

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// RenderStructuredDiff computes a document-level diff of two YAML or JSON
// inputs. It returns "" when the documents are equal, which includes edits
// that only touch comments or formatting.
func RenderStructuredDiff(before, after []byte, useColor bool) (string, error) {
	from, err := parseYAMLInput("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing original: %w", err)
	}
	to, err := parseYAMLInput("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing rewritten: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// RenderConfigDiff renders the change to one config file. JSON and YAML
// files get a structured diff; other files, and structured files whose
// change is textual only, get a line diff.
func RenderConfigDiff(name, before, after string) string {
	switch path.Ext(name) {
	case ".json", ".yml", ".yaml":
		diff, err := RenderStructuredDiff([]byte(before), []byte(after), IsTTY())
		if err != nil {
			Debug("structured diff failed", "file", name, "error", err)
		} else if diff != "" {
			return diff + "\n"
		}
	}
	return RenderTextDiff(before, after)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
