package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderTextDiff renders a line-level diff between before and after.
// Unchanged lines are omitted; added lines start with "+ " and removed
// lines with "- ". Returns an empty string when the texts are equal.
func RenderTextDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	styles := GetStyles()
	var sb strings.Builder
	for _, d := range diffs {
		var marker string
		var style = styles.Muted
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker, style = "+ ", styles.Added
		case diffmatchpatch.DiffDelete:
			marker, style = "- ", styles.Removed
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(style.Render(marker + strings.TrimSuffix(line, "\n")))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
