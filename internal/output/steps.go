package output

import (
	"fmt"
	"strings"
)

// RenderNextSteps renders the follow-up commands printed after a project
// has been created.
func RenderNextSteps(steps []string) string {
	if len(steps) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render("Next steps:"))
	sb.WriteString("\n")
	for i, s := range steps {
		sb.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%d.", i+1)), StyleAction.Render(s)))
	}
	return sb.String()
}
