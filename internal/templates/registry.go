package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
)

// DefaultFrameworkName is the framework used when --framework is not given.
const DefaultFrameworkName = "react"

// OverlayDir is the shared overlay directory under the templates root.
const OverlayDir = ".base"

// frameworks is the static framework registry, in display order.
var frameworks = []Framework{
	{Name: "react", Label: "React + Vite", Mode: ModeDirectory, Path: "react", UseOverlay: true, Default: true},
	{Name: "vue", Label: "Vue + Vite", Mode: ModeDirectory, Path: "vue", UseOverlay: true},
	{Name: "sveltekit", Label: "SvelteKit", Mode: ModeDirectory, Path: "sveltekit", UseOverlay: false},
	{Name: "nextjs", Label: "Next.js", Mode: ModeArchive, Path: "nextjs.zip"},
}

// Get returns a framework by name.
// Returns a validation error if the framework is not registered.
func Get(name string) (Framework, error) {
	for _, fw := range frameworks {
		if fw.Name == name {
			return fw, nil
		}
	}
	return Framework{}, oerrors.NewValidationError(
		fmt.Sprintf("unknown framework %q", name),
		"framework",
		fmt.Sprintf("Valid frameworks: %s", strings.Join(Names(), ", ")),
	)
}

// List returns all registered frameworks.
func List() []Framework {
	out := make([]Framework, len(frameworks))
	copy(out, frameworks)
	return out
}

// GetDefault returns the default framework.
func GetDefault() Framework {
	fw, _ := Get(DefaultFrameworkName)
	return fw
}

// Names returns all framework names.
func Names() []string {
	names := make([]string, len(frameworks))
	for i, fw := range frameworks {
		names[i] = fw.Name
	}
	return names
}

// IsValid reports whether name is a registered framework.
func IsValid(name string) bool {
	_, err := Get(name)
	return err == nil
}
