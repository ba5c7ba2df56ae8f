package project

import (
	"fmt"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
)

// PackageManager is the JavaScript package manager used in next-step
// instructions.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// DefaultPackageManager is used when nothing else is configured or detected.
const DefaultPackageManager = NPM

// PackageManagers returns the supported package managers.
func PackageManagers() []string {
	return []string{string(NPM), string(Yarn), string(PNPM)}
}

// ParsePackageManager parses a package manager name. The empty string yields
// the default.
func ParsePackageManager(s string) (PackageManager, error) {
	switch PackageManager(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPackageManager, nil
	case NPM:
		return NPM, nil
	case Yarn:
		return Yarn, nil
	case PNPM:
		return PNPM, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown package manager %q", s),
			"package-manager",
			fmt.Sprintf("Valid package managers: %s", strings.Join(PackageManagers(), ", ")),
		)
	}
}

// DetectPackageManager derives the package manager from an
// npm_config_user_agent value such as "pnpm/8.6.0 npm/? node/v18.16.0".
// Unknown or empty agents yield npm.
func DetectPackageManager(userAgent string) PackageManager {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return DefaultPackageManager
	}
	name, _, _ := strings.Cut(fields[0], "/")
	switch PackageManager(name) {
	case Yarn:
		return Yarn
	case PNPM:
		return PNPM
	default:
		return NPM
	}
}

// InstallCommand returns the dependency install command.
func (pm PackageManager) InstallCommand() string {
	if pm == Yarn {
		return "yarn"
	}
	return string(pm) + " install"
}

// RunCommand returns the command that runs a package script.
func (pm PackageManager) RunCommand(script string) string {
	if pm == NPM {
		return "npm run " + script
	}
	return string(pm) + " " + script
}
