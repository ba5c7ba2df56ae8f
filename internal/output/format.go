package output

import (
	"fmt"
	"strings"

	oerrors "github.com/tauristart/cli/internal/errors"
)

// Format specifies how listings are printed.
type Format string

const (
	// FormatTable prints a bordered table.
	FormatTable Format = "table"

	// FormatJSON prints indented JSON.
	FormatJSON Format = "json"

	// FormatYAML prints YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name. The empty string yields FormatTable.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", s),
			"output",
			"Valid formats: "+strings.Join(ValidFormats(), ", "),
		)
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
