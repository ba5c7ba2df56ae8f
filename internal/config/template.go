package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const configHeader = `# tauristart configuration
#
# Every key is optional. Command-line flags and TAURISTART_* environment
# variables take precedence over the values below.
`

// DefaultConfigYAML renders DefaultConfig as the YAML written by
// `tauristart config init`.
func DefaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	return buf.Bytes(), nil
}
