package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/tauristart/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables read by the resolver.
const (
	EnvConfig         = "TAURISTART_CONFIG"
	EnvPackageManager = "TAURISTART_PACKAGE_MANAGER"
	EnvFramework      = "TAURISTART_FRAMEWORK"
	EnvReleaseOS      = "TAURISTART_RELEASE_OS"
	EnvTemplatesDir   = "TAURISTART_TEMPLATES_DIR"
	EnvLogTimestamps  = "TAURISTART_LOG_TIMESTAMPS"
)

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	// Key is the config file key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Resolve picks a value using precedence: flag, env, config, default.
// Empty strings count as unset.
func Resolve(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) TAURISTART_CONFIG env, (3) ~/.tauristart/config.yaml
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolveConfigPathResult{}, err
	}
	v := Resolve("config", flagValue, EnvConfig, "", paths.ConfigFile)
	return ResolveConfigPathResult{
		ConfigPath: v.Value,
		Source:     v.Source,
		Shadowed:   v.Shadowed,
	}, nil
}

// Flags carries the command-line values that take part in resolution.
// Empty values are unset.
type Flags struct {
	PackageManager string
	Framework      string
	Platforms      []string
	TemplatesDir   string
}

// Settings is the resolved create configuration.
type Settings struct {
	PackageManager ResolvedValue
	Framework      ResolvedValue
	ReleaseOS      ResolvedValue
	TemplatesDir   ResolvedValue
}

// Values returns the settings in a fixed order for logging.
func (s Settings) Values() []ResolvedValue {
	return []ResolvedValue{s.PackageManager, s.Framework, s.ReleaseOS, s.TemplatesDir}
}

// Platforms returns ReleaseOS split into platform names.
func (s Settings) Platforms() []string {
	if s.ReleaseOS.Value == "" {
		return nil
	}
	return strings.Split(s.ReleaseOS.Value, ",")
}

// ResolveSettings applies flag > env > config > default to every create
// setting. defaultPackageManager is used when nothing else sets one.
func ResolveSettings(flags Flags, cfg *Config, defaultPackageManager string) Settings {
	if cfg == nil {
		cfg = &Config{}
	}
	defaults := DefaultConfig()

	return Settings{
		PackageManager: Resolve("packageManager", flags.PackageManager, EnvPackageManager, cfg.PackageManager, defaultPackageManager),
		Framework:      Resolve("framework", flags.Framework, EnvFramework, cfg.Framework, defaults.Framework),
		ReleaseOS: Resolve("releaseOS",
			strings.Join(flags.Platforms, ","), EnvReleaseOS,
			strings.Join(cfg.ReleaseOS, ","), strings.Join(defaults.ReleaseOS, ",")),
		TemplatesDir: Resolve("templatesDir", flags.TemplatesDir, EnvTemplatesDir, cfg.TemplatesDir, ""),
	}
}

// ResolveTimestamps resolves log timestamps using precedence:
// (1) --timestamps flag when set, (2) TAURISTART_LOG_TIMESTAMPS env,
// (3) log.timestamps in the config file. Nil means the default.
func ResolveTimestamps(flagSet, flagValue bool, cfg *Config) *bool {
	if flagSet {
		return output.BoolPtr(flagValue)
	}
	if env := os.Getenv(EnvLogTimestamps); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			return output.BoolPtr(b)
		}
		output.Warn("ignoring invalid boolean", "env", EnvLogTimestamps, "value", env)
	}
	if cfg != nil {
		return cfg.Log.Timestamps
	}
	return nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
