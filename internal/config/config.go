// Package config provides hierarchical configuration management for
// modship using koanf. Configuration is loaded with priority: environment
// variables > project config (.modship/config.yml) > user config
// (~/.config/modship/config.yml) > defaults. Legacy JSON project configs
// are still readable with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// BuildMethod is one named way of assembling the release artifact. The
// command runs through the system shell with MODSHIP_VERSION,
// MODSHIP_DEST, and MODSHIP_NOTES_FILE in its environment.
type BuildMethod struct {
	Name    string `koanf:"name"`
	Command string `koanf:"command"`
}

// Configuration represents the modship CLI tool configuration.
type Configuration struct {
	// Destination is the default output directory for release artifacts.
	Destination string `koanf:"destination"`

	// Destinations, when set, replaces the free-form destination prompt
	// with a menu of these paths.
	Destinations []string `koanf:"destinations"`

	// ChangelogPath points at the changelog document to resolve patch
	// notes from.
	ChangelogPath string `koanf:"changelog_path"`

	// BuildMethods lists the available build commands. A single entry is
	// used without prompting.
	BuildMethods []BuildMethod `koanf:"build_methods"`

	// DefaultMethod names the pre-selected build method.
	DefaultMethod string `koanf:"default_method"`

	// SkipConfirmations answers confirmation prompts with their default
	// (can also be set via MODSHIP_YES env var).
	SkipConfirmations bool `koanf:"skip_confirmations"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .modship/config.yml).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if userPath, err := UserConfigPath(); err == nil && fileExists(userPath) {
		if err := loadYAMLConfig(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("MODSHIP_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k)
}

// loadProjectConfig loads project-level config, YAML preferred with a
// legacy JSON fallback.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	if fileExists(yamlPath) {
		return loadYAMLConfig(k, yamlPath, "project")
	}
	if fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Move it to %s in YAML format.\n\n", ProjectConfigPath())
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// ValidateYAMLSyntax checks that a file is well-formed YAML before koanf
// flattens it, so syntax problems get a file-level error message.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var node yamlv3.Node
	if err := yamlv3.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("%s is not valid YAML: %w", path, err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Destination = expandHomePath(cfg.Destination)
	for i, d := range cfg.Destinations {
		cfg.Destinations[i] = expandHomePath(d)
	}

	if os.Getenv("MODSHIP_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// Validate checks semantic constraints that koanf cannot express.
func Validate(cfg *Configuration) error {
	if cfg.ChangelogPath == "" {
		return fmt.Errorf("changelog_path must not be empty")
	}
	names := make(map[string]bool, len(cfg.BuildMethods))
	for i, m := range cfg.BuildMethods {
		if m.Name == "" {
			return fmt.Errorf("build_methods[%d]: name is required", i)
		}
		if m.Command == "" {
			return fmt.Errorf("build_methods[%d] (%s): command is required", i, m.Name)
		}
		if names[m.Name] {
			return fmt.Errorf("build_methods: duplicate name %q", m.Name)
		}
		names[m.Name] = true
	}
	if cfg.DefaultMethod != "" && len(cfg.BuildMethods) > 0 && !names[cfg.DefaultMethod] {
		return fmt.Errorf("default_method %q is not in build_methods", cfg.DefaultMethod)
	}
	return nil
}

// Method returns the build method with the given name.
func (c *Configuration) Method(name string) (BuildMethod, bool) {
	for _, m := range c.BuildMethods {
		if m.Name == name {
			return m, true
		}
	}
	return BuildMethod{}, false
}

// envTransform maps MODSHIP_CHANGELOG_PATH to changelog_path and so on.
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MODSHIP_")), "__", ".")
}

func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
