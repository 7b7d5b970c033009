package config

// GetDefaults returns the default configuration values as a flat map
// suitable for seeding a koanf instance.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"destination":    "./dist",
		"changelog_path": "CHANGELOG.txt",
		"build_methods": []map[string]interface{}{
			{"name": "default", "command": "make build"},
		},
		"default_method":     "default",
		"skip_confirmations": false,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# modship configuration
# Project config lives at .modship/config.yml; user config at
# ~/.config/modship/config.yml. Environment variables (MODSHIP_*) win.

# Output settings
destination: ./dist            # Default output directory for release artifacts
# destinations:                # Uncomment to pick from a fixed menu instead
#   - ./dist
#   - /mnt/shared/releases

# Changelog settings
changelog_path: CHANGELOG.txt  # Changelog document holding the entry blocks

# Build methods. Each command runs through the system shell with
# MODSHIP_VERSION, MODSHIP_DEST, and MODSHIP_NOTES_FILE set.
build_methods:
  - name: default
    command: make build
#  - name: archive
#    command: ./scripts/package.sh

default_method: default        # Pre-selected build method

# Prompt settings
skip_confirmations: false      # Answer confirmations with their default (MODSHIP_YES)
`
}
