package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigurationTemplate is the annotated document written by
// InitializeConfiguration and printed by the config subcommand.
const DefaultConfigurationTemplate = `# Configuration for pathtree
# Edit this file to customize which files are excluded from the tree visualization.

excluded-files:
  # Patterns support glob-style wildcards: *, ?, [abc], [a-z]
  # Examples:
  #   "*.tmp"      matches any file ending in .tmp
  #   "cache/*"    matches any file in a cache directory
  #   "test_*.go"  matches test_foo.go, test_bar.go, etc.
  files:
    - DS_Store
    - fish_variables*
    - .rubocop.yml
    - .ruff_cache
    - yazi.toml-*
    - .zcompcache
    - .zcompdump
    - .zsh_history
    - plugins/fish
    - plugins/zsh

included-files:
  # Files matching these patterns are kept even when they match an exclusion.
  files: []

# Default sibling ordering: none, name, or type.
sort: none

colors:
  # Set to false to disable colors entirely.
  enabled: true

  # Available colors: black, red, green, yellow, blue, magenta, cyan, white.
  # Raw ANSI sequences such as "\x1b[1;32m" are also accepted.
  # folder: white
  # default-file: blue

  # Colors for specific file extensions.
  # extensions:
  #   .rs: red
  #   .py: green
  #   .md: cyan
`

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	// Force overwrites an existing configuration file.
	Force bool
}

// InitializeConfiguration writes the default configuration file, creating the
// configuration directory when needed. An existing file is left untouched
// unless Force is set.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, pathError := ConfigurationFilePath()
	if pathError != nil {
		return "", pathError
	}

	configurationDirectory := filepath.Dir(destinationPath)
	if mkdirError := os.MkdirAll(configurationDirectory, 0o755); mkdirError != nil {
		return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, mkdirError)
	}

	if _, statError := os.Stat(destinationPath); statError == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(statError) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, statError)
	}

	if writeError := os.WriteFile(destinationPath, []byte(DefaultConfigurationTemplate), 0o600); writeError != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, writeError)
	}

	return destinationPath, nil
}
