// Package config loads and represents the pathtree configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pathtree/pathtree/internal/utils"
)

// configDirectoryParent is the directory under the home directory holding
// per-application configuration.
const configDirectoryParent = ".config"

// viperKeyDelimiter replaces viper's default "." delimiter so extension keys
// such as ".go" under colors.extensions survive decoding intact.
const viperKeyDelimiter = "::"

// Configuration holds the file filtering and presentation settings.
type Configuration struct {
	// ExcludedFiles lists patterns for files dropped from the tree.
	ExcludedFiles FileList `mapstructure:"excluded-files"`
	// IncludedFiles lists patterns that exempt matching files from exclusion.
	IncludedFiles FileList `mapstructure:"included-files"`
	// Colors configures output decoration.
	Colors ColorConfiguration `mapstructure:"colors"`
	// Sort selects the default sibling ordering (none, name, or type).
	Sort string `mapstructure:"sort"`
}

// FileList is an ordered collection of file patterns.
type FileList struct {
	Files []string `mapstructure:"files"`
}

// ColorConfiguration configures output decoration.
type ColorConfiguration struct {
	// Enabled turns colors on or off; unset means enabled.
	Enabled *bool `mapstructure:"enabled"`
	// Folder overrides the folder color.
	Folder string `mapstructure:"folder"`
	// DefaultFile overrides the color for files without a matching extension.
	DefaultFile string `mapstructure:"default-file"`
	// Extensions maps extension suffixes to color values.
	Extensions map[string]string `mapstructure:"extensions"`
}

// ColorsEnabled reports the effective color switch, defaulting to true.
func (colorConfiguration ColorConfiguration) ColorsEnabled() bool {
	if colorConfiguration.Enabled == nil {
		return true
	}
	return *colorConfiguration.Enabled
}

// defaultExcludedFiles returns the built-in list of common noise files and
// directories excluded when no configuration file is present.
func defaultExcludedFiles() []string {
	return []string{
		"DS_Store",
		"fish_variables*",
		".rubocop.yml",
		".ruff_cache",
		"yazi.toml-*",
		".zcompcache",
		".zcompdump",
		".zsh_history",
		"plugins/fish",
		"plugins/zsh",
	}
}

// DefaultConfiguration returns the configuration used when no file exists.
func DefaultConfiguration() Configuration {
	return Configuration{
		ExcludedFiles: FileList{Files: defaultExcludedFiles()},
	}
}

// ConfigurationFilePath returns the location of the configuration file,
// ~/.config/pathtree/pathtree.yaml.
func ConfigurationFilePath() (string, error) {
	homeDirectory, homeDirectoryError := os.UserHomeDir()
	if homeDirectoryError != nil {
		return "", fmt.Errorf("resolve home directory for configuration: %w", homeDirectoryError)
	}
	return filepath.Join(homeDirectory, configDirectoryParent, utils.ConfigDirectoryName, utils.ConfigFileName), nil
}

// LoadOptions controls how configuration is discovered.
type LoadOptions struct {
	// ExplicitFilePath overrides the default configuration file location.
	ExplicitFilePath string
}

// LoadConfiguration reads the configuration file. A missing file yields the
// built-in defaults and no error. An unreadable or unparseable file also
// yields the defaults, along with an error the caller may report; the run
// itself proceeds.
func LoadConfiguration(options LoadOptions) (Configuration, error) {
	configurationPath := options.ExplicitFilePath
	if configurationPath == "" {
		resolvedPath, resolveError := ConfigurationFilePath()
		if resolveError != nil {
			return DefaultConfiguration(), resolveError
		}
		configurationPath = resolvedPath
	}

	fileInformation, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return DefaultConfiguration(), nil
		}
		return DefaultConfiguration(), fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if fileInformation.IsDir() {
		return DefaultConfiguration(), fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	reader := viper.NewWithOptions(viper.KeyDelimiter(viperKeyDelimiter))
	reader.SetConfigFile(configurationPath)
	if readError := reader.ReadInConfig(); readError != nil {
		return DefaultConfiguration(), fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var configuration Configuration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return DefaultConfiguration(), fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}

	configuration.ExcludedFiles.Files = utils.DeduplicatePatterns(configuration.ExcludedFiles.Files)
	configuration.IncludedFiles.Files = utils.DeduplicatePatterns(configuration.IncludedFiles.Files)
	return configuration, nil
}
