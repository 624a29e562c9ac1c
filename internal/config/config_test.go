package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pathtree/pathtree/internal/config"
)

func TestDefaultConfiguration(t *testing.T) {
	configuration := config.DefaultConfiguration()

	expectedExcludes := []string{"DS_Store", "fish_variables*", ".zsh_history", "plugins/fish"}
	for _, expected := range expectedExcludes {
		found := false
		for _, pattern := range configuration.ExcludedFiles.Files {
			if pattern == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("default excludes missing %q", expected)
		}
	}
	if len(configuration.IncludedFiles.Files) != 0 {
		t.Errorf("default includes must be empty, got %v", configuration.IncludedFiles.Files)
	}
	if !configuration.Colors.ColorsEnabled() {
		t.Errorf("colors must default to enabled")
	}
}

func TestLoadConfigurationMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configuration, loadError := config.LoadConfiguration(config.LoadOptions{})
	if loadError != nil {
		t.Fatalf("missing file must not error, got %v", loadError)
	}
	if len(configuration.ExcludedFiles.Files) == 0 {
		t.Errorf("expected built-in excludes for missing file")
	}
}

func TestLoadConfigurationFromExplicitFile(t *testing.T) {
	configurationPath := filepath.Join(t.TempDir(), "custom.yaml")
	configurationContent := `excluded-files:
  files:
    - "*.tmp"
    - "*.tmp"
included-files:
  files:
    - important.tmp
sort: name
colors:
  enabled: false
  folder: cyan
  extensions:
    .go: green
`
	if writeError := os.WriteFile(configurationPath, []byte(configurationContent), 0o600); writeError != nil {
		t.Fatalf("writing configuration: %v", writeError)
	}

	configuration, loadError := config.LoadConfiguration(config.LoadOptions{ExplicitFilePath: configurationPath})
	if loadError != nil {
		t.Fatalf("load failed: %v", loadError)
	}
	if len(configuration.ExcludedFiles.Files) != 1 || configuration.ExcludedFiles.Files[0] != "*.tmp" {
		t.Errorf("expected deduplicated exclude list, got %v", configuration.ExcludedFiles.Files)
	}
	if len(configuration.IncludedFiles.Files) != 1 || configuration.IncludedFiles.Files[0] != "important.tmp" {
		t.Errorf("unexpected include list %v", configuration.IncludedFiles.Files)
	}
	if configuration.Sort != "name" {
		t.Errorf("expected sort name, got %q", configuration.Sort)
	}
	if configuration.Colors.ColorsEnabled() {
		t.Errorf("colors must be disabled by the file")
	}
	if configuration.Colors.Folder != "cyan" {
		t.Errorf("unexpected folder color %q", configuration.Colors.Folder)
	}
	if configuration.Colors.Extensions[".go"] != "green" {
		t.Errorf("unexpected extension overrides %v", configuration.Colors.Extensions)
	}
}

func TestLoadConfigurationParseFailureFallsBackToDefaults(t *testing.T) {
	configurationPath := filepath.Join(t.TempDir(), "broken.yaml")
	if writeError := os.WriteFile(configurationPath, []byte("excluded-files: [unclosed\n"), 0o600); writeError != nil {
		t.Fatalf("writing configuration: %v", writeError)
	}

	configuration, loadError := config.LoadConfiguration(config.LoadOptions{ExplicitFilePath: configurationPath})
	if loadError == nil {
		t.Fatalf("expected an error for unparseable configuration")
	}
	if len(configuration.ExcludedFiles.Files) == 0 {
		t.Errorf("expected defaults alongside the error")
	}
}

func TestDefaultTemplateParsesToBuiltinDefaults(t *testing.T) {
	configurationPath := filepath.Join(t.TempDir(), "pathtree.yaml")
	if writeError := os.WriteFile(configurationPath, []byte(config.DefaultConfigurationTemplate), 0o600); writeError != nil {
		t.Fatalf("writing configuration: %v", writeError)
	}

	configuration, loadError := config.LoadConfiguration(config.LoadOptions{ExplicitFilePath: configurationPath})
	if loadError != nil {
		t.Fatalf("template must parse, got %v", loadError)
	}
	defaults := config.DefaultConfiguration()
	if len(configuration.ExcludedFiles.Files) != len(defaults.ExcludedFiles.Files) {
		t.Errorf("template excludes %v differ from defaults %v", configuration.ExcludedFiles.Files, defaults.ExcludedFiles.Files)
	}
	if !configuration.Colors.ColorsEnabled() {
		t.Errorf("template must keep colors enabled")
	}
	if configuration.Sort != "none" {
		t.Errorf("template sort must be none, got %q", configuration.Sort)
	}
}

func TestConfigurationFilePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configurationPath, pathError := config.ConfigurationFilePath()
	if pathError != nil {
		t.Fatalf("resolving path: %v", pathError)
	}
	if !strings.HasSuffix(configurationPath, filepath.Join(".config", "pathtree", "pathtree.yaml")) {
		t.Errorf("unexpected configuration path %q", configurationPath)
	}
}

func TestInitializeConfiguration(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{})
	if initializeError != nil {
		t.Fatalf("initialization failed: %v", initializeError)
	}
	content, readError := os.ReadFile(writtenPath)
	if readError != nil {
		t.Fatalf("reading written configuration: %v", readError)
	}
	if string(content) != config.DefaultConfigurationTemplate {
		t.Errorf("written configuration differs from the default template")
	}

	if _, secondError := config.InitializeConfiguration(config.InitOptions{}); secondError == nil {
		t.Errorf("expected refusal to overwrite an existing configuration")
	}
	if _, forcedError := config.InitializeConfiguration(config.InitOptions{Force: true}); forcedError != nil {
		t.Errorf("forced initialization must succeed, got %v", forcedError)
	}
}

func TestDefaultTemplateSections(t *testing.T) {
	template := config.DefaultConfigurationTemplate
	for _, section := range []string{"excluded-files", "included-files", "colors", "DS_Store"} {
		if !strings.Contains(template, section) {
			t.Errorf("default template missing %q", section)
		}
	}
}
