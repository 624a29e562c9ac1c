// Package color decorates rendered tree entries with ANSI colors chosen by file type.
package color

import (
	"sort"
	"strings"

	"github.com/muesli/termenv"
)

const (
	ansiResetSequence = "\x1b[0m"
	rawSequencePrefix = "\x1b["

	defaultFolderColor      = "white"
	defaultFileColor        = "blue"
	extensionDelimiter      = "."
	unknownNamedColorTarget = defaultFileColor
)

// namedColorCodes maps the configurable color names onto ANSI 16-color codes.
var namedColorCodes = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

type extensionGroup struct {
	extensions []string
	colorName  string
}

// defaultExtensionGroups assigns colors to common extension families.
var defaultExtensionGroups = []extensionGroup{
	{extensions: []string{".fish", ".zsh", ".sh", ".nu"}, colorName: "green"},
	{extensions: []string{".toml", ".json", ".yml", ".yaml", ".xml", ".ini", ".conf"}, colorName: "yellow"},
	{extensions: []string{".md", ".txt"}, colorName: "cyan"},
	{extensions: []string{".rs", ".py", ".go", ".jl"}, colorName: "red"},
	{extensions: []string{".plist", ".sublime"}, colorName: "magenta"},
}

// Options configures a Scheme. Color values are either one of the named colors
// (black, red, green, yellow, blue, magenta, cyan, white) or a raw ANSI escape
// sequence such as "\x1b[1;32m".
type Options struct {
	// Enabled turns decoration on. Even when set, output to a terminal that
	// reports no color support stays plain.
	Enabled bool
	// Folder overrides the color used for entries without an extension.
	Folder string
	// DefaultFile overrides the color used for files with no matching group.
	DefaultFile string
	// Extensions maps extension suffixes (".rs") to color values, overriding
	// the built-in groups.
	Extensions map[string]string
}

type extensionOverride struct {
	extension  string
	colorValue string
}

// Scheme selects and applies a color per rendered entry name.
type Scheme struct {
	enabled     bool
	profile     termenv.Profile
	folderColor string
	fileColor   string
	overrides   []extensionOverride
}

// NewScheme builds a Scheme from the given options, detecting the terminal's
// color profile from the environment (NO_COLOR and CLICOLOR are honored).
func NewScheme(options Options) *Scheme {
	profile := termenv.EnvColorProfile()

	folderColor := options.Folder
	if folderColor == "" {
		folderColor = defaultFolderColor
	}
	fileColor := options.DefaultFile
	if fileColor == "" {
		fileColor = defaultFileColor
	}

	// Configured overrides are sorted for deterministic lookup order.
	overrides := make([]extensionOverride, 0, len(options.Extensions))
	for extension, colorValue := range options.Extensions {
		overrides = append(overrides, extensionOverride{extension: extension, colorValue: colorValue})
	}
	sort.Slice(overrides, func(leftIndex, rightIndex int) bool {
		return overrides[leftIndex].extension < overrides[rightIndex].extension
	})

	return &Scheme{
		enabled:     options.Enabled && profile != termenv.Ascii,
		profile:     profile,
		folderColor: folderColor,
		fileColor:   fileColor,
		overrides:   overrides,
	}
}

// Colorize returns the entry name wrapped in the color selected for it, or the
// name unchanged when decoration is disabled. Names without a dot are treated
// as folders; everything else is colored by extension.
func (scheme *Scheme) Colorize(entryName string) string {
	if !scheme.enabled {
		return entryName
	}
	return scheme.apply(scheme.colorValueFor(entryName), entryName)
}

// Enabled reports whether the scheme decorates output.
func (scheme *Scheme) Enabled() bool {
	return scheme.enabled
}

func (scheme *Scheme) colorValueFor(entryName string) string {
	if !strings.Contains(entryName, extensionDelimiter) {
		return scheme.folderColor
	}
	for _, override := range scheme.overrides {
		if strings.HasSuffix(entryName, override.extension) {
			return override.colorValue
		}
	}
	for _, group := range defaultExtensionGroups {
		for _, extension := range group.extensions {
			if strings.HasSuffix(entryName, extension) {
				return group.colorName
			}
		}
	}
	return scheme.fileColor
}

func (scheme *Scheme) apply(colorValue string, entryName string) string {
	if strings.HasPrefix(colorValue, rawSequencePrefix) {
		return colorValue + entryName + ansiResetSequence
	}
	ansiCode, known := namedColorCodes[colorValue]
	if !known {
		ansiCode = namedColorCodes[unknownNamedColorTarget]
	}
	return termenv.String(entryName).
		Foreground(scheme.profile.Color(ansiCode)).
		Bold().
		String()
}
