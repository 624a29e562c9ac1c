// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pathtree/pathtree/internal/color"
	"github.com/pathtree/pathtree/internal/commands"
	"github.com/pathtree/pathtree/internal/config"
	"github.com/pathtree/pathtree/internal/match"
	"github.com/pathtree/pathtree/internal/output"
	"github.com/pathtree/pathtree/internal/services/clipboard"
	"github.com/pathtree/pathtree/internal/trie"
	"github.com/pathtree/pathtree/internal/types"
	"github.com/pathtree/pathtree/internal/utils"
)

const (
	sortFlagName    = "sort"
	statsFlagName   = "stats"
	noColorFlagName = "no-color"
	copyFlagName    = "copy"
	configFlagName  = "config"
	versionFlagName = "version"
	defaultFlagName = "default"
	initFlagName    = "init"
	forceFlagName   = "force"
	pathFlagName    = "path"

	versionTemplate      = "pathtree version: %s\n"
	rootUse              = "pathtree"
	rootShortDescription = "render piped file paths as a tree"
	rootLongDescription  = `pathtree reads file paths from stdin, filters them against configurable
exclude and include patterns, and prints a connected tree with box-drawing
glyphs and per-file-type colors.`
	// rootUsageExample demonstrates typical invocations.
	rootUsageExample = `  # Render every tracked chezmoi file
  chezmoi managed | pathtree

  # Render a sorted tree with summary counts
  find . -type f | pathtree --sort name --stats`

	configUse              = "config"
	configShortDescription = "show or initialize the configuration file"
	configLongDescription  = `Print the active configuration file, or manage it.
Use --default to print the built-in defaults, --init to write them to the
configuration file, and --path to print the resolved file location.`

	sortFlagDescription    = "sibling order: none, name, or type"
	statsFlagDescription   = "print file, directory, and exclusion counts"
	noColorFlagDescription = "disable output colors"
	copyFlagDescription    = "copy the rendered tree to the clipboard"
	configFlagDescription  = "configuration file path"
	versionFlagDescription = "display application version"
	defaultFlagDescription = "print the default configuration"
	initFlagDescription    = "write the default configuration file"
	forceFlagDescription   = "overwrite an existing configuration file"
	pathFlagDescription    = "print the configuration file location"

	noInputMessage                 = "No input provided. Please pipe data into the program."
	configurationWrittenFormat     = "Configuration file written to %s\n"
	warningConfigurationFormat     = "Warning: using default configuration: %v\n"
	warningReadInputFormat         = "Warning: %v\n"
	warningWorkingDirectoryFormat  = "Warning: unable to determine working directory: %v\n"
	warningClipboardFormat         = "Warning: unable to copy tree to clipboard: %v\n"
	statisticsFormat               = "\nFiles: %d\nDirectories: %d\nExcluded: %d\n"
	errorRenderFormat              = "rendering tree: %w"
	errorFlushFormat               = "flushing output: %w"
	errorReadConfigurationFormat   = "read configuration from %s: %w"
	errorResolveConfigurationError = "resolve configuration location: %w"
)

// Execute runs the pathtree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// rootOptions stores the flag values of the root command.
type rootOptions struct {
	sortSelector      string
	statsEnabled      bool
	colorDisabled     bool
	copyEnabled       bool
	configurationPath string
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runRootCommand(command, options)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().StringVar(&options.sortSelector, sortFlagName, string(types.SortNone), sortFlagDescription)
	rootCommand.Flags().BoolVar(&options.statsEnabled, statsFlagName, false, statsFlagDescription)
	rootCommand.Flags().BoolVar(&options.colorDisabled, noColorFlagName, false, noColorFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyEnabled, copyFlagName, false, copyFlagDescription)
	rootCommand.AddCommand(createConfigCommand(&options))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runRootCommand executes the build and render pipeline over stdin.
func runRootCommand(command *cobra.Command, options rootOptions) error {
	configuration, configurationError := config.LoadConfiguration(config.LoadOptions{ExplicitFilePath: options.configurationPath})
	if configurationError != nil {
		fmt.Fprintf(os.Stderr, warningConfigurationFormat, configurationError)
	}

	sortOrder, sortOrderError := resolveSortOrder(command, options.sortSelector, configuration.Sort)
	if sortOrderError != nil {
		return sortOrderError
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, noInputMessage)
		return nil
	}

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		fmt.Fprintf(os.Stderr, warningWorkingDirectoryFormat, workingDirectoryError)
		workingDirectory = ""
	}

	matcher := match.NewMatcher(configuration.ExcludedFiles.Files, configuration.IncludedFiles.Files)
	treeBuilder := commands.NewTreeBuilder(matcher, workingDirectory)
	if readError := treeBuilder.ReadFrom(os.Stdin); readError != nil {
		fmt.Fprintf(os.Stderr, warningReadInputFormat, readError)
	}

	rootNode := treeBuilder.Root()
	rootNode.SortBy(sortOrder)

	colorScheme := color.NewScheme(color.Options{
		Enabled:     configuration.Colors.ColorsEnabled() && !options.colorDisabled,
		Folder:      configuration.Colors.Folder,
		DefaultFile: configuration.Colors.DefaultFile,
		Extensions:  configuration.Colors.Extensions,
	})

	outputWriter := bufio.NewWriter(os.Stdout)
	renderer := output.NewRenderer(outputWriter, colorScheme)
	if renderError := renderer.RenderTree(rootNode); renderError != nil {
		return fmt.Errorf(errorRenderFormat, renderError)
	}

	if options.statsEnabled {
		statistics := treeBuilder.Statistics()
		fmt.Fprintf(outputWriter, statisticsFormat, statistics.Files, statistics.Directories, statistics.Excluded)
	}

	if flushError := outputWriter.Flush(); flushError != nil {
		return fmt.Errorf(errorFlushFormat, flushError)
	}

	if options.copyEnabled {
		if copyError := copyTreeToClipboard(rootNode); copyError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardFormat, copyError)
		}
	}

	return nil
}

// resolveSortOrder picks the sort order from the flag when set, falling back
// to the configured default.
func resolveSortOrder(command *cobra.Command, flagSelector string, configuredSelector string) (types.SortOrder, error) {
	selector := flagSelector
	if !command.Flags().Changed(sortFlagName) && configuredSelector != "" {
		selector = configuredSelector
	}
	return types.ParseSortOrder(strings.ToLower(selector))
}

// copyTreeToClipboard renders the tree without decoration and places the text
// on the system clipboard.
func copyTreeToClipboard(rootNode *trie.Node) error {
	var plainBuffer bytes.Buffer
	plainRenderer := output.NewRenderer(&plainBuffer, output.NewPlainColorizer())
	if renderError := plainRenderer.RenderTree(rootNode); renderError != nil {
		return renderError
	}
	return clipboard.NewService().Copy(plainBuffer.String())
}
