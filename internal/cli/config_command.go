package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathtree/pathtree/internal/config"
)

// configCommandOptions stores the flag values of the config subcommand.
type configCommandOptions struct {
	showDefault bool
	initialize  bool
	force       bool
	showPath    bool
}

// createConfigCommand returns the config subcommand.
func createConfigCommand(parentOptions *rootOptions) *cobra.Command {
	var options configCommandOptions

	configCommand := &cobra.Command{
		Use:          configUse,
		Short:        configShortDescription,
		Long:         configLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runConfigCommand(options, parentOptions.configurationPath)
		},
	}

	configCommand.Flags().BoolVar(&options.showDefault, defaultFlagName, false, defaultFlagDescription)
	configCommand.Flags().BoolVar(&options.initialize, initFlagName, false, initFlagDescription)
	configCommand.Flags().BoolVar(&options.force, forceFlagName, false, forceFlagDescription)
	configCommand.Flags().BoolVar(&options.showPath, pathFlagName, false, pathFlagDescription)
	return configCommand
}

// runConfigCommand executes one of the config subcommand's modes.
func runConfigCommand(options configCommandOptions, explicitConfigurationPath string) error {
	switch {
	case options.showDefault:
		fmt.Print(config.DefaultConfigurationTemplate)
		return nil
	case options.initialize:
		writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{Force: options.force})
		if initializeError != nil {
			return initializeError
		}
		fmt.Printf(configurationWrittenFormat, writtenPath)
		return nil
	case options.showPath:
		configurationPath, resolveError := resolveConfigurationPath(explicitConfigurationPath)
		if resolveError != nil {
			return resolveError
		}
		fmt.Println(configurationPath)
		return nil
	default:
		return showActiveConfiguration(explicitConfigurationPath)
	}
}

// showActiveConfiguration prints the configuration file contents, falling back
// to the built-in defaults when no file exists.
func showActiveConfiguration(explicitConfigurationPath string) error {
	configurationPath, resolveError := resolveConfigurationPath(explicitConfigurationPath)
	if resolveError != nil {
		return resolveError
	}
	content, readError := os.ReadFile(configurationPath)
	if readError != nil {
		if os.IsNotExist(readError) {
			fmt.Print(config.DefaultConfigurationTemplate)
			return nil
		}
		return fmt.Errorf(errorReadConfigurationFormat, configurationPath, readError)
	}
	fmt.Print(string(content))
	return nil
}

func resolveConfigurationPath(explicitConfigurationPath string) (string, error) {
	if explicitConfigurationPath != "" {
		return explicitConfigurationPath, nil
	}
	configurationPath, pathError := config.ConfigurationFilePath()
	if pathError != nil {
		return "", fmt.Errorf(errorResolveConfigurationError, pathError)
	}
	return configurationPath, nil
}
