package utils

// ConfigDirectoryName is the directory under ~/.config holding the configuration file.
const ConfigDirectoryName = "pathtree"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "pathtree.yaml"

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage reports a fatal application error.
const ApplicationExecutionFailedMessage = "application execution failed"
