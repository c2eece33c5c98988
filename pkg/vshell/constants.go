package vshell

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitArchiveError = 11 // Backing archive could not be opened
)

const (
	// DefaultHostname is used in the prompt when no hostname is configured.
	DefaultHostname = "localhost"

	// PathSeparator separates segments in archive names and virtual paths.
	PathSeparator = "/"

	// ConfigFileName is the session configuration file looked up in the working directory.
	ConfigFileName = "vshell.yaml"
)
