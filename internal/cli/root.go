package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// osHostname is replaced in tests.
var osHostname = os.Hostname

var rootCmd = &cobra.Command{
	Use:   "vshell",
	Short: "Read-only shell over a zip archive",
	Long: `vshell mounts a zip archive as a read-only virtual filesystem and runs a
small interactive shell over it.

Commands:
  ls            List the current directory
  cd [path]     Change directory (relative to the current one, . and ..)
  tac <file>    Print a file with its lines reversed
  cal           Print the current month
  date          Print the current date and time
  exit          End the session

A startup script (--script) is replayed through the shell before input is read.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Archive could not be opened`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

type shellFlagValues struct {
	username, hostname, vfsPath, script, configPath string
	plain                                           bool
}

var shellFlags shellFlagValues

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for vshell")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	rootCmd.Flags().StringVarP(&shellFlags.username, "username", "u", "",
		"User name shown in the prompt (or $VSHELL_USERNAME)")
	rootCmd.Flags().StringVar(&shellFlags.hostname, "hostname", "",
		"Host name shown in the prompt (default: localhost, or $VSHELL_HOSTNAME)")
	rootCmd.Flags().StringVar(&shellFlags.vfsPath, "vfs", "",
		"Path to the zip archive to mount (or $VSHELL_VFS)")
	rootCmd.Flags().StringVar(&shellFlags.script, "script", "",
		"Startup script replayed before input is read (or $VSHELL_SCRIPT)")
	rootCmd.Flags().StringVar(&shellFlags.configPath, "config", vshell.ConfigFileName,
		"Session configuration file")
	rootCmd.Flags().BoolVar(&shellFlags.plain, "plain", false,
		"Read commands line by line instead of running the interactive prompt")

	_ = rootCmd.RegisterFlagCompletionFunc("vfs", completeArchives)
	_ = rootCmd.RegisterFlagCompletionFunc("script", completeScripts)
	_ = rootCmd.RegisterFlagCompletionFunc("hostname", completeHostnames)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
