package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// archiveExtensions lists the file extensions offered for --vfs completion.
var archiveExtensions = []string{"zip"}

// scriptExtensions lists the file extensions offered for --script completion.
var scriptExtensions = []string{"txt", "sh", "vsh"}

// completeArchives provides shell completion for the --vfs flag.
func completeArchives(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return archiveExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeScripts provides shell completion for the --script flag.
func completeScripts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return scriptExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeHostnames offers the default hostname plus the local machine name.
func completeHostnames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	candidates := []string{"localhost"}
	if h, err := osHostname(); err == nil && h != "" && h != "localhost" {
		candidates = append(candidates, h)
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
