package cli

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pixfilter version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("pixfilter " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
