package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfilter/filter"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the built-in filters",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range filter.Available() {
			cmd.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
