// Package cli implements the pixfilter command line driver.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gogpu/pixfilter"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pixfilter",
	Short: "Apply in-place image filters from compiled-in or native modules",
	Long: `pixfilter decodes an image into an RGBA8 buffer, hands the buffer to a
filter together with a free-form params blob, and writes the mutated
pixels back out. Filters are either compiled in (see 'pixfilter filters')
or loaded at runtime from a shared library exporting process_image.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configureLogging wires a slog handler into the library logger: text on
// a terminal, JSON when stderr is redirected.
func configureLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	pixfilter.SetLogger(slog.New(h))
}
