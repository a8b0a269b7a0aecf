package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfilter"
)

// debounceDelay coalesces bursts of filesystem events (editors often
// produce several writes per save).
const debounceDelay = 200 * time.Millisecond

var watchOpts runOptions

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-apply a filter whenever the input or params file changes",
	Long: `Applies the filter once, then watches the input image and params file
and re-processes sequentially on every change until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addProcessFlags(watchCmd, &watchOpts)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial pass; a failure here is fatal, later failures only log.
	if err := runProcess(watchOpts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cli: create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directories: editors replace files on save, and
	// watching the path directly would lose the watch on rename.
	watched := map[string]bool{filepath.Clean(watchOpts.input): true}
	dirs := map[string]bool{filepath.Dir(watchOpts.input): true}
	if watchOpts.params != "" {
		watched[filepath.Clean(watchOpts.params)] = true
		dirs[filepath.Dir(watchOpts.params)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("cli: watch %s: %w", dir, err)
		}
	}

	log := pixfilter.Logger()
	log.Info("watching for changes", "input", watchOpts.input, "params", watchOpts.params)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			debounce = time.After(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-debounce:
			debounce = nil
			if err := runProcess(watchOpts); err != nil {
				log.Error("reprocess failed", "error", err)
			}
		}
	}
}
