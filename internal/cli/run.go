package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/filter"
	"github.com/gogpu/pixfilter/filter/native"
	"github.com/gogpu/pixfilter/internal/imageio"
)

// Driver errors.
var (
	// ErrMissingInput is returned when the input image does not exist.
	ErrMissingInput = errors.New("cli: input file does not exist")

	// ErrMissingParams is returned when the params file does not exist.
	ErrMissingParams = errors.New("cli: params file does not exist")

	// ErrNoFilter is returned when neither --filter nor --plugin is given.
	ErrNoFilter = errors.New("cli: no filter selected (use --filter or --plugin)")

	// ErrUnknownFilter is returned for a --filter name that is not registered.
	ErrUnknownFilter = errors.New("cli: unknown filter")

	// ErrConfigRejected is returned when the filter rejects the params blob.
	ErrConfigRejected = errors.New("cli: filter rejected configuration")
)

// runOptions carries the flags shared by run and watch.
type runOptions struct {
	input      string
	output     string
	params     string
	filterName string
	plugin     string
	pluginDir  string
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a filter to an image once",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runProcess(runOpts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addProcessFlags(runCmd, &runOpts)
}

// addProcessFlags registers the shared processing flags on cmd.
func addProcessFlags(cmd *cobra.Command, o *runOptions) {
	cmd.Flags().StringVar(&o.input, "input", "", "path to input image")
	cmd.Flags().StringVar(&o.output, "output", "", "path to output image")
	cmd.Flags().StringVar(&o.params, "params", "", "path to params text file")
	cmd.Flags().StringVar(&o.filterName, "filter", "", "built-in filter name (see 'pixfilter filters')")
	cmd.Flags().StringVar(&o.plugin, "plugin", "", "native module name without lib prefix or extension")
	cmd.Flags().StringVar(&o.pluginDir, "plugin-dir", ".", "directory containing native modules")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
}

// runProcess is one full driver pass: validate inputs, read params,
// decode, resolve the filter, invoke it and persist the result. A loaded
// native module is released unconditionally when the pass returns.
func runProcess(o runOptions) error {
	log := pixfilter.Logger().With("run_id", uuid.NewString())

	if _, err := os.Stat(o.input); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingInput, o.input)
	}

	var params string
	if o.params != "" {
		if _, err := os.Stat(o.params); err != nil {
			return fmt.Errorf("%w: %s", ErrMissingParams, o.params)
		}
		var err error
		params, err = readParams(o.params)
		if err != nil {
			return err
		}
	}

	pm, err := imageio.Load(o.input)
	if err != nil {
		return err
	}

	f, closeFilter, err := resolveFilter(o)
	if err != nil {
		return err
	}
	defer closeFilter()

	log.Info("processing image",
		"input", o.input,
		"filter", f.Name(),
		"width", pm.Width(),
		"height", pm.Height(),
	)

	status := f.Process(uint32(pm.Width()), uint32(pm.Height()), pm.Data(), params)
	switch status {
	case filter.StatusInvalidConfig:
		return fmt.Errorf("%w: filter %q, params %s", ErrConfigRejected, f.Name(), o.params)
	case filter.StatusNoOp:
		log.Warn("filter reported a no-op", "filter", f.Name())
	}

	if err := imageio.Save(pm, o.output); err != nil {
		return err
	}

	log.Info("output saved", "path", o.output)
	return nil
}

// resolveFilter picks the transform: a native module when --plugin is
// given, otherwise a registry lookup. The returned release func unloads a
// native module and is a no-op for built-ins.
func resolveFilter(o runOptions) (filter.Filter, func(), error) {
	switch {
	case o.plugin != "":
		path := filepath.Join(o.pluginDir, native.LibraryFilename(o.plugin))
		mod, err := native.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return mod, func() { _ = mod.Close() }, nil

	case o.filterName != "":
		f := filter.Get(o.filterName)
		if f == nil {
			return nil, nil, fmt.Errorf("%w: %q (available: %s)",
				ErrUnknownFilter, o.filterName, strings.Join(filter.Available(), ", "))
		}
		return f, func() {}, nil

	default:
		return nil, nil, ErrNoFilter
	}
}
