// Command pixfilter applies in-place image filters from compiled-in or
// dynamically loaded native modules.
package main

import (
	"os"

	"github.com/gogpu/pixfilter/internal/cli"

	// Register the built-in filters.
	_ "github.com/gogpu/pixfilter/filter/blur"
	_ "github.com/gogpu/pixfilter/filter/mirror"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
