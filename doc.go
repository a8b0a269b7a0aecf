// Package pixfilter provides an image-filter host with dynamically
// loaded transform modules.
//
// # Overview
//
// pixfilter applies an in-place transform to an RGBA8 pixel buffer.
// Transforms implement a single fixed entry point, either as compiled-in
// Go filters resolved through a registry, or as native shared libraries
// exporting a C-ABI process_image symbol resolved at runtime.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixfilter"
//	    "github.com/gogpu/pixfilter/filter"
//	    _ "github.com/gogpu/pixfilter/filter/blur"
//	)
//
//	pm := pixfilter.NewPixmap(640, 480)
//	f := filter.Get("blur")
//	f.Process(uint32(pm.Width()), uint32(pm.Height()), pm.Data(), "radius=4")
//
// # Architecture
//
// The repository is organized into:
//   - Public API: Pixmap, filter contract and registry, native loader
//   - Filters: filter/blur (weighted spatial blur), filter/mirror (axis flips)
//   - Internal: imageio (codecs), cli (cobra driver)
//   - Plugins: c-shared builds of the two filters for foreign hosts
//
// # Trust boundary
//
// Loading a native module is inherently trust-based: the host cannot
// verify that the resolved symbol matches the expected signature. The
// single unsafe call site lives in filter/native; everything else is
// ordinary bounds-checked Go.
package pixfilter
