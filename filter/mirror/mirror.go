// Package mirror implements axis flips: top-to-bottom row flipping and
// left-to-right mirroring of each row.
//
// Unlike blur, the configuration is structured (TOML) and malformed input
// is a hard failure. The two flips act on disjoint axes, so both may be
// set and their order does not affect the result.
package mirror

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/filter"
)

// init registers the mirror filter on package import.
func init() {
	filter.Register("mirror", func() filter.Filter { return New() })
}

// params is the TOML configuration blob.
// Missing fields default to false; unknown fields are ignored.
type params struct {
	Horizontal bool `toml:"horizontal"`
	Vertical   bool `toml:"vertical"`
}

// Mirror is the axis-flip filter.
type Mirror struct{}

// New creates a new mirror filter.
func New() *Mirror { return &Mirror{} }

// Name returns the filter identifier.
func (*Mirror) Name() string { return "mirror" }

// Process flips pix in place according to the TOML config.
//
// horizontal = true flips rows top-to-bottom; vertical = true mirrors
// each row left-to-right. Configuration that is not valid TOML (or types
// a field wrongly) yields StatusInvalidConfig with the buffer untouched.
func (*Mirror) Process(width, height uint32, pix []byte, config string) filter.Status {
	if len(pix) == 0 {
		return filter.StatusNoOp
	}

	var p params
	if err := toml.Unmarshal([]byte(config), &p); err != nil {
		pixfilter.Logger().Debug("mirror: bad config", "error", err)
		return filter.StatusInvalidConfig
	}

	total, ok := filter.BufferLen(width, height)
	if !ok || len(pix) != total {
		return filter.StatusNoOp
	}
	if width == 0 || height == 0 {
		return filter.StatusNoOp
	}
	if !p.Horizontal && !p.Vertical {
		return filter.StatusNoOp
	}

	if p.Horizontal {
		flipTopBottom(int(width), int(height), pix)
	}
	if p.Vertical {
		mirrorLeftRight(int(width), int(height), pix)
	}
	return filter.StatusOK
}

// flipTopBottom swaps row y with row height-1-y, byte-for-byte.
func flipTopBottom(width, height int, buf []byte) {
	rowBytes := width * 4
	tmp := make([]byte, rowBytes)

	for y := 0; y < height/2; y++ {
		top := buf[y*rowBytes : (y+1)*rowBytes]
		bottom := buf[(height-1-y)*rowBytes : (height-y)*rowBytes]

		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// mirrorLeftRight swaps pixel x with pixel width-1-x in each row,
// channel-by-channel.
func mirrorLeftRight(width, height int, buf []byte) {
	rowBytes := width * 4

	for y := 0; y < height; y++ {
		row := y * rowBytes
		for x := 0; x < width/2; x++ {
			l := row + x*4
			r := row + (width-1-x)*4
			for c := 0; c < 4; c++ {
				buf[l+c], buf[r+c] = buf[r+c], buf[l+c]
			}
		}
	}
}
