// Package blur implements a distance-weighted spatial blur.
//
// Each destination pixel is the weighted mean of a square neighborhood
// clipped to the image bounds, with weight 1/(1+d) for Euclidean distance
// d. Nearer pixels dominate more strongly than in a uniform box filter
// but less steeply than under a Gaussian kernel; edge pixels use the
// clipped (asymmetric) window, biasing them toward interior neighbors.
package blur

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/filter"
)

// Defaults used when a parameter is absent or unparsable.
const (
	DefaultRadius     = 3
	DefaultIterations = 1
)

// init registers the blur filter on package import.
func init() {
	filter.Register("blur", func() filter.Filter { return New() })
}

// Blur is the weighted spatial blur filter.
type Blur struct{}

// New creates a new blur filter.
func New() *Blur { return &Blur{} }

// Name returns the filter identifier.
func (*Blur) Name() string { return "blur" }

// Process blurs pix in place.
//
// The configuration is free-form text scanned for "radius" and
// "iterations" values; anything unparsable falls back to the defaults
// (tolerant policy), so a malformed blob is never an error.
func (*Blur) Process(width, height uint32, pix []byte, config string) filter.Status {
	if len(pix) == 0 {
		return filter.StatusNoOp
	}

	total, ok := filter.BufferLen(width, height)
	if !ok || len(pix) != total {
		return filter.StatusNoOp
	}

	radius := scanUint(config, "radius", DefaultRadius)
	iterations := scanUint(config, "iterations", DefaultIterations)

	pixfilter.Logger().Debug("blur: parameters",
		"radius", radius, "iterations", iterations)

	if width == 0 || height == 0 || radius == 0 || iterations == 0 {
		return filter.StatusNoOp
	}

	blurInPlace(int(width), int(height), pix, int(radius), int(iterations))
	return filter.StatusOK
}

// scanUint locates key in s case-insensitively, skips forward past
// non-digit characters, consumes consecutive digits and parses them as an
// unsigned integer. Absence or parse failure yields def. The scan is
// intentionally tolerant of surrounding free-form text.
func scanUint(s, key string, def uint32) uint32 {
	lower := strings.ToLower(s)
	pos := strings.Index(lower, key)
	if pos < 0 {
		return def
	}

	tail := lower[pos+len(key):]
	i := 0
	for i < len(tail) && (tail[i] < '0' || tail[i] > '9') {
		i++
	}
	j := i
	for j < len(tail) && tail[j] >= '0' && tail[j] <= '9' {
		j++
	}
	if i == j {
		return def
	}

	v, err := strconv.ParseUint(tail[i:j], 10, 32)
	if err != nil {
		return def
	}
	return uint32(v)
}

// blurInPlace runs the per-iteration weighted pass. Each iteration writes
// a full destination pass into scratch and copies it back before the next
// iteration begins, so iterations compose sequentially and the buffer is
// never left half-updated.
func blurInPlace(width, height int, buf []byte, radius, iterations int) {
	rowBytes := width * 4
	tmp := make([]byte, rowBytes*height)

	for it := 0; it < iterations; it++ {
		for y := 0; y < height; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, height-1)

			for x := 0; x < width; x++ {
				x0 := max(x-radius, 0)
				x1 := min(x+radius, width-1)

				var acc [4]float32
				var wsum float32

				for ny := y0; ny <= y1; ny++ {
					for nx := x0; nx <= x1; nx++ {
						dx := float32(nx - x)
						dy := float32(ny - y)
						dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
						w := 1.0 / (1.0 + dist)

						idx := (ny*width + nx) * 4
						acc[0] += float32(buf[idx+0]) * w
						acc[1] += float32(buf[idx+1]) * w
						acc[2] += float32(buf[idx+2]) * w
						acc[3] += float32(buf[idx+3]) * w
						wsum += w
					}
				}

				var inv float32
				if wsum > 0 {
					inv = 1.0 / wsum
				}

				out := (y*width + x) * 4
				tmp[out+0] = clampByte(acc[0] * inv)
				tmp[out+1] = clampByte(acc[1] * inv)
				tmp[out+2] = clampByte(acc[2] * inv)
				tmp[out+3] = clampByte(acc[3] * inv)
			}
		}

		copy(buf, tmp)
	}
}

// clampByte rounds v to the nearest integer and clamps it to 0..255.
func clampByte(v float32) byte {
	r := math.Round(float64(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}
