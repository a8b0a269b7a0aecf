package filter

import "math"

// Status is the result of one filter invocation.
//
// The numeric values are part of the plugin ABI: StatusOK must be 0 so
// that legacy modules returning "0 = success" remain readable.
type Status uint32

const (
	// StatusOK means the buffer was transformed.
	StatusOK Status = 0

	// StatusInvalidConfig means the configuration blob could not be
	// parsed and the buffer was left untouched.
	StatusInvalidConfig Status = 1

	// StatusNoOp means the call completed without touching the buffer:
	// zero dimensions, a zero-effect configuration, or a contract
	// violation (nil buffer, length mismatch, size overflow).
	StatusNoOp Status = 2
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidConfig:
		return "invalid config"
	case StatusNoOp:
		return "no-op"
	default:
		return "unknown"
	}
}

// Filter is a transform that mutates an RGBA8 pixel buffer in place.
//
// Implementations must honor the contract documented in the package
// comment. Both compiled-in filters and native modules loaded at runtime
// satisfy this interface, so callers resolve a Filter and do not care
// which strategy produced it.
type Filter interface {
	// Name returns the filter identifier (e.g. "blur", "mirror").
	Name() string

	// Process transforms pix in place. pix must hold exactly
	// width*height*4 bytes; any mismatch degrades to StatusNoOp.
	// config parameterizes the transform; its format is owned by the
	// filter, and an empty string selects all defaults.
	Process(width, height uint32, pix []byte, config string) Status
}

// BufferLen computes width*height*4 with overflow checking.
// ok is false when the product does not fit in int.
func BufferLen(width, height uint32) (n int, ok bool) {
	total := uint64(width) * uint64(height)
	if total > math.MaxUint64/4 {
		return 0, false
	}
	total *= 4
	if total > uint64(math.MaxInt) {
		return 0, false
	}
	return int(total), true
}
