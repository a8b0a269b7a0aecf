package native

import "errors"

// Loader errors.
var (
	// ErrModuleNotFound is returned when the module path does not exist.
	ErrModuleNotFound = errors.New("native: module not found")

	// ErrSymbolNotFound is returned when the loaded library does not
	// export the process_image entry point.
	ErrSymbolNotFound = errors.New("native: process_image symbol not found")

	// ErrLoadFailed is returned for any other platform loader failure.
	ErrLoadFailed = errors.New("native: module load failed")
)
