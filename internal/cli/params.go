package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Params file errors.
var (
	// ErrParamsNotUTF8 is returned when the params file is not valid UTF-8.
	ErrParamsNotUTF8 = errors.New("cli: params file is not valid UTF-8")

	// ErrParamsHasNUL is returned when the params text contains a NUL
	// byte, which cannot cross the C-string boundary.
	ErrParamsHasNUL = errors.New("cli: params file contains a NUL byte")
)

// readParams reads the params file as UTF-8 text. A UTF-8 BOM is
// stripped and UTF-16 files with a BOM are converted; anything else must
// already be valid UTF-8.
func readParams(path string) (string, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("cli: read params: %w", err)
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParamsNotUTF8, err)
	}
	if !utf8.Valid(data) {
		return "", ErrParamsNotUTF8
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", ErrParamsHasNUL
	}

	return string(data), nil
}
