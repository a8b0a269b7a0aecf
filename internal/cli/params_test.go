package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParams(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReadParamsPlain(t *testing.T) {
	path := writeParams(t, []byte("radius=5 iterations=2"))

	got, err := readParams(path)

	require.NoError(t, err)
	assert.Equal(t, "radius=5 iterations=2", got)
}

func TestReadParamsStripsUTF8BOM(t *testing.T) {
	path := writeParams(t, []byte("\xef\xbb\xbfradius=5"))

	got, err := readParams(path)

	require.NoError(t, err)
	assert.Equal(t, "radius=5", got)
}

func TestReadParamsConvertsUTF16(t *testing.T) {
	// "hi" as UTF-16LE with BOM.
	path := writeParams(t, []byte{0xff, 0xfe, 'h', 0x00, 'i', 0x00})

	got, err := readParams(path)

	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestReadParamsRejectsInvalidUTF8(t *testing.T) {
	path := writeParams(t, []byte{'r', 0xff, 0xfe, 0xfd, 'x'})

	_, err := readParams(path)

	assert.ErrorIs(t, err, ErrParamsNotUTF8)
}

func TestReadParamsRejectsNUL(t *testing.T) {
	path := writeParams(t, []byte("radius=5\x00iterations=2"))

	_, err := readParams(path)

	assert.ErrorIs(t, err, ErrParamsHasNUL)
}

func TestReadParamsMissingFile(t *testing.T) {
	_, err := readParams(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
