package native

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/filter"
)

// EntryPoint is the symbol every filter module must export.
const EntryPoint = "process_image"

// Ensure Module satisfies the filter contract.
var _ filter.Filter = (*Module)(nil)

// Module is a loaded filter module: the live binding between a library
// image and its resolved entry point. The resolved address is only valid
// while the library stays loaded, so both are held together and released
// through the single Close point.
type Module struct {
	path   string
	handle uintptr
	proc   uintptr
}

// LibraryFilename returns the platform-qualified file name for a logical
// module name: <name>.dll on Windows, lib<name>.dylib on macOS and
// lib<name>.so elsewhere.
func LibraryFilename(name string) string {
	switch runtime.GOOS {
	case "windows":
		return name + ".dll"
	case "darwin":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// Load opens the module at path and resolves the process_image entry
// point. It fails with ErrModuleNotFound if the path does not exist,
// ErrSymbolNotFound if the entry point is absent (the library is closed
// again before returning), and ErrLoadFailed for any other loader error.
func Load(path string) (*Module, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	proc, err := loadSymbol(handle, EntryPoint)
	if err != nil {
		_ = closeLibrary(handle)
		return nil, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, path, err)
	}

	pixfilter.Logger().Info("native: module loaded", "path", path)

	return &Module{path: path, handle: handle, proc: proc}, nil
}

// Name returns the module's file name without extension or lib prefix.
func (m *Module) Name() string {
	name := filepath.Base(m.path)
	name = name[:len(name)-len(filepath.Ext(name))]
	if runtime.GOOS != "windows" && len(name) > 3 && name[:3] == "lib" {
		name = name[3:]
	}
	return name
}

// Process invokes the module's entry point on pix.
//
// Host-side contract checks (size overflow, exact width*height*4 length,
// empty buffer) degrade to StatusNoOp without crossing the boundary. The
// remaining call is the one place where the type system's guarantees are
// suspended: the module receives the buffer base pointer and a
// NUL-terminated copy of config (a null pointer when config is empty),
// and is trusted to stay within bounds and to not retain either pointer
// past return.
func (m *Module) Process(width, height uint32, pix []byte, config string) filter.Status {
	if m.proc == 0 {
		pixfilter.Logger().Warn("native: process called on closed module", "path", m.path)
		return filter.StatusNoOp
	}

	total, ok := filter.BufferLen(width, height)
	if !ok || len(pix) != total || total == 0 {
		return filter.StatusNoOp
	}

	var cfg []byte
	var cfgPtr *byte
	if config != "" {
		cfg = make([]byte, len(config)+1)
		copy(cfg, config)
		cfgPtr = &cfg[0]
	}

	r1, _, _ := purego.SyscallN(m.proc,
		uintptr(width),
		uintptr(height),
		uintptr(unsafe.Pointer(&pix[0])),
		uintptr(unsafe.Pointer(cfgPtr)),
	)
	runtime.KeepAlive(pix)
	runtime.KeepAlive(cfg)

	return filter.Status(uint32(r1))
}

// Close unloads the module. The entry point must not be invoked
// afterwards. Close is idempotent.
func (m *Module) Close() error {
	if m.handle == 0 {
		return nil
	}
	err := closeLibrary(m.handle)
	m.handle = 0
	m.proc = 0
	if err != nil {
		return fmt.Errorf("native: unload %s: %w", m.path, err)
	}

	pixfilter.Logger().Debug("native: module unloaded", "path", m.path)
	return nil
}
