// Package native loads filter modules from shared libraries at runtime.
//
// A module is any library exporting the C-ABI entry point
//
//	uint32_t process_image(uint32_t width, uint32_t height,
//	                       uint8_t *pixels, const char *config);
//
// Load opens the library, resolves the symbol and binds both together as
// one unit with a single release point (Close), so the resolved address
// can never outlive the library image. File existence and symbol presence
// are validated before any unsafe call is possible, narrowing the window
// of unchecked trust to the invocation itself.
//
// # Precondition
//
// The host cannot verify that the exported symbol actually matches the
// expected signature. Calling a module built against a different contract
// is undefined behavior at the platform level; the caller must only load
// modules built against this exact ABI. Module.Process is the single
// unsafe call site in the repository.
package native
