// Package filter defines the transform contract shared by compiled-in
// filters and dynamically loaded native modules, plus the registry that
// resolves compiled-in filters by name.
//
// # Contract
//
// A filter is a single entry point that mutates an RGBA8 pixel buffer in
// place: (width, height, buffer, config) -> status. Obligations on every
// implementer:
//
//   - An empty or nil buffer means do nothing and return StatusNoOp.
//   - Compute total = width*height*4 with overflow-checked arithmetic;
//     on overflow, do nothing and return StatusNoOp.
//   - A buffer whose length differs from total is a contract violation;
//     degrade to StatusNoOp, never read or write out of bounds.
//   - An empty config selects all defaults rather than failing.
//   - Never retain the buffer or config past return.
//   - Be reentrant-safe; the host never calls a filter concurrently on
//     the same buffer, so no internal synchronization is required.
//
// # Status compatibility
//
// Earlier plugin generations disagreed on the return convention: the blur
// module returned nothing meaningful and the mirror module returned an
// unsigned status with 0 = success, nonzero = failure. This package
// standardizes a single domain (StatusOK, StatusInvalidConfig,
// StatusNoOp) whose zero value matches the old "0 = success", so legacy
// modules that returned 0 still read as StatusOK. Values returned by
// legacy void-returning modules are unspecified.
package filter
