// SPDX-License-Identifier: EPL-2.0

// Package native is the boundary to the libao C library.
//
// It exposes the raw call set as the Backend interface so the ao package
// can be exercised against a fake in tests. The real implementation is
// selected by build tags: with cgo enabled Lib returns a thin wrapper
// around <ao/ao.h>; without cgo it returns a stub whose calls all behave
// as failed native calls.
//
// Nothing in this package performs lifetime or null-pointer bookkeeping.
// That discipline lives in the ao package; this one only moves arguments
// across the C boundary.
package native
