// SPDX-License-Identifier: EPL-2.0

// Package ao binds the libao audio output library with ownership-tracked
// handles.
//
// libao exposes process-wide initialization, driver discovery, live device
// opening, and a blocking PCM write, all through opaque pointers and a
// global error code. This package wraps that surface so internal code
// never holds a possibly-null handle and every native resource is released
// exactly once.
//
// # Quick Start
//
//	ctx := ao.New()
//	defer ctx.Close()
//
//	driver, err := ctx.DefaultDriver()
//	if err != nil {
//	    // No usable output driver on this machine.
//	}
//
//	dev, err := ctx.OpenLive(driver, ao.DefaultFormat(), nil)
//	if err != nil {
//	    // Device busy, bad format, etc. Nothing to clean up.
//	}
//	defer dev.Close()
//
//	dev.Play(pcmBytes) // interleaved 16-bit little-endian PCM
//
// # Lifecycle Rules
//
// libao is single-instance and not reentrant. The rules below are the
// caller's responsibility; the types enforce their own release but cannot
// see each other:
//
//   - Create exactly one Ao per process, on the main thread.
//   - Close every Device before closing the Ao that opened it.
//   - Do not share an Ao, Device, or Options across goroutines without
//     external synchronization.
//
// # Reload Hazard
//
// (*Ao).Reload shuts libao down and initializes it again. libao gives no
// way to invalidate handles across that boundary: any Driver or Device
// obtained before Reload is stale afterwards, and using one is undefined
// behavior in the native layer. Nothing in this package can detect that
// misuse.
//
// # Errors
//
// Fallible operations return an Errno translated from libao's global error
// code at the moment of failure. Programming errors such as interior NUL
// bytes in strings or play buffers beyond the 32-bit length domain panic
// instead, since they indicate a caller bug rather than a runtime condition.
package ao
