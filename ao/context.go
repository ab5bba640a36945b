// SPDX-License-Identifier: EPL-2.0

package ao

import (
	"github.com/ik5/goao/internal/native"
)

// Ao is the live libao subsystem. Create exactly one per process, on the
// main thread, and keep it alive while any Driver or Device obtained from
// it is in use. Every other operation in this package is a method on Ao,
// so holding one is the capability to talk to libao at all.
type Ao struct {
	b      native.Backend
	closed bool
}

// New initializes libao and returns the subsystem context. The native
// initialize call cannot fail.
func New() *Ao {
	return newWith(native.Lib())
}

// newWith lets tests substitute a fake backend.
func newWith(b native.Backend) *Ao {
	b.Initialize()
	return &Ao{b: b}
}

// Reload shuts libao down and initializes it again, back to back. Useful
// after the host's audio configuration changed.
//
// Any Driver or Device obtained before Reload is stale afterwards and must
// not be used. libao provides no way to detect such use; see the package
// documentation.
func (a *Ao) Reload() {
	a.b.Shutdown()
	a.b.Initialize()
}

// Close shuts libao down. All devices opened through this context must be
// closed first, since the native close depends on a live subsystem.
// Calling Close more than once is a no-op; the native shutdown runs
// exactly once.
func (a *Ao) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.b.Shutdown()
	return nil
}
