// SPDX-License-Identifier: EPL-2.0

package ao

import (
	"math"

	"github.com/ik5/goao/internal/native"
)

// Device is an opened live audio output endpoint. It exclusively owns its
// native handle: the handle is non-null from a successful OpenLive until
// Close, and the native close runs exactly once.
type Device struct {
	b native.Backend
	h native.Device
}

// OpenLive opens a playback device against the given driver and PCM
// format. settings may be nil when the driver needs no options; an empty
// Options behaves the same and crosses the boundary as a null list.
//
// On failure the returned error is the Errno libao reported, typically
// ErrOpenDevice or ErrBadFormat, and there is nothing for the caller to
// clean up: no device handle exists and the transient native option list
// has already been freed.
func (a *Ao) OpenLive(driver Driver, format Format, settings *Options) (*Device, error) {
	var list native.OptionList
	if settings.Len() > 0 {
		for _, p := range settings.pairs {
			list = a.b.AppendOption(list, p.Key, p.Value)
		}
		// The open call borrows the list read-only; it is freed exactly
		// once whether the open succeeds or fails.
		defer a.b.FreeOptions(list)
	}

	h := a.b.OpenLive(driver.ID(), format.toNative(), list)
	if h == 0 {
		return nil, lastError(a.b)
	}
	return &Device{b: a.b, h: h}, nil
}

// Play writes interleaved PCM bytes laid out per the open Format. The call
// blocks until the native driver has queued or written the data. An empty
// buffer is a no-op.
//
// Buffers longer than the native 32-bit length domain panic rather than
// silently truncate, as does playing a closed device; both are caller
// bugs.
func (d *Device) Play(buf []byte) {
	if d.h == 0 {
		panic("ao: Play on a closed device")
	}
	if uint64(len(buf)) > math.MaxUint32 {
		panic("ao: Play buffer exceeds the native 32-bit length")
	}
	d.b.Play(d.h, buf)
}

// Close releases the native device. The first call closes the handle; any
// further call is a no-op, so the native close never runs on a null or
// already-closed handle. The native status code carries no useful
// information and is discarded.
//
// Close must run before the owning Ao is closed or reloaded.
func (d *Device) Close() error {
	if d.h == 0 {
		return nil
	}
	d.b.CloseDevice(d.h)
	d.h = 0
	return nil
}
