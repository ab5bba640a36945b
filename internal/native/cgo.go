// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package native

/*
#cgo pkg-config: ao
#include <stdlib.h>
#include <ao/ao.h>
*/
import "C"

import (
	"syscall"
	"unsafe"
)

// lib is the real libao backend. The library is single-threaded by
// contract, so the captured errno below is a plain variable.
type lib struct{}

// Lib returns the process backend.
func Lib() Backend {
	return lib{}
}

// libao reports failures through the C errno. cgo calls may migrate OS
// threads between calls, so errno is captured in the same call that failed
// rather than read back later.
var lastErr int

func (lib) Initialize() {
	C.ao_initialize()
}

func (lib) Shutdown() {
	C.ao_shutdown()
}

func (lib) DefaultDriverID() int {
	id, err := C.ao_default_driver_id()
	if id < 0 {
		capture(err)
	}
	return int(id)
}

func (lib) DriverID(shortName string) int {
	cs := C.CString(shortName)
	defer C.free(unsafe.Pointer(cs))

	id, err := C.ao_driver_id(cs)
	if id < 0 {
		capture(err)
	}
	return int(id)
}

func (lib) AppendOption(list OptionList, key, value string) OptionList {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	cv := C.CString(value)
	defer C.free(unsafe.Pointer(cv))

	head := (*C.ao_option)(unsafe.Pointer(list))
	// libao copies key and value into the list; the C strings freed above
	// do not need to outlive this call.
	C.ao_append_option(&head, ck, cv)
	return OptionList(unsafe.Pointer(head))
}

func (lib) FreeOptions(list OptionList) {
	if list == 0 {
		return
	}
	C.ao_free_options((*C.ao_option)(unsafe.Pointer(list)))
}

func (lib) OpenLive(driverID int, format Format, options OptionList) Device {
	cf := C.ao_sample_format{
		bits:        C.int(format.Bits),
		rate:        C.int(format.Rate),
		channels:    C.int(format.Channels),
		byte_format: C.int(format.ByteFormat),
		// The channel matrix is always NULL; see ao.Format.
		matrix: nil,
	}

	dev, err := C.ao_open_live(C.int(driverID), &cf,
		(*C.ao_option)(unsafe.Pointer(options)))
	if dev == nil {
		capture(err)
		return 0
	}
	return Device(unsafe.Pointer(dev))
}

func (lib) CloseDevice(dev Device) int {
	return int(C.ao_close((*C.ao_device)(unsafe.Pointer(dev))))
}

func (lib) Play(dev Device, samples []byte) {
	if len(samples) == 0 {
		return
	}
	C.ao_play((*C.ao_device)(unsafe.Pointer(dev)),
		(*C.char)(unsafe.Pointer(&samples[0])), C.uint_32(len(samples)))
}

func (lib) LastError() int {
	return lastErr
}

func capture(err error) {
	if e, ok := err.(syscall.Errno); ok {
		lastErr = int(e)
		return
	}
	lastErr = EFAIL
}
