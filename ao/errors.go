// SPDX-License-Identifier: EPL-2.0

package ao

import (
	"fmt"
	"strings"

	"github.com/ik5/goao/internal/native"
)

// Errno is a libao error code carried as a typed error. Values compare
// with errors.Is against the exported sentinels.
type Errno int

const (
	// ErrNoDriver means no usable audio driver matched the request.
	ErrNoDriver Errno = native.ENODRIVER
	// ErrNotFile means the driver is not a file output driver.
	ErrNotFile Errno = native.ENOTFILE
	// ErrNotLive means the driver is not a live output driver.
	ErrNotLive Errno = native.ENOTLIVE
	// ErrBadOption means an option key or value was rejected.
	ErrBadOption Errno = native.EBADOPTION
	// ErrOpenDevice means the device could not be opened (busy driver,
	// rejected format, allocation or descriptor limits).
	ErrOpenDevice Errno = native.EOPENDEVICE
	// ErrOpenFile means the output file could not be opened.
	ErrOpenFile Errno = native.EOPENFILE
	// ErrFileExists means the output file already exists.
	ErrFileExists Errno = native.EFILEEXISTS
	// ErrBadFormat means the sample format was rejected.
	ErrBadFormat Errno = native.EBADFORMAT
	// ErrFail is libao's catch-all failure.
	ErrFail Errno = native.EFAIL
)

func (e Errno) Error() string {
	switch e {
	case ErrNoDriver:
		return "ao: no driver found"
	case ErrNotFile:
		return "ao: driver is not a file output driver"
	case ErrNotLive:
		return "ao: driver is not a live output driver"
	case ErrBadOption:
		return "ao: invalid option"
	case ErrOpenDevice:
		return "ao: cannot open device"
	case ErrOpenFile:
		return "ao: cannot open file"
	case ErrFileExists:
		return "ao: file already exists"
	case ErrBadFormat:
		return "ao: invalid sample format"
	case ErrFail:
		return "ao: unspecified failure"
	}
	return fmt.Sprintf("ao: error %d", int(e))
}

// lastError reads the native global error code, meaningful only
// immediately after a failing call.
func lastError(b native.Backend) error {
	return Errno(b.LastError())
}

// mustNoInteriorNUL panics when s contains an interior NUL byte. Such a
// value cannot cross the C string boundary; passing one is a caller bug,
// not a runtime condition. The empty string is fine.
func mustNoInteriorNUL(what, s string) {
	if strings.IndexByte(s, 0) >= 0 {
		panic("ao: " + what + " contains an interior NUL byte")
	}
}
