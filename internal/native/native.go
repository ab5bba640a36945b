// SPDX-License-Identifier: EPL-2.0

package native

// Device is an opaque handle to a native ao_device. The zero value is the
// null device.
type Device uintptr

// OptionList is an opaque handle to the head of a native ao_option linked
// list. The zero value is the empty list.
type OptionList uintptr

// Format mirrors ao_sample_format. Matrix is carried for completeness but
// is never populated by callers; the channel matrix is always passed to
// libao as NULL.
type Format struct {
	Bits       int32
	Rate       int32
	Channels   int32
	ByteFormat int32
	Matrix     string
}

// Option is one key/value configuration pair destined for an option list.
type Option struct {
	Key   string
	Value string
}

// Byte-format values from ao/ao.h.
const (
	FormatLittle int32 = 1
	FormatBig    int32 = 2
	FormatNative int32 = 4
)

// Error codes from ao/ao.h, reported through the library's global errno.
const (
	ENODRIVER   = 1
	ENOTFILE    = 2
	ENOTLIVE    = 3
	EBADOPTION  = 4
	EOPENDEVICE = 5
	EOPENFILE   = 6
	EFILEEXISTS = 7
	EBADFORMAT  = 8
	EFAIL       = 100
)

// Backend is the libao call set. One method per native call; integer and
// pointer results are returned verbatim so the caller owns the
// null/negative checks.
//
// None of these calls are reentrant or thread-safe. Initialize must run on
// the main thread, and at most one initialized backend may exist per
// process.
type Backend interface {
	// Initialize maps to ao_initialize.
	Initialize()
	// Shutdown maps to ao_shutdown.
	Shutdown()
	// DefaultDriverID maps to ao_default_driver_id. Negative means no
	// usable driver.
	DefaultDriverID() int
	// DriverID maps to ao_driver_id. Negative means no match. shortName
	// must not contain interior NUL bytes.
	DriverID(shortName string) int
	// AppendOption maps to ao_append_option and returns the new list
	// head. libao copies key and value internally. Neither may contain
	// interior NUL bytes.
	AppendOption(list OptionList, key, value string) OptionList
	// FreeOptions maps to ao_free_options, deep-freeing every node.
	FreeOptions(list OptionList)
	// OpenLive maps to ao_open_live. The zero Device means the open
	// failed; consult LastError.
	OpenLive(driverID int, format Format, options OptionList) Device
	// CloseDevice maps to ao_close and returns its status code.
	CloseDevice(dev Device) int
	// Play maps to ao_play. Blocks until the data is queued or written
	// according to the driver. len(samples) must fit in uint32.
	Play(dev Device, samples []byte)
	// LastError reads the library's global error code, meaningful only
	// immediately after a failing call.
	LastError() int
}
