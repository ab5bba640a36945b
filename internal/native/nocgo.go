// SPDX-License-Identifier: EPL-2.0

//go:build !cgo

package native

// stub stands in for libao when the module is built without cgo. Every
// call behaves as a failed native call, so binaries compile everywhere and
// fail cleanly at runtime instead of at link time.
type stub struct{}

// Lib returns the process backend.
func Lib() Backend {
	return stub{}
}

func (stub) Initialize() {}

func (stub) Shutdown() {}

func (stub) DefaultDriverID() int { return -1 }

func (stub) DriverID(shortName string) int { return -1 }

func (stub) AppendOption(list OptionList, key, value string) OptionList {
	return list
}

func (stub) FreeOptions(list OptionList) {}

func (stub) OpenLive(driverID int, format Format, options OptionList) Device {
	return 0
}

func (stub) CloseDevice(dev Device) int { return 0 }

func (stub) Play(dev Device, samples []byte) {}

func (stub) LastError() int { return EFAIL }
