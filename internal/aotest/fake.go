// SPDX-License-Identifier: EPL-2.0

// Package aotest provides a resource-tracking fake of the native libao
// backend for tests. It counts every lifecycle call so tests can assert
// the exactly-once release discipline without real audio hardware.
package aotest

import (
	"github.com/ik5/goao/internal/native"
)

// Backend is a fake native.Backend. Scripted fields steer lookup and open
// results; counter fields record what the code under test did.
type Backend struct {
	// Scripted behavior.
	DefaultID int            // result of DefaultDriverID
	DriverIDs map[string]int // results of DriverID; missing names yield -1
	FailOpen  bool           // force OpenLive to return the null device
	Errno     int            // reported by LastError after a failure

	// Recorded calls.
	Log           []string // call names in order
	InitCalls     int
	ShutdownCalls int
	Appended      []native.Option
	FreeCalls     int
	FreedLists    map[native.OptionList]int // per-list free counts
	OpenDrivers   []int
	OpenFormats   []native.Format
	OpenOptions   []native.OptionList // list head passed to each OpenLive
	CloseCalls    int
	InvalidCloses int // closes of null or already-closed devices
	InvalidPlays  int // plays against null or closed devices
	Played        [][]byte

	live     map[native.Device]bool
	nextList uintptr
	nextDev  uintptr
}

// New returns a fake backend with one working default driver (id 0) and
// opens that succeed.
func New() *Backend {
	return &Backend{
		DriverIDs:  make(map[string]int),
		Errno:      native.EFAIL,
		FreedLists: make(map[native.OptionList]int),
		live:       make(map[native.Device]bool),
	}
}

// NewWithoutDriver returns a fake backend whose driver lookups all fail
// with ENODRIVER.
func NewWithoutDriver() *Backend {
	b := New()
	b.DefaultID = -1
	b.Errno = native.ENODRIVER
	return b
}

// NewFailingOpen returns a fake backend whose opens fail with the given
// error code.
func NewFailingOpen(errno int) *Backend {
	b := New()
	b.FailOpen = true
	b.Errno = errno
	return b
}

func (b *Backend) Initialize() {
	b.Log = append(b.Log, "initialize")
	b.InitCalls++
}

func (b *Backend) Shutdown() {
	b.Log = append(b.Log, "shutdown")
	b.ShutdownCalls++
}

func (b *Backend) DefaultDriverID() int { return b.DefaultID }

func (b *Backend) DriverID(shortName string) int {
	id, ok := b.DriverIDs[shortName]
	if !ok {
		return -1
	}
	return id
}

func (b *Backend) AppendOption(list native.OptionList, key, value string) native.OptionList {
	b.Log = append(b.Log, "append_option")
	if list == 0 {
		b.nextList++
		list = native.OptionList(b.nextList)
	}
	b.Appended = append(b.Appended, native.Option{Key: key, Value: value})
	return list
}

func (b *Backend) FreeOptions(list native.OptionList) {
	b.Log = append(b.Log, "free_options")
	b.FreeCalls++
	b.FreedLists[list]++
}

func (b *Backend) OpenLive(driverID int, format native.Format, options native.OptionList) native.Device {
	b.Log = append(b.Log, "open_live")
	b.OpenDrivers = append(b.OpenDrivers, driverID)
	b.OpenFormats = append(b.OpenFormats, format)
	b.OpenOptions = append(b.OpenOptions, options)

	if b.FailOpen {
		return 0
	}
	b.nextDev++
	dev := native.Device(b.nextDev)
	b.live[dev] = true
	return dev
}

func (b *Backend) CloseDevice(dev native.Device) int {
	b.Log = append(b.Log, "close_device")
	b.CloseCalls++
	if dev == 0 || !b.live[dev] {
		b.InvalidCloses++
		return 0
	}
	delete(b.live, dev)
	return 1
}

func (b *Backend) Play(dev native.Device, samples []byte) {
	if dev == 0 || !b.live[dev] {
		b.InvalidPlays++
		return
	}
	buf := make([]byte, len(samples))
	copy(buf, samples)
	b.Played = append(b.Played, buf)
}

func (b *Backend) LastError() int { return b.Errno }

// LiveDevices reports how many opened devices were never closed.
func (b *Backend) LiveDevices() int { return len(b.live) }
