// SPDX-License-Identifier: EPL-2.0

package ao

// Driver identifies an audio backend recognized by libao. It is a plain
// identifier, not a resource: there is nothing to release, and copies are
// fine. It stays valid until the context that produced it is reloaded or
// closed.
type Driver struct {
	id int
}

// DefaultDriver resolves the system default live output driver. It fails
// with ErrNoDriver when libao has no usable driver.
func (a *Ao) DefaultDriver() (Driver, error) {
	id := a.b.DefaultDriverID()
	if id < 0 {
		return Driver{}, lastError(a.b)
	}
	return Driver{id: id}, nil
}

// DriverByName resolves a driver by its libao short name, such as "alsa",
// "pulse", or "null". It fails with ErrNoDriver when no driver matches.
//
// shortName must not contain interior NUL bytes; violating that panics.
// The empty string is a legal (if unmatchable) name.
func (a *Ao) DriverByName(shortName string) (Driver, error) {
	mustNoInteriorNUL("driver name", shortName)

	id := a.b.DriverID(shortName)
	if id < 0 {
		return Driver{}, lastError(a.b)
	}
	return Driver{id: id}, nil
}

// ID returns the native driver identifier, always non-negative.
func (d Driver) ID() int {
	return d.id
}
