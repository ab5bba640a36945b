// SPDX-License-Identifier: EPL-2.0

package ao

import (
	"github.com/ik5/goao/internal/native"
)

// Options accumulates backend-specific key/value pairs consumed at
// device-open time, such as {"id", "1"} for alsa or {"server", "..."} for
// pulse.
//
// Pairs are held in ordinary Go memory; the native option list is built
// inside OpenLive and freed there on every path, so an Options needs no
// Close and cannot double-free. The zero value is an empty, usable list.
type Options struct {
	pairs []native.Option
}

// Append adds one key/value pair. libao copies both strings when the list
// crosses the boundary, so the arguments need not outlive the call.
//
// Neither key nor value may contain interior NUL bytes; violating that
// panics.
func (o *Options) Append(key, value string) {
	mustNoInteriorNUL("option key", key)
	mustNoInteriorNUL("option value", value)

	o.pairs = append(o.pairs, native.Option{Key: key, Value: value})
}

// Len reports how many pairs have been appended. A nil *Options counts as
// empty.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.pairs)
}
