// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrOddBuffer = errors.New("buffer size must be a multiple of the sample size")
)
