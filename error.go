// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

import "strconv"

// ArityError is the panic value raised when a [Tuple] converter is shown a
// value whose length differs from the number of converters it was built with.
// It implements error so recovering callers can match it with errors.As.
type ArityError struct {
	Got  int
	Want int
}

func (e *ArityError) Error() string {
	return "show: tuple arity mismatch: got " + strconv.Itoa(e.Got) +
		" elements, want " + strconv.Itoa(e.Want)
}
