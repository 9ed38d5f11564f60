// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Leaf converters for primitive types.

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of floating-point types.
type Floating interface {
	~float32 | ~float64
}

// String renders a string as a double-quoted Go literal.
var String Show[string] = Func[string](strconv.Quote)

// Bool renders "true" or "false".
var Bool Show[bool] = Func[bool](strconv.FormatBool)

// Int renders a signed integer in base 10.
func Int[T Signed]() Show[T] {
	return Func[T](func(n T) string { return strconv.FormatInt(int64(n), 10) })
}

// Uint renders an unsigned integer in base 10.
func Uint[T Unsigned]() Show[T] {
	return Func[T](func(n T) string { return strconv.FormatUint(uint64(n), 10) })
}

// Float renders a float with the fewest digits that identify it exactly
// at its own precision: 30 → "30", 0.1 → "0.1", +Inf → "+Inf".
func Float[T Floating]() Show[T] {
	bits := reflect.TypeFor[T]().Bits()
	return Func[T](func(f T) string { return strconv.FormatFloat(float64(f), 'g', -1, bits) })
}

// Stringer renders values through their String method.
func Stringer[A fmt.Stringer]() Show[A] {
	return Func[A](func(a A) string { return a.String() })
}

// Sprint renders values with fmt.Sprint.
func Sprint[A any]() Show[A] {
	return Func[A](func(a A) string { return fmt.Sprint(a) })
}

// dumpConfig keeps Dump output deterministic: no pointer addresses,
// no capacities, sorted map keys.
var dumpConfig = &spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump renders arbitrary values on a single line by walking them deeply,
// following pointers and printing nested structs, slices and maps.
// Cyclic data is printed up to the first repeated pointer.
func Dump[A any]() Show[A] {
	return DumpWith[A](dumpConfig)
}

// DumpWith is like [Dump] with a caller-owned spew configuration.
// cfg must not be modified after DumpWith returns.
func DumpWith[A any](cfg *spew.ConfigState) Show[A] {
	if cfg == nil {
		panic("show: nil spew.ConfigState passed to DumpWith")
	}
	return Func[A](func(a A) string { return cfg.Sprint(a) })
}
