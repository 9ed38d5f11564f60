// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show_test

import (
	"math"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/show"
)

func TestString(t *testing.T) {
	assert.Equal(t, `"Alice"`, show.String.Show("Alice"))
	assert.Equal(t, `""`, show.String.Show(""))
	assert.Equal(t, `"a\nb\"c"`, show.String.Show("a\nb\"c"))
}

func TestBool(t *testing.T) {
	assert.Equal(t, "true", show.Bool.Show(true))
	assert.Equal(t, "false", show.Bool.Show(false))
}

func TestInt(t *testing.T) {
	assert.Equal(t, "30", show.Int[int]().Show(30))
	assert.Equal(t, "-128", show.Int[int8]().Show(math.MinInt8))
	assert.Equal(t, "9223372036854775807", show.Int[int64]().Show(math.MaxInt64))
	assert.Equal(t, "1500000000", show.Int[time.Duration]().Show(1500*time.Millisecond))
}

func TestUint(t *testing.T) {
	assert.Equal(t, "0", show.Uint[uint]().Show(0))
	assert.Equal(t, "18446744073709551615", show.Uint[uint64]().Show(math.MaxUint64))
	assert.Equal(t, "255", show.Uint[byte]().Show(255))
}

func TestFloat(t *testing.T) {
	f64 := show.Float[float64]()
	assert.Equal(t, "30", f64.Show(30))
	assert.Equal(t, "0.1", f64.Show(0.1))
	assert.Equal(t, "-2.5", f64.Show(-2.5))
	assert.Equal(t, "+Inf", f64.Show(math.Inf(1)))
	assert.Equal(t, "NaN", f64.Show(math.NaN()))
	assert.Equal(t, "1e+21", f64.Show(1e21))

	// float32 values use their own precision.
	assert.Equal(t, "0.1", show.Float[float32]().Show(0.1))
}

func TestFloatNamedTypes(t *testing.T) {
	// A named float32 must still format at 32-bit precision.
	type celsius float32
	type meters float64
	assert.Equal(t, "36.6", show.Float[celsius]().Show(36.6))
	assert.Equal(t, "0.1", show.Float[meters]().Show(0.1))
}

func TestStringer(t *testing.T) {
	s := show.Stringer[time.Duration]()
	assert.Equal(t, "1.5s", s.Show(1500*time.Millisecond))
}

func TestSprint(t *testing.T) {
	s := show.Sprint[[]int]()
	assert.Equal(t, "[1 2 3]", s.Show([]int{1, 2, 3}))
}

func TestDumpScalar(t *testing.T) {
	assert.Equal(t, "42", show.Dump[int]().Show(42))
	assert.Equal(t, "true", show.Dump[bool]().Show(true))
}

func TestDumpStruct(t *testing.T) {
	type point struct {
		x, y int
	}
	assert.Equal(t, "{1 2}", show.Dump[point]().Show(point{x: 1, y: 2}))
}

func TestDumpSortsMapKeys(t *testing.T) {
	s := show.Dump[map[string]int]()
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	first := s.Show(m)
	assert.Equal(t, "map[a:1 b:2 c:3]", first)
	for range 20 {
		assert.Equal(t, first, s.Show(m))
	}
}

func TestDumpAsField(t *testing.T) {
	type event struct {
		Tags map[string]int
	}
	s := show.Struct(show.FieldOf("tags", func(e event) map[string]int { return e.Tags }, show.Dump[map[string]int]()))
	assert.Equal(t, "{ tags: map[x:1 y:2] }", s.Show(event{Tags: map[string]int{"y": 2, "x": 1}}))
}

func TestDumpWith(t *testing.T) {
	cfg := &spew.ConfigState{SortKeys: true, DisablePointerAddresses: true}
	s := show.DumpWith[[]string](cfg)
	assert.Equal(t, "[a b]", s.Show([]string{"a", "b"}))
	assert.PanicsWithValue(t, "show: nil spew.ConfigState passed to DumpWith", func() {
		show.DumpWith[int](nil)
	})
}
