// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Thd C
}

// Quad is a 4-tuple.
type Quad[A, B, C, D any] struct {
	Fst A
	Snd B
	Thd C
	Fth D
}

// Tuple0 returns the converter for the empty tuple. It always renders "[]".
func Tuple0() Show[struct{}] {
	return Func[struct{}](func(struct{}) string { return "[]" })
}

// Tuple2 derives a converter for [Pair] from one converter per position.
// Output is "[" + sa.Show(Fst) + ", " + sb.Show(Snd) + "]".
func Tuple2[A, B any](sa Show[A], sb Show[B]) Show[Pair[A, B]] {
	mustShow(sa, "Tuple2")
	mustShow(sb, "Tuple2")
	return Func[Pair[A, B]](func(t Pair[A, B]) string {
		return join(sa.Show(t.Fst), sb.Show(t.Snd))
	})
}

// Tuple3 derives a converter for [Triple] from one converter per position.
func Tuple3[A, B, C any](sa Show[A], sb Show[B], sc Show[C]) Show[Triple[A, B, C]] {
	mustShow(sa, "Tuple3")
	mustShow(sb, "Tuple3")
	mustShow(sc, "Tuple3")
	return Func[Triple[A, B, C]](func(t Triple[A, B, C]) string {
		return join(sa.Show(t.Fst), sb.Show(t.Snd), sc.Show(t.Thd))
	})
}

// Tuple4 derives a converter for [Quad] from one converter per position.
func Tuple4[A, B, C, D any](sa Show[A], sb Show[B], sc Show[C], sd Show[D]) Show[Quad[A, B, C, D]] {
	mustShow(sa, "Tuple4")
	mustShow(sb, "Tuple4")
	mustShow(sc, "Tuple4")
	mustShow(sd, "Tuple4")
	return Func[Quad[A, B, C, D]](func(t Quad[A, B, C, D]) string {
		return join(sa.Show(t.Fst), sb.Show(t.Snd), sc.Show(t.Thd), sd.Show(t.Fth))
	})
}

// Tuple derives a converter for type-erased tuples of any arity.
// Element i of the rendered value is shows[i].Show(t[i]).
//
// The arity is only known at render time: Show panics with an [*ArityError]
// when len(t) differs from len(shows). Prefer [Tuple2], [Tuple3] and [Tuple4],
// whose arity is checked by the compiler.
func Tuple(shows ...Show[any]) Show[[]any] {
	for _, s := range shows {
		mustShow(s, "Tuple")
	}
	shows = append([]Show[any](nil), shows...)
	return Func[[]any](func(t []any) string {
		if len(t) != len(shows) {
			panic(&ArityError{Got: len(t), Want: len(shows)})
		}
		b := acquireBuffer()
		b.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shows[i].Show(e))
		}
		b.WriteByte(']')
		out := b.String()
		releaseBuffer(b)
		return out
	})
}

// Slice derives a converter for homogeneous slices. Elements are rendered
// in index order with the tuple layout; a nil or empty slice renders "[]".
func Slice[A any](s Show[A]) Show[[]A] {
	mustShow(s, "Slice")
	return Func[[]A](func(xs []A) string {
		b := acquireBuffer()
		b.WriteByte('[')
		for i, x := range xs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.Show(x))
		}
		b.WriteByte(']')
		out := b.String()
		releaseBuffer(b)
		return out
	})
}

// join renders already-shown elements as "[e0, e1, ...]".
func join(elems ...string) string {
	b := acquireBuffer()
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e)
	}
	b.WriteByte(']')
	out := b.String()
	releaseBuffer(b)
	return out
}
