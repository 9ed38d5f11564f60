// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

import (
	"slices"
	"strconv"
)

// Field is one entry of a record converter: a field name bound to the
// accessor and converter for that field of A.
// Build fields with [FieldOf]; the zero Field is not usable.
type Field[A any] struct {
	Name string
	show func(A) string
}

// FieldOf binds name to the field of A selected by get, rendered with s.
// The field type F is erased once the Field is built, so fields of
// different types can be listed together in [Struct].
func FieldOf[A, F any](name string, get func(A) F, s Show[F]) Field[A] {
	mustShow(s, "FieldOf")
	if get == nil {
		panic("show: nil accessor passed to FieldOf for field " + name)
	}
	return Field[A]{
		Name: name,
		show: func(a A) string { return s.Show(get(a)) },
	}
}

// Struct derives a converter for the record type A from one [Field] per
// record field.
//
// Fields are rendered in argument order, each as " name: value," after an
// opening brace. When at least one field was written the trailing comma
// becomes a single space, then the closing brace is appended:
//
//	Struct[T]()                     → {}
//	Struct(FieldOf("k", ...))       → { k: v }
//	Struct(FieldOf("a", ...), ...)  → { a: 1, b: 2 }
//
// Struct never recurses by itself; nested records and tuples come from
// field converters that are themselves built by Struct or a tuple combinator.
// The field list is copied, so the caller may reuse its slice.
func Struct[A any](fields ...Field[A]) Show[A] {
	for i, f := range fields {
		if f.show == nil {
			panic("show: Struct field " + strconv.Itoa(i) + " was not built with FieldOf")
		}
	}
	fields = slices.Clone(fields)
	return Func[A](func(a A) string {
		b := acquireBuffer()
		b.WriteByte('{')
		for _, f := range fields {
			b.WriteByte(' ')
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.show(a))
			b.WriteByte(',')
		}
		if b.Len() > 1 {
			b.Truncate(b.Len() - 1)
			b.WriteByte(' ')
		}
		b.WriteByte('}')
		s := b.String()
		releaseBuffer(b)
		return s
	})
}

// Record derives a converter for string-keyed maps with the same brace
// layout as [Struct]. Keys are quoted and visited in ascending order.
func Record[V any](s Show[V]) Show[map[string]V] {
	mustShow(s, "Record")
	return Func[map[string]V](func(m map[string]V) string {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		b := acquireBuffer()
		b.WriteByte('{')
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			b.WriteString(s.Show(m[k]))
			b.WriteByte(',')
		}
		if b.Len() > 1 {
			b.Truncate(b.Len() - 1)
			b.WriteByte(' ')
		}
		b.WriteByte('}')
		out := b.String()
		releaseBuffer(b)
		return out
	})
}
