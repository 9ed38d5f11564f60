// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package show provides converters from typed values to human-readable
// strings, and combinators that derive converters for composite shapes
// from converters for their parts.
//
// The core type [Show] is a single-method capability: given a value of type
// A, produce a string. Converters hold no state, are built once, and may be
// shared freely between goroutines.
//
// # Design Philosophy
//
// show provides:
//   - A minimal converter interface with a function adapter
//   - Structural combinators whose arity and field types are checked by the compiler
//   - Deterministic output: a fixed converter renders a fixed value to the same bytes
//
// Output is meant for people. It is not a serialization format: nothing is
// escaped beyond what leaf converters choose to do, and nothing can be
// parsed back.
//
// # Core
//
//   - [Show]: Converter interface
//   - [Func]: Adapt a func(A) string to [Show]
//   - [Contramap]: Derive Show[B] from Show[A] and a projection B → A
//
// # Leaf Converters
//
//   - [String]: Quoted string literal
//   - [Bool], [Int], [Uint], [Float]: Primitive formatting
//   - [Stringer]: Delegate to fmt.Stringer
//   - [Sprint]: fmt.Sprint fallback
//   - [Dump], [DumpWith]: Deep single-line dump through go-spew
//
// # Records
//
// Record fields are an ordered list, not a map, so the rendering order is
// the order in which fields are passed to [Struct]:
//
//   - [FieldOf]: Bind a field name, accessor and converter
//   - [Struct]: Render "{ name: value, ... }", or "{}" with no fields
//   - [Record]: Render a map[string]V with sorted, quoted keys
//
// # Tuples
//
// Fixed-arity tuples are product types with one converter per position:
//
//   - [Pair], [Triple], [Quad]: Tuple types
//   - [Tuple0], [Tuple2], [Tuple3], [Tuple4]: Render "[e0, e1, ...]"
//   - [Tuple]: Type-erased tuple of any arity (panics with [*ArityError] on mismatch)
//   - [Slice]: Homogeneous slice
//
// # Sum Types
//
//   - [Either], [Left], [Right]; [ShowEither] renders "left(e)" / "right(a)"
//   - [Option], [Some], [None]; [ShowOption] renders "none" / "some(a)"
//
// # Failure
//
// Show has no error result. A panic raised by a caller-supplied converter
// propagates through every combinator unchanged. Combinators panic at
// construction when handed a nil converter.
//
// # Example
//
//	type Person struct {
//		Name string
//		Age  int
//	}
//
//	person := show.Struct(
//		show.FieldOf("name", func(p Person) string { return p.Name }, show.String),
//		show.FieldOf("age", func(p Person) int { return p.Age }, show.Int[int]()),
//	)
//
//	person.Show(Person{Name: "Alice", Age: 30})
//	// { name: "Alice", age: 30 }
package show
