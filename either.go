// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

// Either holds a value of type E on the left or of type A on the right.
// The zero Either is a Left holding the zero E.
type Either[E, A any] struct {
	right bool
	l     E
	r     A
}

// Left wraps e as the left side.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{l: e}
}

// Right wraps a as the right side.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: true, r: a}
}

// IsRight reports whether e holds the right side.
func (e Either[E, A]) IsRight() bool { return e.right }

// ShowEither renders an Either as "left(e)" or "right(a)".
func ShowEither[E, A any](se Show[E], sa Show[A]) Show[Either[E, A]] {
	mustShow(se, "ShowEither")
	mustShow(sa, "ShowEither")
	return Func[Either[E, A]](func(e Either[E, A]) string {
		if e.right {
			return "right(" + sa.Show(e.r) + ")"
		}
		return "left(" + se.Show(e.l) + ")"
	})
}

// Option is an optional value.
// The zero Option is None.
type Option[A any] struct {
	ok    bool
	value A
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None returns the empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether o holds a value.
func (o Option[A]) IsSome() bool { return o.ok }

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// ShowOption renders an Option as "none" or "some(a)".
func ShowOption[A any](s Show[A]) Show[Option[A]] {
	mustShow(s, "ShowOption")
	return Func[Option[A]](func(o Option[A]) string {
		if !o.ok {
			return "none"
		}
		return "some(" + s.Show(o.value) + ")"
	})
}
