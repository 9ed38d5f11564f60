// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

// Show renders values of type A as human-readable strings.
//
// Implementations carry no state and must be safe for concurrent use.
// Show has no error result: a converter that cannot render its input
// panics, and every combinator in this package lets that panic through
// unchanged.
type Show[A any] interface {
	Show(a A) string
}

// Func adapts an ordinary function to [Show].
type Func[A any] func(a A) string

// Show implements [Show] by calling f.
func (f Func[A]) Show(a A) string {
	return f(a)
}

// Contramap derives a Show for B by projecting each B into an A first.
// Contramap(s, f).Show(b) equals s.Show(f(b)).
func Contramap[A, B any](s Show[A], f func(B) A) Show[B] {
	mustShow(s, "Contramap")
	return Func[B](func(b B) string {
		return s.Show(f(b))
	})
}

// mustShow panics if s is nil. Combinators check their inputs at
// construction so a missing converter fails where it was wired,
// not deep inside a later render.
func mustShow[A any](s Show[A], combinator string) {
	if s == nil {
		panic("show: nil Show passed to " + combinator)
	}
}
