// Package domain provides per-type capabilities: descriptions of how to
// decompose any total function over a type into the pfun encoding. Primitive
// capabilities cover unit, bool, int, string, options, and slices; composite
// domains derive theirs structurally with PairOf, EitherOf, and IsoMap.
//
// Capabilities for recursive types must refer to themselves through Defer, so
// that composing capabilities never recurses; only decomposing a concrete
// value does.
package domain

import (
	"strings"

	"github.com/pbt-go/funshrink/fn"
	"github.com/pbt-go/funshrink/pfun"
)

// Arg describes how to decompose total functions over A. The range type is
// erased to any inside the capability layer — Go cannot express a value whose
// build method is generic in the range — and restored at the boundary by
// BuildFor.
type Arg[A any] struct {
	build func(f func(A) any) pfun.PFun[A, any]
}

// Build produces the encoding of f. Construction records nothing and never
// calls f; entries materialize as the encoding is queried.
func (arg Arg[A]) Build(f func(A) any) pfun.PFun[A, any] {
	return arg.build(f)
}

// BuildFor builds a typed encoding of f through arg.
func BuildFor[A, C any](arg Arg[A], f func(A) C) pfun.PFun[A, C] {
	erased := arg.Build(func(a A) any { return f(a) })
	return pfun.VMap(
		func(v any) C { return v.(C) },
		func(c C) any { return c },
		erased,
	)
}

// Unit is the capability for the unit type.
func Unit() Arg[fn.Unit] {
	return Arg[fn.Unit]{build: func(f func(fn.Unit) any) pfun.PFun[fn.Unit, any] {
		return pfun.Defer(func() pfun.PFun[fn.Unit, any] {
			return pfun.Unit(f(fn.Unit{}))
		})
	}}
}

// EitherOf combines capabilities for the two halves of a tagged sum.
func EitherOf[L, R any](l Arg[L], r Arg[R]) Arg[fn.Either[L, R]] {
	return Arg[fn.Either[L, R]]{build: func(f func(fn.Either[L, R]) any) pfun.PFun[fn.Either[L, R], any] {
		lp := l.Build(func(v L) any { return f(fn.NewLeft[L, R](v)) })
		rp := r.Build(func(v R) any { return f(fn.NewRight[L](v)) })
		return pfun.Union(pfun.Left[L, R](lp), pfun.Right[L, R](rp))
	}}
}

// PairOf combines capabilities for the two components of a pair by currying:
// the encoding over A carries, at each leaf, an encoding over B.
func PairOf[A, B any](a Arg[A], b Arg[B]) Arg[fn.T2[A, B]] {
	return Arg[fn.T2[A, B]]{build: func(f func(fn.T2[A, B]) any) pfun.PFun[fn.T2[A, B], any] {
		nested := a.Build(func(x A) any {
			return b.Build(func(y B) any { return f(fn.NewT2(x, y)) })
		})
		outer := pfun.VMap(
			func(v any) pfun.PFun[B, any] { return v.(pfun.PFun[B, any]) },
			func(g pfun.PFun[B, any]) any { return g },
			nested,
		)
		return pfun.Product(outer)
	}}
}

// IsoMap derives a capability for A from a capability for an isomorphic B.
// to must be total over A; from need only invert values produced by to.
func IsoMap[A, B any](to func(A) B, from func(B) A, inner Arg[B]) Arg[A] {
	return Arg[A]{build: func(f func(A) any) pfun.PFun[A, any] {
		return pfun.IMap(to, from, inner.Build(func(b B) any { return f(from(b)) }))
	}}
}

// Defer wraps a capability in a thunk forced only when a concrete value is
// decomposed, never during capability composition. Recursive capabilities
// must route their self-reference through it.
func Defer[A any](thunk func() Arg[A]) Arg[A] {
	return Arg[A]{build: func(f func(A) any) pfun.PFun[A, any] {
		return pfun.Defer(func() pfun.PFun[A, any] {
			return thunk().Build(f)
		})
	}}
}

// Bool decomposes booleans through Either[Unit, Unit]: false on the left,
// true on the right.
func Bool() Arg[bool] {
	return IsoMap(
		func(v bool) fn.Either[fn.Unit, fn.Unit] {
			if v {
				return fn.NewRight[fn.Unit](fn.Unit{})
			}
			return fn.NewLeft[fn.Unit, fn.Unit](fn.Unit{})
		},
		func(e fn.Either[fn.Unit, fn.Unit]) bool {
			return e.IsRight()
		},
		EitherOf(Unit(), Unit()),
	)
}

// Int decomposes integers two's-complement style: 0 and -1 terminate on the
// right, any other i unfolds to (odd(i), i >> 1) on the left. The shift is
// arithmetic, i.e. floor division by two, so magnitude strictly decreases and
// the unfolding terminates for every finite integer.
func Int() Arg[int] {
	var self Arg[int]
	self = IsoMap(
		encodeInt,
		decodeInt,
		EitherOf(PairOf(Bool(), Defer(func() Arg[int] { return self })), Bool()),
	)
	return self
}

func encodeInt(i int) fn.Either[fn.T2[bool, int], bool] {
	switch i {
	case 0:
		return fn.NewRight[fn.T2[bool, int]](false)
	case -1:
		return fn.NewRight[fn.T2[bool, int]](true)
	default:
		return fn.NewLeft[fn.T2[bool, int], bool](fn.NewT2(i&1 == 1, i>>1))
	}
}

func decodeInt(e fn.Either[fn.T2[bool, int], bool]) int {
	return fn.ElimEither(e,
		func(p fn.T2[bool, int]) int {
			i := p.Second() << 1
			if p.First() {
				i |= 1
			}
			return i
		},
		func(neg bool) int {
			if neg {
				return -1
			}
			return 0
		},
	)
}

// SliceOf decomposes slices as optional (head, tail) pairs, recursively: a
// slice is either empty or a head element paired with a smaller slice.
func SliceOf[A any](elem Arg[A]) Arg[[]A] {
	var self Arg[[]A]
	self = IsoMap(
		func(xs []A) fn.Either[fn.Unit, fn.T2[A, []A]] {
			if len(xs) == 0 {
				return fn.NewLeft[fn.Unit, fn.T2[A, []A]](fn.Unit{})
			}
			return fn.NewRight[fn.Unit](fn.NewT2(xs[0], xs[1:]))
		},
		func(e fn.Either[fn.Unit, fn.T2[A, []A]]) []A {
			return fn.ElimEither(e,
				func(fn.Unit) []A { return nil },
				func(p fn.T2[A, []A]) []A {
					return append([]A{p.First()}, p.Second()...)
				},
			)
		},
		EitherOf(Unit(), PairOf(elem, Defer(func() Arg[[]A] { return self }))),
	)
	return self
}

// OptionOf decomposes optional values through Either[Unit, A].
func OptionOf[A any](elem Arg[A]) Arg[fn.Option[A]] {
	return IsoMap(
		func(o fn.Option[A]) fn.Either[fn.Unit, A] {
			if o.IsSome() {
				var zero A
				return fn.NewRight[fn.Unit](o.UnwrapOr(zero))
			}
			return fn.NewLeft[fn.Unit, A](fn.Unit{})
		},
		func(e fn.Either[fn.Unit, A]) fn.Option[A] {
			return fn.ElimEither(e,
				func(fn.Unit) fn.Option[A] { return fn.None[A]() },
				fn.Some[A],
			)
		},
		EitherOf(Unit(), elem),
	)
}

// String decomposes strings into their ordered sequence of code points.
func String() Arg[string] {
	return IsoMap(
		func(s string) []int {
			var codes []int
			for _, r := range s {
				codes = append(codes, int(r))
			}
			return codes
		},
		func(codes []int) string {
			var b strings.Builder
			for _, c := range codes {
				b.WriteRune(rune(c))
			}
			return b.String()
		},
		SliceOf(Int()),
	)
}
