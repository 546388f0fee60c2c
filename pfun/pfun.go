// Package pfun implements the partial-function encoding: a finite,
// inspectable, shrinkable representation of a partial mapping A ⇀ C, built
// compositionally from unit, product, and sum shapes. Any algebraic domain
// expressible through those shapes (possibly via isomorphism, possibly
// recursively) inherits lookup, shrinking, and table enumeration from the
// primitives here, with no per-type logic.
package pfun

import (
	"github.com/benbjohnson/immutable"

	"github.com/pbt-go/funshrink/fn"
	"github.com/pbt-go/funshrink/lazy"
)

// Entry is one recorded mapping of an encoding's table.
type Entry[A, C any] struct {
	Arg A
	Val C
}

// Shrinker produces smaller candidate outputs for a range type. The notion of
// "smaller" belongs to the caller; the sequence must be well-founded for
// shrink searches to terminate.
type Shrinker[C any] func(C) lazy.Seq[C]

// PFun is a partial function A ⇀ C. The zero value is the empty encoding.
//
// The inner closures hide the existential types introduced by Product, so a
// nested encoding over pairs presents the same surface as a flat one.
type PFun[A, C any] struct {
	table  func() *immutable.List[Entry[A, C]]
	lookup func(A) (C, bool)
	shrink func(Shrinker[C]) lazy.Seq[PFun[A, C]]
}

// Table returns every recorded mapping, in construction order: left-biased
// for unions, outer-then-inner for products. The result is always finite,
// even over infinite domains, because only inputs actually exercised are
// recorded (see Defer).
func (f PFun[A, C]) Table() *immutable.List[Entry[A, C]] {
	if f.table == nil {
		return immutable.NewList[Entry[A, C]]()
	}
	return f.table()
}

// Lookup returns the recorded output for a, or ok == false when a is not
// covered. Never panics; absence is not an error.
func (f PFun[A, C]) Lookup(a A) (C, bool) {
	if f.lookup == nil {
		var zero C
		return zero, false
	}
	return f.lookup(a)
}

// Shrink yields candidate encodings with smaller effective domains or ranges,
// ordered so the largest cuts come first. The sequence is produced lazily and
// may be consumed partially; it is never materialized here.
func (f PFun[A, C]) Shrink(sc Shrinker[C]) lazy.Seq[PFun[A, C]] {
	if f.shrink == nil {
		return nil
	}
	return f.shrink(sc)
}

// Void is the empty encoding: no entries, no shrink candidates, the terminal
// point of every shrink sequence.
func Void[A, C any]() PFun[A, C] {
	return PFun[A, C]{}
}

// Unit encodes the single mapping over the unit domain. Its first shrink
// candidate is Void, followed by encodings carrying smaller values from the
// caller's shrinker.
func Unit[C any](value C) PFun[fn.Unit, C] {
	return PFun[fn.Unit, C]{
		table: func() *immutable.List[Entry[fn.Unit, C]] {
			b := immutable.NewListBuilder[Entry[fn.Unit, C]]()
			b.Append(Entry[fn.Unit, C]{Arg: fn.Unit{}, Val: value})
			return b.List()
		},
		lookup: func(fn.Unit) (C, bool) {
			return value, true
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[fn.Unit, C]] {
			smaller := lazy.Delay(func() lazy.Seq[PFun[fn.Unit, C]] {
				return lazy.Map(sc(value), Unit[C])
			})
			return lazy.Cons(Void[fn.Unit, C](), smaller)
		},
	}
}

// Product collapses a nested encoding (over A, returning encodings over B)
// into an encoding over pairs. The table is the outer table cross-joined with
// each matched inner table; lookup chains through both levels; shrinking
// delegates to the inner encodings, so cuts propagate across nesting.
func Product[A, B, C any](outer PFun[A, PFun[B, C]]) PFun[fn.T2[A, B], C] {
	return PFun[fn.T2[A, B], C]{
		table: func() *immutable.List[Entry[fn.T2[A, B], C]] {
			b := immutable.NewListBuilder[Entry[fn.T2[A, B], C]]()
			oit := outer.Table().Iterator()
			for !oit.Done() {
				_, oe := oit.Next()
				iit := oe.Val.Table().Iterator()
				for !iit.Done() {
					_, ie := iit.Next()
					b.Append(Entry[fn.T2[A, B], C]{Arg: fn.NewT2(oe.Arg, ie.Arg), Val: ie.Val})
				}
			}
			return b.List()
		},
		lookup: func(p fn.T2[A, B]) (C, bool) {
			inner, ok := outer.Lookup(p.First())
			if !ok {
				var zero C
				return zero, false
			}
			return inner.Lookup(p.Second())
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[fn.T2[A, B], C]] {
			return lazy.Delay(func() lazy.Seq[PFun[fn.T2[A, B], C]] {
				inner := outer.Shrink(func(g PFun[B, C]) lazy.Seq[PFun[B, C]] {
					return g.Shrink(sc)
				})
				return lazy.Map(inner, Product[A, B, C])
			})
		},
	}
}

// Left tags an encoding over A onto the left half of Either[A, B];
// right-tagged inputs never match.
func Left[A, B, C any](f PFun[A, C]) PFun[fn.Either[A, B], C] {
	return PFun[fn.Either[A, B], C]{
		table: func() *immutable.List[Entry[fn.Either[A, B], C]] {
			b := immutable.NewListBuilder[Entry[fn.Either[A, B], C]]()
			it := f.Table().Iterator()
			for !it.Done() {
				_, e := it.Next()
				b.Append(Entry[fn.Either[A, B], C]{Arg: fn.NewLeft[A, B](e.Arg), Val: e.Val})
			}
			return b.List()
		},
		lookup: func(e fn.Either[A, B]) (C, bool) {
			if e.IsRight() {
				var zero C
				return zero, false
			}
			return f.Lookup(e.Left())
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[fn.Either[A, B], C]] {
			return lazy.Delay(func() lazy.Seq[PFun[fn.Either[A, B], C]] {
				return lazy.Map(f.Shrink(sc), Left[A, B, C])
			})
		},
	}
}

// Right is the mirror of Left.
func Right[A, B, C any](g PFun[B, C]) PFun[fn.Either[A, B], C] {
	return PFun[fn.Either[A, B], C]{
		table: func() *immutable.List[Entry[fn.Either[A, B], C]] {
			b := immutable.NewListBuilder[Entry[fn.Either[A, B], C]]()
			it := g.Table().Iterator()
			for !it.Done() {
				_, e := it.Next()
				b.Append(Entry[fn.Either[A, B], C]{Arg: fn.NewRight[A](e.Arg), Val: e.Val})
			}
			return b.List()
		},
		lookup: func(e fn.Either[A, B]) (C, bool) {
			if e.IsLeft() {
				var zero C
				return zero, false
			}
			return g.Lookup(e.Right())
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[fn.Either[A, B], C]] {
			return lazy.Delay(func() lazy.Seq[PFun[fn.Either[A, B], C]] {
				return lazy.Map(g.Shrink(sc), Right[A, B, C])
			})
		},
	}
}

// Union combines two encodings over the same domain. Lookup tries f1 first;
// the table concatenates f1's entries before f2's. The shrink sequence yields
// the two maximal single cuts (f1 alone, then f2 alone) before any
// recursively shrunk variant of either.
func Union[A, C any](f1, f2 PFun[A, C]) PFun[A, C] {
	return PFun[A, C]{
		table: func() *immutable.List[Entry[A, C]] {
			b := immutable.NewListBuilder[Entry[A, C]]()
			for _, f := range []PFun[A, C]{f1, f2} {
				it := f.Table().Iterator()
				for !it.Done() {
					_, e := it.Next()
					b.Append(e)
				}
			}
			return b.List()
		},
		lookup: func(a A) (C, bool) {
			if c, ok := f1.Lookup(a); ok {
				return c, true
			}
			return f2.Lookup(a)
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[A, C]] {
			rec1 := lazy.Delay(func() lazy.Seq[PFun[A, C]] {
				return lazy.Map(f1.Shrink(sc), func(g PFun[A, C]) PFun[A, C] {
					return Union(g, f2)
				})
			})
			rec2 := lazy.Delay(func() lazy.Seq[PFun[A, C]] {
				return lazy.Map(f2.Shrink(sc), func(g PFun[A, C]) PFun[A, C] {
					return Union(f1, g)
				})
			})
			return lazy.Cons(f1, lazy.Cons(f2, lazy.Concat(rec1, rec2)))
		},
	}
}

// IMap transports an encoding over B to any domain A isomorphic to it.
// to must be total over A; from need only invert values actually produced by
// to — a partial inverse is acceptable. This precondition is on capability
// authors and is not checked at runtime.
func IMap[A, B, C any](to func(A) B, from func(B) A, f PFun[B, C]) PFun[A, C] {
	return PFun[A, C]{
		table: func() *immutable.List[Entry[A, C]] {
			b := immutable.NewListBuilder[Entry[A, C]]()
			it := f.Table().Iterator()
			for !it.Done() {
				_, e := it.Next()
				b.Append(Entry[A, C]{Arg: from(e.Arg), Val: e.Val})
			}
			return b.List()
		},
		lookup: func(a A) (C, bool) {
			return f.Lookup(to(a))
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[A, C]] {
			return lazy.Delay(func() lazy.Seq[PFun[A, C]] {
				return lazy.Map(f.Shrink(sc), func(g PFun[B, C]) PFun[A, C] {
					return IMap(to, from, g)
				})
			})
		},
	}
}

// VMap is IMap on the range side: it transports an encoding's outputs through
// a value isomorphism. The capability layer uses it to recover typed
// encodings from its erased range.
func VMap[A, C, D any](to func(C) D, from func(D) C, f PFun[A, C]) PFun[A, D] {
	return PFun[A, D]{
		table: func() *immutable.List[Entry[A, D]] {
			b := immutable.NewListBuilder[Entry[A, D]]()
			it := f.Table().Iterator()
			for !it.Done() {
				_, e := it.Next()
				b.Append(Entry[A, D]{Arg: e.Arg, Val: to(e.Val)})
			}
			return b.List()
		},
		lookup: func(a A) (D, bool) {
			c, ok := f.Lookup(a)
			if !ok {
				var zero D
				return zero, false
			}
			return to(c), true
		},
		shrink: func(sc Shrinker[D]) lazy.Seq[PFun[A, D]] {
			return lazy.Delay(func() lazy.Seq[PFun[A, D]] {
				inner := f.Shrink(func(c C) lazy.Seq[C] {
					return lazy.Map(sc(to(c)), from)
				})
				return lazy.Map(inner, func(g PFun[A, C]) PFun[A, D] {
					return VMap(to, from, g)
				})
			})
		},
	}
}

// Defer builds an encoding whose structure is materialized on first use.
// Lookup and Shrink force the thunk (at most once); the table of a node that
// was never forced is empty. Recorded structure therefore tracks exactly the
// queries actually made, which is what keeps tables finite over recursively
// infinite domains: the decomposition of an int or a slice unfolds only as
// far as concrete inputs demand.
func Defer[A, C any](mk func() PFun[A, C]) PFun[A, C] {
	var forced *PFun[A, C]
	force := func() PFun[A, C] {
		if forced == nil {
			pf := mk()
			forced = &pf
		}
		return *forced
	}
	return PFun[A, C]{
		table: func() *immutable.List[Entry[A, C]] {
			if forced == nil {
				return immutable.NewList[Entry[A, C]]()
			}
			return forced.Table()
		},
		lookup: func(a A) (C, bool) {
			return force().Lookup(a)
		},
		shrink: func(sc Shrinker[C]) lazy.Seq[PFun[A, C]] {
			return lazy.Delay(func() lazy.Seq[PFun[A, C]] {
				return force().Shrink(sc)
			})
		},
	}
}
