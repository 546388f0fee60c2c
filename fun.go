package funshrink

import (
	"fmt"
	"strings"

	"github.com/pbt-go/funshrink/domain"
	"github.com/pbt-go/funshrink/lazy"
	"github.com/pbt-go/funshrink/pfun"
)

// Fun is the function object handed to and received from a test harness. A
// freshly generated function is total: it wraps the raw function and a
// fallback value, and derives its partial encoding only when shrinking or
// printing asks for it — never during generation, which would diverge on
// infinite domains. Shrinking produces partial wrappers: a finite encoding
// plus the fallback used for every input outside its table. Partial wrappers
// are only ever produced by shrinking, never constructed by callers.
type Fun[A, C any] struct {
	state funState[A, C]
}

var _ fmt.Stringer = Fun[int, bool]{}

type funState[A, C any] interface {
	apply(a A) C
	shrink(sc pfun.Shrinker[C]) lazy.Seq[Fun[A, C]]
	render() string
}

// New wraps a freshly generated total function with its domain capability and
// fallback value.
func New[A, C any](arg domain.Arg[A], def C, raw func(A) C) Fun[A, C] {
	return Fun[A, C]{state: totalState[A, C]{arg: arg, def: def, raw: raw}}
}

// Apply evaluates the function at a.
func (f Fun[A, C]) Apply(a A) C {
	return f.state.apply(a)
}

// Shrink yields progressively smaller functions: candidates with a cut-down
// domain first, then candidates with a smaller fallback value. Domain cuts
// come first because they remove the largest parts of the search space.
func (f Fun[A, C]) Shrink(sc pfun.Shrinker[C]) lazy.Seq[Fun[A, C]] {
	return f.state.shrink(sc)
}

// String renders a total wrapper as the opaque placeholder "<function>" (its
// domain cannot be enumerated) and a partial wrapper as its finite table
// followed by the fallback entry, e.g. {[-1] => true, _ => false}.
func (f Fun[A, C]) String() string {
	return f.state.render()
}

type totalState[A, C any] struct {
	arg domain.Arg[A]
	def C
	raw func(A) C
}

func (s totalState[A, C]) apply(a A) C {
	return s.raw(a)
}

func (s totalState[A, C]) shrink(sc pfun.Shrinker[C]) lazy.Seq[Fun[A, C]] {
	return shrinkSteps(domain.BuildFor(s.arg, s.raw), s.def, sc)
}

func (s totalState[A, C]) render() string {
	return "<function>"
}

type partialState[A, C any] struct {
	enc pfun.PFun[A, C]
	def C
}

func makePartial[A, C any](enc pfun.PFun[A, C], def C) Fun[A, C] {
	return Fun[A, C]{state: partialState[A, C]{enc: enc, def: def}}
}

func (s partialState[A, C]) apply(a A) C {
	if c, ok := s.enc.Lookup(a); ok {
		return c
	}
	return s.def
}

func (s partialState[A, C]) shrink(sc pfun.Shrinker[C]) lazy.Seq[Fun[A, C]] {
	return shrinkSteps(s.enc, s.def, sc)
}

func (s partialState[A, C]) render() string {
	var b strings.Builder
	b.WriteString("{")
	it := s.enc.Table().Iterator()
	for !it.Done() {
		_, e := it.Next()
		fmt.Fprintf(&b, "%v => %v, ", e.Arg, e.Val)
	}
	fmt.Fprintf(&b, "_ => %v}", s.def)
	return b.String()
}

func shrinkSteps[A, C any](enc pfun.PFun[A, C], def C, sc pfun.Shrinker[C]) lazy.Seq[Fun[A, C]] {
	domainCuts := lazy.Map(enc.Shrink(sc), func(cand pfun.PFun[A, C]) Fun[A, C] {
		return makePartial(cand, def)
	})
	defCuts := lazy.Delay(func() lazy.Seq[Fun[A, C]] {
		return lazy.Map(sc(def), func(smaller C) Fun[A, C] {
			return makePartial(enc, smaller)
		})
	})
	return lazy.Concat(domainCuts, defCuts)
}
