// Package lazy implements the on-demand sequences the shrinking engine
// produces and consumes. A Seq computes elements only as the consumer
// advances, and may be lazily infinite; this is load-bearing, since shrink
// candidates over unbounded domains cannot be enumerated eagerly.
package lazy

// Seq is a lazily produced sequence: forcing it yields the head element and
// the tail, or ok == false when the sequence is exhausted. The nil Seq is
// empty. Sequences are not restartable in general; each traversal recomputes.
type Seq[T any] func() (head T, tail Seq[T], ok bool)

// Next forces the first element. Safe to call on nil.
func (s Seq[T]) Next() (T, Seq[T], bool) {
	if s == nil {
		var zero T
		return zero, nil, false
	}
	return s()
}

// Empty is the empty sequence, typed. Equivalent to nil.
func Empty[T any]() Seq[T] {
	return nil
}

// Cons prepends head to tail without forcing tail.
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return func() (T, Seq[T], bool) {
		return head, tail, true
	}
}

// Single is the one-element sequence.
func Single[T any](v T) Seq[T] {
	return Cons(v, nil)
}

// Delay defers construction of a sequence until it is forced.
func Delay[T any](mk func() Seq[T]) Seq[T] {
	return func() (T, Seq[T], bool) {
		return mk().Next()
	}
}

// FromSlice yields the elements of xs in order.
func FromSlice[T any](xs []T) Seq[T] {
	if len(xs) == 0 {
		return nil
	}
	return func() (T, Seq[T], bool) {
		return xs[0], FromSlice(xs[1:]), true
	}
}

// Concat yields all of a, then all of b. b is not forced until a is exhausted.
func Concat[T any](a, b Seq[T]) Seq[T] {
	return func() (T, Seq[T], bool) {
		if h, t, ok := a.Next(); ok {
			return h, Concat(t, b), true
		}
		return b.Next()
	}
}

// Map applies f element by element, as elements are forced.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return func() (U, Seq[U], bool) {
		h, t, ok := s.Next()
		if !ok {
			var zero U
			return zero, nil, false
		}
		return f(h), Map(t, f), true
	}
}

// Take forces and returns up to n leading elements.
func (s Seq[T]) Take(n int) []T {
	var out []T
	cur := s
	for len(out) < n {
		h, t, ok := cur.Next()
		if !ok {
			break
		}
		out = append(out, h)
		cur = t
	}
	return out
}

// ToSlice forces the entire sequence. Only for sequences known to be finite.
func (s Seq[T]) ToSlice() []T {
	var out []T
	cur := s
	for {
		h, t, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, h)
		cur = t
	}
}
