// Package fn holds the small algebraic vocabulary the encoding layer
// decomposes domains into: the unit type, pairs, tagged sums, and options.
package fn

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless type.
type Unit = struct{}

// T2 is an immutable 2-tuple.
type T2[A, B any] struct {
	first  A
	second B
}

func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

func (t T2[A, B]) First() A {
	return t.first
}

func (t T2[A, B]) Second() B {
	return t.second
}

// Either holds exactly one of a left or a right value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func NewLeft[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func NewRight[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value, or the zero value when e holds a right.
func (e Either[L, R]) Left() L {
	return e.left
}

// Right returns the right value, or the zero value when e holds a left.
func (e Either[L, R]) Right() R {
	return e.right
}

// ElimEither is the universal destructor for Either.
func ElimEither[L, R, O any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Option is a value that may be absent.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, isSome: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// UnwrapOr returns the contained value, or def when absent.
func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.value
	}
	return def
}
