// Package funshrink shrinks and shows randomly generated functions for
// property-based testing.
//
// A test framework that generates a function f: A -> C and finds a failing
// case faces two problems: reporting f in a readable form, and searching for
// a smaller f that still fails, even though A may be infinite (ints, strings,
// slices). funshrink solves both by decomposing A structurally into unit,
// product, and sum shapes (package domain), recording only the finitely many
// inputs a test actually exercises in a partial-function encoding (package
// pfun), and wrapping the result in a Fun value that applies, shrinks, and
// prints.
//
//	arg := domain.SliceOf(domain.Int())
//	f := funshrink.New(arg, false, generated)
//	f.Apply([]int{-1})          // calls generated
//	min := funshrink.Minimize(f, funshrink.ShrinkBool, stillFails)
//	fmt.Println(min)            // {[-1] => true, _ => false}
//
// Everything is immutable and single-threaded; shrink candidates are produced
// as lazy sequences (package lazy) and consumed only as far as the search
// advances.
package funshrink
