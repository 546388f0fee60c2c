package domain

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/pbt-go/funshrink/hashmap"
)

var ErrDomain = errors.New("domain capability error")

// Verify builds f through arg and checks that the resulting encoding
// reproduces f over the sample inputs: every queried sample must be covered,
// every recorded output must equal f's, and after all queries the table must
// hold exactly one entry per distinct sample — the finite-table guarantee.
// Violations are accumulated rather than failing fast, so a broken capability
// reports all offending samples.
//
// Intended for capability authors: an IsoMap whose from is not a proper
// partial inverse of to will fail here rather than silently misrecord.
func Verify[A, C any](arg Arg[A], f func(A) C, eq func(C, C) bool, samples []A) error {
	enc := BuildFor(arg, f)
	distinct := hashmap.NewStrings[struct{}]()
	var err error
	for _, a := range samples {
		distinct.Set(fmt.Sprint(a), struct{}{})
		got, ok := enc.Lookup(a)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: no entry for %v after query", ErrDomain, a))
			continue
		}
		if want := f(a); !eq(got, want) {
			err = multierr.Append(err, fmt.Errorf("%w: %v maps to %v, want %v", ErrDomain, a, got, want))
		}
	}
	if n := enc.Table().Len(); n != distinct.Len() {
		err = multierr.Append(err, fmt.Errorf("%w: table holds %d entries after %d distinct queries", ErrDomain, n, distinct.Len()))
	}
	return err
}
