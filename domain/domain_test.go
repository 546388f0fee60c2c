package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/pbt-go/funshrink/fn"
)

func TestIntCodecTerminalCases(t *testing.T) {
	if e := encodeInt(0); !e.IsRight() || e.Right() {
		t.Error("0 should terminate as right(false)")
	}
	if e := encodeInt(-1); !e.IsRight() || !e.Right() {
		t.Error("-1 should terminate as right(true)")
	}
	if e := encodeInt(5); !e.IsLeft() || !e.Left().First() || e.Left().Second() != 2 {
		t.Errorf("5 should unfold to (odd, 2), got %v", e)
	}
	if e := encodeInt(-4); !e.IsLeft() || e.Left().First() || e.Left().Second() != -2 {
		t.Errorf("-4 should unfold to (even, -2), got %v", e)
	}
}

func TestIntCodecProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode inverts encode", prop.ForAll(
		func(i int) bool {
			return decodeInt(encodeInt(i)) == i
		},
		gen.Int(),
	))

	properties.Property("unfolding strictly decreases magnitude", prop.ForAll(
		func(i int) bool {
			e := encodeInt(i)
			if e.IsRight() {
				return true
			}
			rest := e.Left().Second()
			abs := func(v int) int {
				if v < 0 {
					return -v
				}
				return v
			}
			return abs(rest) < abs(i)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestEncodingFidelity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	intEnc := BuildFor(Int(), func(i int) int { return i*2 + 1 })
	properties.Property("int encoding reproduces the function", prop.ForAll(
		func(i int) bool {
			got, ok := intEnc.Lookup(i)
			return ok && got == i*2+1
		},
		gen.Int(),
	))

	strEnc := BuildFor(String(), func(s string) string { return s })
	properties.Property("string encoding reproduces the function", prop.ForAll(
		func(s string) bool {
			got, ok := strEnc.Lookup(s)
			return ok && got == s
		},
		gen.AlphaString(),
	))

	sliceEnc := BuildFor(SliceOf(Int()), func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	})
	properties.Property("slice encoding reproduces the function", prop.ForAll(
		func(xs []int) bool {
			want := 0
			for _, x := range xs {
				want += x
			}
			got, ok := sliceEnc.Lookup(xs)
			return ok && got == want
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestBoolCapability(t *testing.T) {
	enc := BuildFor(Bool(), func(b bool) bool { return !b })
	for _, b := range []bool{false, true} {
		got, ok := enc.Lookup(b)
		if !ok || got != !b {
			t.Errorf("lookup(%v) gave %v ok=%v", b, got, ok)
		}
	}
	if enc.Table().Len() != 2 {
		t.Errorf("table holds %d entries after 2 distinct queries", enc.Table().Len())
	}
}

func TestOptionCapability(t *testing.T) {
	enc := BuildFor(OptionOf(Int()), func(o fn.Option[int]) int {
		return o.UnwrapOr(-99)
	})
	if got, ok := enc.Lookup(fn.Some(7)); !ok || got != 7 {
		t.Errorf("lookup(some 7) gave %v ok=%v", got, ok)
	}
	if got, ok := enc.Lookup(fn.None[int]()); !ok || got != -99 {
		t.Errorf("lookup(none) gave %v ok=%v", got, ok)
	}
}

func TestPairCapability(t *testing.T) {
	enc := BuildFor(PairOf(Int(), Bool()), func(p fn.T2[int, bool]) int {
		if p.Second() {
			return p.First()
		}
		return -p.First()
	})
	if got, ok := enc.Lookup(fn.NewT2(5, true)); !ok || got != 5 {
		t.Errorf("lookup((5, true)) gave %v ok=%v", got, ok)
	}
	if got, ok := enc.Lookup(fn.NewT2(5, false)); !ok || got != -5 {
		t.Errorf("lookup((5, false)) gave %v ok=%v", got, ok)
	}
}

func TestTableStaysFiniteOverInfiniteDomains(t *testing.T) {
	intEnc := BuildFor(Int(), func(i int) int { return i })
	for i := 0; i < 10; i++ {
		intEnc.Lookup(i)
	}
	if n := intEnc.Table().Len(); n != 10 {
		t.Errorf("int table holds %d entries after 10 distinct queries", n)
	}

	sliceEnc := BuildFor(SliceOf(Int()), func(xs []int) int { return len(xs) })
	queries := [][]int{{}, {1}, {2}, {1, 2}}
	for _, q := range queries {
		sliceEnc.Lookup(q)
	}
	if n := sliceEnc.Table().Len(); n != len(queries) {
		t.Errorf("slice table holds %d entries after %d distinct queries", n, len(queries))
	}
}

func TestVerifyAcceptsSoundCapability(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	err := Verify(Int(), func(i int) int { return i * 10 }, eq, []int{0, -1, 1, 7, -8, 7})
	if err != nil {
		t.Errorf("verify rejected a sound capability: %v", err)
	}
}

func TestVerifyRejectsNonInjectiveIso(t *testing.T) {
	// to collapses inputs mod 3 while from pretends identity, so distinct
	// inputs alias the same recorded entry.
	broken := IsoMap(
		func(i int) int { return i % 3 },
		func(i int) int { return i },
		Int(),
	)
	eq := func(a, b int) bool { return a == b }
	err := Verify(broken, func(i int) int { return i * 10 }, eq, []int{0, 1, 3})
	if err == nil {
		t.Fatal("verify accepted a capability that aliases inputs")
	}
}
