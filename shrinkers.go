package funshrink

import (
	"github.com/pbt-go/funshrink/lazy"
)

// Stock output shrinkers for common range types. Callers with richer output
// types supply their own; any well-founded notion of "smaller" works.

// ShrinkBool yields false for true and nothing for false.
func ShrinkBool(v bool) lazy.Seq[bool] {
	if v {
		return lazy.Single(false)
	}
	return nil
}

// ShrinkInt halves toward zero: 0 first, then v-v/2, v-v/4, and so on, with
// the sign flip offered first for negative values.
func ShrinkInt(v int) lazy.Seq[int] {
	if v == 0 {
		return nil
	}
	var out []int
	if v < 0 {
		out = append(out, -v)
	}
	out = append(out, 0)
	for d := v / 2; d != 0; d /= 2 {
		out = append(out, v-d)
	}
	return lazy.FromSlice(out)
}
