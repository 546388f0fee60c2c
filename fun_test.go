package funshrink_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pbt-go/funshrink"
	"github.com/pbt-go/funshrink/domain"
	"github.com/pbt-go/funshrink/fn"
)

var _ = Describe("Fun", func() {
	Describe("a total wrapper", func() {
		f := funshrink.New(domain.Int(), 0, func(i int) int { return i + 1 })

		It("applies the raw function", func() {
			Expect(f.Apply(0)).To(Equal(1))
			Expect(f.Apply(-5)).To(Equal(-4))
			Expect(f.Apply(41)).To(Equal(42))
		})

		It("renders as an opaque placeholder", func() {
			Expect(f.String()).To(Equal("<function>"))
		})
	})

	Describe("shrinking", func() {
		It("offers the empty encoding as the first candidate", func() {
			f := funshrink.New(domain.Unit(), true, func(fn.Unit) bool { return true })
			cands := f.Shrink(funshrink.ShrinkBool).Take(1)
			Expect(cands).To(HaveLen(1))
			Expect(cands[0].String()).To(Equal("{_ => true}"))
			Expect(cands[0].Apply(fn.Unit{})).To(BeTrue())
		})

		It("cuts the domain before cutting the fallback", func() {
			f := funshrink.New(domain.Unit(), true, func(fn.Unit) bool { return true })
			cands := f.Shrink(funshrink.ShrinkBool).Take(3)
			Expect(cands).To(HaveLen(3))
			Expect(cands[0].String()).To(Equal("{_ => true}"))
			Expect(cands[1].String()).To(Equal("{{} => false, _ => true}"))
			Expect(cands[2].String()).To(Equal("{{} => true, _ => false}"))
		})

		It("produces partial wrappers that fall back outside their table", func() {
			f := funshrink.New(domain.Bool(), false, func(b bool) bool { return b })
			cands := f.Shrink(funshrink.ShrinkBool).Take(1)
			Expect(cands).To(HaveLen(1))
			// The first candidate keeps only the false half of the domain.
			Expect(cands[0].Apply(false)).To(BeFalse())
			Expect(cands[0].Apply(true)).To(BeFalse())
		})
	})

	Describe("Minimize", func() {
		It("shrinks a counterexample over slices down to one entry", func() {
			f := funshrink.New(domain.SliceOf(domain.Int()), false, func(xs []int) bool {
				return len(xs) > 0
			})
			fails := func(c funshrink.Fun[[]int, bool]) bool {
				return c.Apply([]int{-1}) != c.Apply([]int{})
			}
			Expect(fails(f)).To(BeTrue())

			min := funshrink.Minimize(f, funshrink.ShrinkBool, fails)
			Expect(fails(min)).To(BeTrue())
			Expect(min.Apply([]int{-1})).To(BeTrue())
			Expect(min.Apply([]int{})).To(BeFalse())
			Expect(min.String()).To(Equal("{[-1] => true, _ => false}"))
		})

		It("returns the input unchanged when nothing smaller fails", func() {
			f := funshrink.New(domain.Int(), 0, func(i int) int { return i })
			min := funshrink.Minimize(f, funshrink.ShrinkInt, func(funshrink.Fun[int, int]) bool {
				return false
			})
			Expect(min.String()).To(Equal("<function>"))
		})
	})
})

var _ = Describe("stock shrinkers", func() {
	It("shrinks true to false and false to nothing", func() {
		Expect(funshrink.ShrinkBool(true).ToSlice()).To(Equal([]bool{false}))
		Expect(funshrink.ShrinkBool(false).ToSlice()).To(BeEmpty())
	})

	It("halves ints toward zero", func() {
		Expect(funshrink.ShrinkInt(0).ToSlice()).To(BeEmpty())
		Expect(funshrink.ShrinkInt(8).ToSlice()).To(Equal([]int{0, 4, 6, 7}))
		Expect(funshrink.ShrinkInt(-5).ToSlice()).To(Equal([]int{5, 0, -3, -4}))
	})
})

func TestFunshrink(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Funshrink Suite")
}
