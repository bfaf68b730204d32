package trace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

func expectMonotone(steps []trace.SearchStep) {
	for i := 1; i < len(steps); i++ {
		prev, cur := steps[i-1].Eliminated, steps[i].Eliminated
		Expect(len(cur)).To(BeNumerically(">=", len(prev)))
		for _, idx := range prev {
			Expect(cur).To(ContainElement(idx))
		}
	}
}

var _ = Describe("GenerateBinarySearchSteps", func() {
	It("finds Audio at the Headset position", func() {
		steps := trace.GenerateBinarySearchSteps(inventory.Sample(), "Audio", inventory.Category)
		last := steps[len(steps)-1]
		Expect(last.Kind).To(Equal(trace.Found))
		Expect(last.Found).To(BeTrue())
		Expect(last.Array[last.Mid].Name).To(Equal("Headset"))
		Expect(last.Mid).To(Equal(0))
		Expect(inventory.Names(last.Array)).To(Equal([]string{"Headset", "Laptop", "Monitor", "Keyboard", "Mouse"}))
	})

	It("reports an absent target with mid -1 and everything eliminated", func() {
		steps := trace.GenerateBinarySearchSteps(inventory.Sample(), "Zzz", inventory.Name)
		last := steps[len(steps)-1]
		Expect(last.Kind).To(Equal(trace.NotFound))
		Expect(last.Mid).To(Equal(-1))
		Expect(last.Eliminated).To(ConsistOf(0, 1, 2, 3, 4))
		for _, s := range steps {
			Expect(s.Found).To(BeFalse())
		}
		expectMonotone(steps)
	})

	It("eliminates the right part including the midpoint", func() {
		steps := trace.GenerateBinarySearchSteps(inventory.Sample(), "Aaa", inventory.Name)
		// sorted: Headset Keyboard Laptop Monitor Mouse
		Expect(steps[1].Kind).To(Equal(trace.Check))
		Expect(steps[1].Mid).To(Equal(2))
		Expect(steps[2].Kind).To(Equal(trace.EliminateRight))
		Expect(steps[2].Eliminated).To(Equal([]int{2, 3, 4}))
		Expect(steps[2].High).To(Equal(1))
		Expect(steps[2].Mid).To(Equal(0))

		last := steps[len(steps)-1]
		Expect(last.Low).To(Equal(0))
		Expect(last.High).To(Equal(-1))
		Expect(last.Eliminated).To(Equal([]int{2, 3, 4, 0, 1}))
	})

	It("uses floor division when the window empties below zero", func() {
		steps := trace.GenerateBinarySearchSteps(inventory.Sample()[:1], "Aaa", inventory.Name)
		Expect(steps).To(HaveLen(4))
		Expect(steps[2].Kind).To(Equal(trace.EliminateRight))
		Expect(steps[2].Mid).To(Equal(-1))
		Expect(steps[3].Kind).To(Equal(trace.NotFound))
	})

	It("is case-sensitive", func() {
		steps := trace.GenerateBinarySearchSteps(inventory.Sample(), "laptop", inventory.Name)
		Expect(steps[len(steps)-1].Kind).To(Equal(trace.NotFound))
	})

	DescribeTable("returns an empty trace",
		func(items []inventory.Item, target string, field inventory.Field) {
			Expect(trace.GenerateBinarySearchSteps(items, target, field)).To(BeEmpty())
		},
		Entry("for an empty dataset", nil, "Mouse", inventory.Name),
		Entry("for a blank target", inventory.Sample(), "   ", inventory.Name),
		Entry("for a numeric field", inventory.Sample(), "10", inventory.Stock),
	)

	It("agrees with a linear scan for every name and category", func() {
		items, _ := inventory.Preset("large")
		for _, field := range inventory.SearchFields {
			targets := []string{"", "Zzz", "Aaa", "M"}
			for _, it := range items {
				targets = append(targets, field.Text(it))
			}
			for _, target := range targets {
				steps := trace.GenerateBinarySearchSteps(items, target, field)
				if target == "" {
					Expect(steps).To(BeEmpty())
					continue
				}
				expectMonotone(steps)
				last := steps[len(steps)-1]
				hits := inventory.FindAll(items, target, field)
				if len(hits) == 0 {
					Expect(last.Mid).To(Equal(-1))
					Expect(last.Eliminated).To(HaveLen(len(items)))
					continue
				}
				Expect(last.Found).To(BeTrue())
				Expect(field.Text(last.Array[last.Mid])).To(Equal(target))
				for _, s := range steps[:len(steps)-1] {
					Expect(s.Found).To(BeFalse())
				}
			}
		}
	})

	It("shares one sorted order across every step", func() {
		steps := trace.GenerateBinarySearchSteps(inventory.Sample(), "Mouse", inventory.Name)
		for _, s := range steps {
			Expect(s.Array).To(Equal(steps[0].Array))
		}
	})
})
