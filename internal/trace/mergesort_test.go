package trace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

func lastArray(steps []trace.SortStep) []inventory.Item {
	Expect(steps).NotTo(BeEmpty())
	last := steps[len(steps)-1]
	Expect(last.Kind).To(Equal(trace.Sorted))
	Expect(last.Arrays).To(HaveLen(1))
	return last.Arrays[0]
}

var _ = Describe("GenerateMergeSortSteps", func() {
	It("returns no steps for an empty dataset", func() {
		Expect(trace.GenerateMergeSortSteps(nil, inventory.Name)).To(BeEmpty())
	})

	It("short-circuits a single item to initial and sorted steps", func() {
		steps := trace.GenerateMergeSortSteps(inventory.Sample()[:1], inventory.Price)
		Expect(steps).To(HaveLen(2))
		Expect(steps[0].Kind).To(Equal(trace.Initial))
		Expect(steps[1].Kind).To(Equal(trace.Sorted))
	})

	It("orders Keyboard before Mouse by name", func() {
		items := []inventory.Item{
			{Name: "Mouse", Stock: 40, Price: 150000, Category: "Periferal"},
			{Name: "Keyboard", Stock: 25, Price: 250000, Category: "Periferal"},
		}
		steps := trace.GenerateMergeSortSteps(items, inventory.Name)
		Expect(inventory.Names(lastArray(steps))).To(Equal([]string{"Keyboard", "Mouse"}))
	})

	DescribeTable("final array is non-decreasing",
		func(preset string, field inventory.Field) {
			items, err := inventory.Preset(preset)
			Expect(err).NotTo(HaveOccurred())
			sorted := lastArray(trace.GenerateMergeSortSteps(items, field))
			Expect(sorted).To(HaveLen(len(items)))
			for i := 1; i < len(sorted); i++ {
				Expect(field.Compare(sorted[i-1], sorted[i])).To(BeNumerically("<=", 0))
			}
		},
		Entry("sample by name", "sample", inventory.Name),
		Entry("sample by category", "sample", inventory.Category),
		Entry("sample by price", "sample", inventory.Price),
		Entry("sample by stock", "sample", inventory.Stock),
		Entry("large by name", "large", inventory.Name),
		Entry("large by price", "large", inventory.Price),
		Entry("duplicates by stock", "duplicates", inventory.Stock),
	)

	It("keeps equal keys in input order", func() {
		items, err := inventory.Preset("duplicates")
		Expect(err).NotTo(HaveOccurred())
		sorted := lastArray(trace.GenerateMergeSortSteps(items, inventory.Category))
		Expect(inventory.Names(sorted)).To(Equal([]string{
			"Speaker", "Headset", "Microphone",
			"Router", "Switch", "Modem",
		}))

		byPrice := lastArray(trace.GenerateMergeSortSteps(items, inventory.Price))
		Expect(inventory.Names(byPrice)[:3]).To(Equal([]string{"Speaker", "Modem", "Microphone"}))
	})

	It("is deterministic", func() {
		items, _ := inventory.Preset("large")
		Expect(trace.GenerateMergeSortSteps(items, inventory.Category)).
			To(Equal(trace.GenerateMergeSortSteps(items, inventory.Category)))
	})

	It("does not alias the caller's slice", func() {
		items := inventory.Sample()
		steps := trace.GenerateMergeSortSteps(items, inventory.Name)
		items[0].Name = "Changed"
		Expect(steps[0].Arrays[0][0].Name).To(Equal("Monitor"))
	})

	It("emits one divide step per split and valid comparing indices", func() {
		items, _ := inventory.Preset("large")
		steps := trace.GenerateMergeSortSteps(items, inventory.Name)
		divides, merges := 0, 0
		for _, s := range steps {
			switch s.Kind {
			case trace.Divide:
				divides++
				Expect(s.Arrays).To(HaveLen(2))
				Expect(len(s.Arrays[0])).To(BeNumerically("<=", len(s.Arrays[1])))
			case trace.Compare:
				Expect(s.Comparing).NotTo(BeNil())
				Expect(s.Comparing[0]).To(BeNumerically("<", len(s.Arrays[0])))
				Expect(s.Comparing[1]).To(BeNumerically("<", len(s.Arrays[1])))
			case trace.Merge:
				merges++
			}
		}
		// A binary split of n leaves has n-1 internal nodes.
		Expect(divides).To(Equal(len(items) - 1))
		Expect(merges).To(Equal(divides))
	})

	It("stops when the consumer stops", func() {
		n := 0
		for range trace.MergeSortSteps(inventory.Sample(), inventory.Name) {
			n++
			if n == 3 {
				break
			}
		}
		Expect(n).To(Equal(3))
	})
})

var _ = Describe("StableSort", func() {
	It("matches the traced result without emitting steps", func() {
		items, _ := inventory.Preset("large")
		for _, f := range inventory.Fields {
			Expect(trace.StableSort(items, f)).To(Equal(lastArray(trace.GenerateMergeSortSteps(items, f))))
		}
	})
})
