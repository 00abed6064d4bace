package seq_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/seqdemo/internal/seq"
)

// Demonstrate Go table-driven testing best practice using Ginkgo's DescribeTable
var _ = Describe("Table-Driven Removal Tests", func() {
	DescribeTable("RemoveValue over assorted sequences",
		func(input []int, target int, expected []int) {
			result := seq.RemoveValue(input, target)
			if len(expected) == 0 {
				Expect(result).To(BeEmpty())
			} else {
				Expect(result).To(Equal(expected))
			}
		},
		Entry("reference sequence, target present", []int{1, 2, 3, 2, 5, 2, 6, 2, 4, 8}, 2, []int{1, 3, 5, 6, 4, 8}),
		Entry("target absent", []int{1, 3, 5, 6, 4, 8}, 2, []int{1, 3, 5, 6, 4, 8}),
		Entry("all elements match", []int{9, 9, 9, 9}, 9, []int{}),
		Entry("single element kept", []int{2, 2, 7, 2}, 2, []int{7}),
		Entry("empty input", []int{}, 2, []int{}),
	)

	DescribeTable("RemoveIf with the odd predicate",
		func(input []int, expected []int) {
			result := seq.RemoveIf(input, func(e int) bool { return e%2 != 0 })
			if len(expected) == 0 {
				Expect(result).To(BeEmpty())
			} else {
				Expect(result).To(Equal(expected))
			}
		},
		Entry("mixed parity", []int{1, 3, 5, 6, 4, 8}, []int{6, 4, 8}),
		Entry("all even", []int{2, 4, 6}, []int{2, 4, 6}),
		Entry("all odd", []int{1, 3, 5}, []int{}),
		Entry("empty input", []int{}, []int{}),
	)

	DescribeTable("End-to-end scenario stages",
		func(stage func([]int) []int, input []int, expected []int) {
			Expect(stage(input)).To(Equal(expected))
		},
		Entry("remove value 2",
			func(s []int) []int { return seq.RemoveValue(s, 2) },
			[]int{1, 2, 3, 2, 5, 2, 6, 2, 4, 8},
			[]int{1, 3, 5, 6, 4, 8}),
		Entry("then remove odd",
			func(s []int) []int { return seq.RemoveIf(s, func(e int) bool { return e%2 != 0 }) },
			[]int{1, 3, 5, 6, 4, 8},
			[]int{6, 4, 8}),
	)
})
