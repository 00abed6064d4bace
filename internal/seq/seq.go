package seq

import (
	"strconv"
	"strings"
)

// Partition stably moves every element satisfying keep to the front of s
// and returns the boundary index (the number of surviving elements).
// Relative order of survivors is preserved. Elements at and beyond the
// boundary are stale leftovers of the shuffle; callers that want a clean
// sequence must Truncate at the boundary.
func Partition(s []int, keep func(int) bool) int {
	write := 0

	for _, v := range s {
		if keep(v) {
			s[write] = v
			write++
		}
	}

	return write
}

// Truncate discards every element of s from index n onward.
func Truncate(s []int, n int) []int {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}

	return s[:n]
}

// RemoveValue removes every element equal to v, preserving the relative
// order of the rest. Partition and Truncate collapsed into one step.
func RemoveValue(s []int, v int) []int {
	boundary := Partition(s, func(e int) bool { return e != v })

	return Truncate(s, boundary)
}

// RemoveIf removes every element for which pred returns true, preserving
// the relative order of the rest.
func RemoveIf(s []int, pred func(int) bool) []int {
	boundary := Partition(s, func(e int) bool { return !pred(e) })

	return Truncate(s, boundary)
}

// Format renders s as "[e1 e2 ... en]". An empty sequence renders as "[]"
// with no stray separators.
func Format(s []int) string {
	var b strings.Builder

	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}
