// Package words deduplicates whitespace-separated words by collecting them
// into a set, mirroring the sorted-unique behavior of an ordered set insert.
package words
