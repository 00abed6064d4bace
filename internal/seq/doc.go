// Package seq implements in-place removal of elements from an integer
// sequence using the partition/truncate idiom:
//
//   - Partition: stable-partitions survivors to the front and returns the
//     boundary index, leaving stale values in the tail
//   - Truncate: discards everything from the boundary onward
//   - RemoveValue / RemoveIf: both steps collapsed into one call, driven by
//     an equality target or a predicate
//
// All operations preserve the relative order of surviving elements and are
// total over any input, including sequences where nothing or everything
// matches.
package seq
