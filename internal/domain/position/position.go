// Package position computes ordering keys for siblings (lists in a board,
// cards in a list, checklists in a card, items in a checklist). Appending
// uses a fixed step past the current maximum so no sibling rows are
// rewritten; explicit reorders reindex the whole sibling set.
package position

// Step is the gap between consecutive position keys.
const Step = 1000

// Next returns a position strictly greater than every existing sibling
// position, or Step when the sibling set is empty.
func Next(existing []int64) int64 {
	max := int64(0)
	for _, pos := range existing {
		if pos > max {
			max = pos
		}
	}
	return max + Step
}

// ForIndex returns the position key for the 1-based element at index i
// of a fully reindexed sequence.
func ForIndex(i int) int64 {
	return int64(i+1) * Step
}

// Sequence returns position keys for n siblings in their new order.
func Sequence(n int) []int64 {
	seq := make([]int64, n)
	for i := range seq {
		seq[i] = ForIndex(i)
	}
	return seq
}
