package mines

// toggleFlag flips the flag on a hidden cell. Revealed cells are never
// flagged; the call is a no-op for them. It reports whether anything changed.
func (b *Board) toggleFlag(i int) bool {
	c := &b.cells[i]
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}

// flagCount returns the number of flagged cells.
func (b *Board) flagCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Flagged {
			n++
		}
	}
	return n
}
