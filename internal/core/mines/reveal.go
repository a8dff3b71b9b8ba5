package mines

// reveal opens the safe cell at index start and cascades through
// zero-adjacency regions. It returns the number of cells newly revealed.
//
// The traversal is breadth-first over an explicit queue with a visited set,
// so each cell is processed at most once and stack depth stays constant.
// Cells with a positive count are revealed but never expanded. Flagged cells
// and mines are never entered.
func (b *Board) reveal(start int) int {
	visited := make([]bool, len(b.cells))
	queue := make([]int, 0, 16)
	queue = append(queue, start)
	visited[start] = true

	var buf [8]int
	revealed := 0
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		c := &b.cells[i]
		c.Revealed = true
		revealed++
		if c.AdjacentMines > 0 {
			continue
		}
		for _, n := range b.neighbors(i, buf[:0]) {
			if visited[n] {
				continue
			}
			nc := &b.cells[n]
			if nc.Revealed || nc.Flagged || nc.Mine {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return revealed
}

// revealMines exposes every mine for the end-of-game display. A flag on a
// mine is cleared so no cell is both revealed and flagged; flags on safe
// cells are untouched.
func (b *Board) revealMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Revealed = true
			b.cells[i].Flagged = false
		}
	}
}
