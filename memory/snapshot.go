package memory

// Block is a run of cells between two reserved cells.
type Block struct {
	Allocated bool
	// Start is the index of the first cell
	Start int
	Cells []Cell
}

func (b Block) Len() int {
	return len(b.Cells)
}

// Snapshot groups the cells into blocks, split at every reserved cell.
func (a *Allocator) Snapshot() []Block {
	var blocks []Block
	for i, cell := range a.cells {
		if i == 0 || cell.Reserved {
			blocks = append(blocks, Block{
				Allocated: cell.Allocated,
				Start:     i,
			})
		}
		last := &blocks[len(blocks)-1]
		last.Cells = append(last.Cells, cell)
	}
	return blocks
}
