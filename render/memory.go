package render

import (
	"strconv"
	"strings"

	"github.com/reusee/memsim/memory"
)

const rulerStep = 10

// Memory draws one bracketed group per block, '#' for allocated and '.' for free cells,
// with a line of cell indexes under every tenth cell.
func Memory(blocks []memory.Block) string {
	var cells strings.Builder
	var labels []label
	column := 0
	for _, block := range blocks {
		cells.WriteByte('[')
		column++
		for offset, cell := range block.Cells {
			if index := block.Start + offset; index%rulerStep == 0 {
				labels = append(labels, label{
					column: column,
					text:   strconv.Itoa(index),
				})
			}
			if cell.Allocated {
				cells.WriteByte('#')
			} else {
				cells.WriteByte('.')
			}
			column++
		}
		cells.WriteByte(']')
		column++
	}

	ruler := []byte(strings.Repeat(" ", column))
	end := 0
	for _, l := range labels {
		if l.column < end {
			continue
		}
		if l.column+len(l.text) > len(ruler) {
			ruler = append(ruler, strings.Repeat(" ", l.column+len(l.text)-len(ruler))...)
		}
		copy(ruler[l.column:], l.text)
		end = l.column + len(l.text) + 1
	}

	return cells.String() + "\n" + strings.TrimRight(string(ruler), " ")
}

type label struct {
	column int
	text   string
}
