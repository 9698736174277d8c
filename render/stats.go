package render

import (
	"fmt"

	"github.com/reusee/memsim/memory"
	"github.com/samber/lo"
)

type Stats struct {
	Cells       int
	Used        int
	Free        int
	FreeChunks  int
	LargestFree int
}

func NewStats(blocks []memory.Block) Stats {
	free := lo.Filter(blocks, func(b memory.Block, _ int) bool {
		return !b.Allocated
	})
	length := func(b memory.Block) int {
		return b.Len()
	}
	ret := Stats{
		Cells:      lo.SumBy(blocks, length),
		Free:       lo.SumBy(free, length),
		FreeChunks: len(free),
	}
	ret.Used = ret.Cells - ret.Free
	if len(free) > 0 {
		ret.LargestFree = lo.MaxBy(free, func(a, b memory.Block) bool {
			return a.Len() > b.Len()
		}).Len()
	}
	return ret
}

func (s Stats) String() string {
	return fmt.Sprintf("cells=%d used=%d free=%d free_chunks=%d largest_free=%d",
		s.Cells,
		s.Used,
		s.Free,
		s.FreeChunks,
		s.LargestFree,
	)
}
