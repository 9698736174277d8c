package render

import (
	"github.com/reusee/memsim/memory"
	"go.yaml.in/yaml/v3"
)

// BlockView is the serialized form of a block.
type BlockView struct {
	Start     int  `yaml:"start" json:"start"`
	Length    int  `yaml:"length" json:"length"`
	Allocated bool `yaml:"allocated" json:"allocated"`
	// Next is the link held by the first cell, -1 for none
	Next int `yaml:"next" json:"next"`
}

func Views(blocks []memory.Block) []BlockView {
	ret := make([]BlockView, 0, len(blocks))
	for _, block := range blocks {
		next := memory.NoBoundary
		if len(block.Cells) > 0 {
			next = block.Cells[0].Next
		}
		ret = append(ret, BlockView{
			Start:     block.Start,
			Length:    block.Len(),
			Allocated: block.Allocated,
			Next:      next,
		})
	}
	return ret
}

type yamlSnapshot struct {
	Method string      `yaml:"method,omitempty"`
	Stats  yamlStats   `yaml:"stats"`
	Blocks []BlockView `yaml:"blocks"`
}

type yamlStats struct {
	Cells       int `yaml:"cells"`
	Used        int `yaml:"used"`
	FreeChunks  int `yaml:"free_chunks"`
	LargestFree int `yaml:"largest_free"`
}

// YAML dumps a snapshot, with the allocation method when not empty.
func YAML(blocks []memory.Block, method string) ([]byte, error) {
	stats := NewStats(blocks)
	return yaml.Marshal(yamlSnapshot{
		Method: method,
		Stats: yamlStats{
			Cells:       stats.Cells,
			Used:        stats.Used,
			FreeChunks:  stats.FreeChunks,
			LargestFree: stats.LargestFree,
		},
		Blocks: Views(blocks),
	})
}
