// Package memory simulates a boundary-tag allocator over a flat array of cells.
//
// Reserved cells start chunks and link to the next reserved cell by index,
// forming a chain that begins at the sentinel cell 0. A chunk opened by a
// reserved cell i spans up to the next reserved cell; an allocation uses its
// first cell as header, so the pointer handed out is header+1.
package memory

import (
	"fmt"
	"strconv"
)

// NoBoundary marks a reserved cell that has no following reserved cell.
const NoBoundary = -1

type Cell struct {
	Allocated bool
	Reserved  bool
	// Next is the index of the next reserved cell, meaningful on reserved cells only
	Next int
}

type Allocator struct {
	cells    []Cell
	strategy Strategy
}

func New(size int, strategy Strategy) (*Allocator, error) {
	a := &Allocator{
		strategy: strategy,
	}
	if err := a.Reset(size); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset replaces the cell array with size unallocated cells.
func (a *Allocator) Reset(size int) error {
	if size < 1 {
		return MemorySizeError(fmt.Sprintf("Got %d.", size))
	}
	cells := make([]Cell, size)
	for i := range cells {
		cells[i].Next = NoBoundary
	}
	cells[0].Reserved = true
	a.cells = cells
	return nil
}

func (a *Allocator) Size() int {
	return len(a.cells)
}

func (a *Allocator) Strategy() Strategy {
	return a.strategy
}

func (a *Allocator) SetStrategy(s Strategy) {
	a.strategy = s
}

// Cells returns a copy of the cell array.
func (a *Allocator) Cells() []Cell {
	ret := make([]Cell, len(a.cells))
	copy(ret, a.cells)
	return ret
}

// end returns the index one past the chunk opened by reserved cell i.
func (a *Allocator) end(i int) int {
	next := a.cells[i].Next
	if next == NoBoundary || next > len(a.cells) {
		return len(a.cells)
	}
	return next
}

// walk calls fn for every reserved cell in chain order until fn returns false.
func (a *Allocator) walk(fn func(i int) bool) {
	for i, steps := 0, 0; i >= 0 && i < len(a.cells) && steps < len(a.cells); steps++ {
		next := a.cells[i].Next
		if !fn(i) {
			return
		}
		if next <= i {
			return
		}
		i = next
	}
}

type chunk struct {
	// boundary is the reserved cell opening the chunk
	boundary int
	// header is the cell an allocation in this chunk starts at
	header int
	length int
}

func (a *Allocator) freeChunks() []chunk {
	var ret []chunk
	a.walk(func(i int) bool {
		if a.cells[i].Allocated {
			return true
		}
		header := i
		if i == 0 {
			// the sentinel is never handed out; its run starts after it
			header = 1
		}
		length := a.end(i) - header - 1
		if i == 0 && length < 1 {
			return true
		}
		ret = append(ret, chunk{
			boundary: i,
			header:   header,
			length:   length,
		})
		return true
	})
	return ret
}

// pick selects a chunk for a request of size cells according to the strategy.
// BestFit and WorstFit choose the extremal chunk first and only then check the fit.
func (a *Allocator) pick(size int) (ret chunk, ok bool) {
	chunks := a.freeChunks()
	if len(chunks) == 0 {
		return
	}
	switch a.strategy {

	case FirstFit:
		for _, c := range chunks {
			if c.length >= size {
				return c, true
			}
		}
		return

	case BestFit:
		ret = chunks[0]
		for _, c := range chunks[1:] {
			if c.length < ret.length {
				ret = c
			}
		}

	case WorstFit:
		ret = chunks[0]
		for _, c := range chunks[1:] {
			if c.length > ret.length {
				ret = c
			}
		}

	default:
		return
	}

	if ret.length < size {
		return ret, false
	}
	return ret, true
}

// Allocate reserves size payload cells plus one header cell and returns the pointer to the first payload cell.
func (a *Allocator) Allocate(size int) (int, error) {
	if size == 0 {
		return 0, SizeZeroError()
	} else if size < 0 {
		return 0, SizeNegativeError()
	}

	c, ok := a.pick(size)
	if !ok {
		return 0, OutOfMemoryError(strconv.Itoa(size), a.strategy)
	}

	prevNext := a.cells[c.boundary].Next
	if c.header != c.boundary {
		a.cells[c.boundary].Next = c.header
	}

	start := c.header
	for i := start; i <= start+size; i++ {
		a.cells[i].Allocated = true
	}
	a.cells[start].Reserved = true

	next := start + size + 1
	if next >= len(a.cells) {
		a.cells[start].Next = NoBoundary
	} else {
		a.cells[start].Next = next
		if !a.cells[next].Reserved {
			// split the remaining free run
			a.cells[next].Reserved = true
			a.cells[next].Next = prevNext
		}
	}

	return start + 1, nil
}

func (a *Allocator) Release(pointer int) error {
	idx := pointer - 1
	if idx < 0 || idx >= len(a.cells) {
		return PointerOutOfBoundsError(strconv.Itoa(pointer))
	}
	if !a.cells[idx].Reserved || !a.cells[idx].Allocated {
		return PointerNotChunkStartError(pointer)
	}
	a.cells[idx].Allocated = false
	for i := pointer; i < len(a.cells); i++ {
		if a.cells[i].Reserved {
			break
		}
		a.cells[i].Allocated = false
	}
	return nil
}

// ReleaseAll releases every allocated chunk and returns how many were released.
func (a *Allocator) ReleaseAll() (n int) {
	a.walk(func(i int) bool {
		if a.cells[i].Allocated {
			if err := a.Release(i + 1); err != nil {
				panic(err) // chain cells are reserved
			}
			n++
		}
		return true
	})
	return
}

// Resize grows or shrinks the memory space, keeping existing cells.
func (a *Allocator) Resize(size int) error {
	if size < 1 {
		return MemorySizeError(fmt.Sprintf("Got %d.", size))
	}
	oldSize := len(a.cells)
	if size == oldSize {
		return nil
	}

	if size > oldSize {
		capLast := a.cells[oldSize-1].Allocated
		last := 0
		if capLast {
			a.walk(func(i int) bool {
				last = i
				return true
			})
		}
		for i := oldSize; i < size; i++ {
			a.cells = append(a.cells, Cell{
				Next: NoBoundary,
			})
		}
		if capLast {
			// the trailing chunk was allocated up to the old bound
			a.cells[oldSize].Reserved = true
			a.cells[last].Next = oldSize
		}
		return nil
	}

	a.cells = a.cells[:size:size]
	for i := range a.cells {
		if a.cells[i].Next >= size {
			a.cells[i].Next = NoBoundary
		}
	}
	return nil
}

// Coalesce merges adjacent free chunks and returns the number of merges.
func (a *Allocator) Coalesce() (merged int) {
	ptr := 0
	for {
		if ptr < 0 || ptr >= len(a.cells) {
			break
		}
		next := a.cells[ptr].Next
		if next < 0 || next >= len(a.cells) {
			break
		}
		if !a.cells[ptr].Allocated && !a.cells[next].Allocated {
			a.cells[ptr].Next = a.cells[next].Next
			a.cells[next].Next = NoBoundary
			a.cells[next].Reserved = false
			merged++
			continue
		}
		ptr = next
	}
	return
}
