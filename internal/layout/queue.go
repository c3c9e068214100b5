package layout

import (
	"container/heap"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

type node struct {
	cell  entities.Coord
	dist2 int
}

// frontier is a min-heap ordered by squared distance to the target, then
// lower Z, then lower X
type frontier []node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.dist2 != b.dist2 {
		return a.dist2 < b.dist2
	}
	if a.cell.Z != b.cell.Z {
		return a.cell.Z < b.cell.Z
	}
	return a.cell.X < b.cell.X
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(node)) }

func (f *frontier) Pop() any {
	old := *f
	n := old[len(old)-1]
	*f = old[:len(old)-1]
	return n
}

var _ heap.Interface = (*frontier)(nil)

func dist2(a, b entities.Coord) int {
	dx, dz := a.X-b.X, a.Z-b.Z
	return dx*dx + dz*dz
}
