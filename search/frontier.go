package search

import "github.com/beka-birhanu/pathfinder-api/grid"

// frontierItem is one open-set entry. A cell may appear multiple times;
// stale entries are skipped on pop instead of being decreased in place.
type frontierItem struct {
	pos grid.Position
	g   int // best known cost from start when the entry was pushed
	f   int // g plus the Manhattan heuristic to the goal
	seq uint64
}

// frontier is a min-heap over f. Ties on f break toward the lower g, then
// toward earlier insertion (seq), giving the search a total, deterministic
// expansion order.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *frontier) Push(x any) {
	*q = append(*q, x.(*frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
