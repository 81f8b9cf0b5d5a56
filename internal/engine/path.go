package engine

import (
	"container/heap"
	"math"

	"raywizard/internal/geom"
)

const (
	cardinalCost    = 2
	diagonalCost    = 3
	occupiedPenalty = 10
	unreachable     = math.MaxInt32
)

// costGrid is a per-cell entry cost; zero marks a cell that cannot be entered.
type costGrid [][]int

// moveCosts returns a's entry cost for every cell of the level.
func (w *World) moveCosts(a *Actor) costGrid {
	m := w.Level.Map
	cost := make(costGrid, m.Height)
	for y := range m.Height {
		cost[y] = make([]int, m.Width)
		for x := range m.Width {
			cost[y][x] = a.MoveCost(m.Tile(x, y))
		}
	}
	return cost
}

func stepCost(d geom.Direction) int {
	if d.Diagonal() {
		return diagonalCost
	}
	return cardinalCost
}

func (c costGrid) in(p geom.Point) bool {
	return p.Y >= 0 && p.Y < len(c) && p.X >= 0 && p.X < len(c[p.Y])
}

// octile is an admissible estimate for the 2/3 step weights.
func octile(a, b geom.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	lo, hi := min(dx, dy), max(dx, dy)
	return diagonalCost*lo + cardinalCost*(hi-lo)
}

type node struct {
	p    geom.Point
	prio int
	seq  int
}

type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].prio != q[j].prio {
		return q[i].prio < q[j].prio
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)   { *q = append(*q, x.(node)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// findPath runs A* from src to dst over cost. The returned path starts with
// the first step after src and ends at dst; it is nil when dst cannot be
// reached or equals src.
func findPath(cost costGrid, src, dst geom.Point) []geom.Point {
	if src == dst || !cost.in(src) || !cost.in(dst) || cost[dst.Y][dst.X] == 0 {
		return nil
	}
	dist := map[geom.Point]int{src: 0}
	from := map[geom.Point]geom.Point{}
	q := &nodeQueue{{p: src, prio: octile(src, dst)}}
	seq := 0
	for q.Len() > 0 {
		cur := heap.Pop(q).(node)
		if cur.p == dst {
			break
		}
		if cur.prio-octile(cur.p, dst) > dist[cur.p] {
			continue // stale
		}
		for _, d := range geom.Neighbors8 {
			n := cur.p.Add(d)
			if !cost.in(n) || cost[n.Y][n.X] == 0 {
				continue
			}
			nd := dist[cur.p] + cost[n.Y][n.X]*stepCost(d)
			if old, seen := dist[n]; seen && old <= nd {
				continue
			}
			dist[n] = nd
			from[n] = cur.p
			seq++
			heap.Push(q, node{p: n, prio: nd + octile(n, dst), seq: seq})
		}
	}
	if _, ok := dist[dst]; !ok {
		return nil
	}
	var path []geom.Point
	for p := dst; p != src; p = from[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// distanceMap propagates the seeded distances outward over cost with the
// 2/3 step weights. Cells with zero cost are never entered.
func distanceMap(dist [][]int, cost costGrid) {
	q := &nodeQueue{}
	seq := 0
	for y := range dist {
		for x := range dist[y] {
			if dist[y][x] < unreachable {
				seq++
				heap.Push(q, node{p: geom.Point{X: x, Y: y}, prio: dist[y][x], seq: seq})
			}
		}
	}
	for q.Len() > 0 {
		cur := heap.Pop(q).(node)
		if cur.prio > dist[cur.p.Y][cur.p.X] {
			continue
		}
		for _, d := range geom.Neighbors8 {
			n := cur.p.Add(d)
			if !cost.in(n) || cost[n.Y][n.X] == 0 {
				continue
			}
			nd := cur.prio + cost[n.Y][n.X]*stepCost(d)
			if nd < dist[n.Y][n.X] {
				dist[n.Y][n.X] = nd
				seq++
				heap.Push(q, node{p: n, prio: nd, seq: seq})
			}
		}
	}
}

// descend returns the neighbour of p with the lowest distance below p's own,
// or false if no neighbour improves on it.
func descend(dist [][]int, p geom.Point) (geom.Direction, bool) {
	best := dist[p.Y][p.X]
	var step geom.Direction
	found := false
	for _, d := range geom.Neighbors8 {
		n := p.Add(d)
		if n.Y < 0 || n.Y >= len(dist) || n.X < 0 || n.X >= len(dist[n.Y]) {
			continue
		}
		if dist[n.Y][n.X] < best {
			best, step, found = dist[n.Y][n.X], d, true
		}
	}
	return step, found
}
