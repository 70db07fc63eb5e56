package octree

import "math"

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes    int
	Leaves   int
	Internal int
	Points   int
	MaxDepth int
	// MaxLeafPoints is the population of the most crowded leaf. Terminal
	// leaves grow without bound when many points share a cell.
	MaxLeafPoints int
	MinLeafSize   float64
}

// Walk visits the nodes of the tree in pre-order, children in octant order.
// When fn returns false the children of that node are skipped.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(n *Node, depth int) bool) {
	if !fn(n, depth) || n.children == nil {
		return
	}

	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}

// Stats walks the whole tree and counts its nodes and points.
func (t *Tree) Stats() Stats {
	stats := Stats{MinLeafSize: math.Inf(1)}

	t.Walk(func(n *Node, depth int) bool {
		stats.Nodes++
		stats.MaxDepth = max(stats.MaxDepth, depth)

		if !n.IsLeaf() {
			stats.Internal++
			return true
		}

		stats.Leaves++
		stats.Points += len(n.points)
		stats.MaxLeafPoints = max(stats.MaxLeafPoints, len(n.points))
		stats.MinLeafSize = math.Min(stats.MinLeafSize, n.size)
		return true
	})

	return stats
}
