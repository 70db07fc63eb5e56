// Package octree implements a point octree: a spatial index over 3D points
// supporting insertion with lazy subdivision and exact point lookup.
//
// Nodes split in eight the first time a point is routed through them, until
// their size reaches MinCellSize. Nodes at that size are terminal leaves
// and accumulate every point that falls into them, without any capacity limit.
//
// A Tree is not safe for concurrent use.
package octree

import "github.com/go-gl/mathgl/mgl64"

type Tree struct {
	root  *Node
	count int
}

// NewTree creates an empty tree whose root spans center ± size on each axis.
// Points outside of that region are still accepted; they are routed to the
// outermost octants.
func NewTree(center mgl64.Vec3, size float64) *Tree {
	return &Tree{
		root: newNode(center, size),
	}
}

// Insert adds p to the tree. Duplicates are kept.
func (t *Tree) Insert(p mgl64.Vec3) {
	t.root.insert(p)
	t.count++
}

// Query returns the stored point exactly equal to p, if any
func (t *Tree) Query(p mgl64.Vec3) (mgl64.Vec3, bool) {
	return t.root.query(p)
}

// Contains reports whether a point exactly equal to p was inserted
func (t *Tree) Contains(p mgl64.Vec3) bool {
	_, ok := t.root.query(p)
	return ok
}

// Len returns the number of inserted points, duplicates included
func (t *Tree) Len() int {
	return t.count
}

func (t *Tree) Root() *Node {
	return t.root
}
