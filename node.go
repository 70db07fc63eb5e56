package octree

import "github.com/go-gl/mathgl/mgl64"

// Node is a cubic region of the tree spanning center ± size on each axis.
// A leaf holds its points directly, an internal node owns exactly eight
// children and no points.
type Node struct {
	center   mgl64.Vec3
	size     float64
	points   []mgl64.Vec3
	children *[8]*Node
}

func newNode(center mgl64.Vec3, size float64) *Node {
	return &Node{
		center: center,
		size:   size,
	}
}

// Center returns the geometric center of the node
func (n *Node) Center() mgl64.Vec3 {
	return n.center
}

// Size returns the half-extent of the node
func (n *Node) Size() float64 {
	return n.size
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// IsTerminal reports whether the node is too small to ever subdivide
func (n *Node) IsTerminal() bool {
	return n.size <= MinCellSize
}

// Points returns a copy of the points held by a leaf, in insertion order.
// It is always empty for an internal node.
func (n *Node) Points() []mgl64.Vec3 {
	points := make([]mgl64.Vec3, len(n.points))
	copy(points, n.points)
	return points
}

// Child returns the child at the given octant, or nil for a leaf.
func (n *Node) Child(octant int) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[octant]
}

// Bounds returns the box covered by the node
func (n *Node) Bounds() AABB {
	extent := mgl64.Vec3{n.size, n.size, n.size}
	return AABB{
		Min: n.center.Sub(extent),
		Max: n.center.Add(extent),
	}
}

func (n *Node) insert(p mgl64.Vec3) {
	if n.IsTerminal() {
		n.points = append(n.points, p)
		return
	}

	if n.children == nil {
		n.subdivide()
	}

	n.children[Octant(n.center, p)].insert(p)
}

// subdivide turns a leaf into an internal node and pushes its points down.
func (n *Node) subdivide() {
	half := n.size / 2

	var children [8]*Node
	for i := range children {
		children[i] = newNode(n.center.Add(OctantOffset(i, half)), half)
	}

	for _, p := range n.points {
		children[Octant(n.center, p)].insert(p)
	}

	n.points = nil
	n.children = &children
}

func (n *Node) query(p mgl64.Vec3) (mgl64.Vec3, bool) {
	if n.IsTerminal() {
		for _, stored := range n.points {
			if stored == p {
				return stored, true
			}
		}
		return mgl64.Vec3{}, false
	}

	if n.children == nil {
		return mgl64.Vec3{}, false
	}

	return n.children[Octant(n.center, p)].query(p)
}
