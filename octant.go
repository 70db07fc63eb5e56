package octree

import "github.com/go-gl/mathgl/mgl64"

// MinCellSize is the size at or below which a node never subdivides.
// Such a node keeps every point routed into it.
const MinCellSize = 0.1

// Octant returns the index in [0, 8) of the octant of center that contains p.
// Each axis contributes one bit, set when the coordinate of p is greater than
// or equal to the one of center: x is bit 2, y bit 1 and z bit 0.
func Octant(center, p mgl64.Vec3) int {
	octant := 0
	if p.X() >= center.X() {
		octant |= 4
	}
	if p.Y() >= center.Y() {
		octant |= 2
	}
	if p.Z() >= center.Z() {
		octant |= 1
	}

	return octant
}

// OctantOffset returns the offset from a parent center to the center of the
// child at index octant. A set bit adds half on its axis, a cleared bit subtracts it,
// so that Octant(c, c.Add(OctantOffset(i, h))) == i for any h > 0.
func OctantOffset(octant int, half float64) mgl64.Vec3 {
	return mgl64.Vec3{
		sign(octant&4 != 0) * half,
		sign(octant&2 != 0) * half,
		sign(octant&1 != 0) * half,
	}
}

func sign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}
