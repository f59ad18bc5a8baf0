package mesh

import "fmt"

// Element storage keeps the reader's cyclic vertex ordering (bottom ring
// then top ring for bricks). The geometry3D mappings expect the canonical
// bit-pattern ordering, vertex k at (k&1, (k>>1)&1, (k>>2)&1), so corner
// extraction permutes here and geometry code never sees reader ordering.
var hexCyclicToCanonical = [8]int{0, 1, 3, 2, 4, 5, 7, 6}

// quad faces come out of GetElementFaces cyclic (v0,v1,v2,v3); canonical
// quad order is (0,0),(1,0),(0,1),(1,1)
var quadCyclicToCanonical = [4]int{0, 1, 3, 2}

// HexCorners fills the caller-owned corners array with the canonical-order
// corner coordinates of hexahedral element k. The caller passes the array a
// TrilinearMapping will borrow, so ownership of the coordinates stays with
// the caller for the mapping's lifetime
func (m *Mesh) HexCorners(k int, corners *[8][3]float64) error {
	if k < 0 || k >= m.NumElements {
		return fmt.Errorf("element index %d out of range [0,%d)", k, m.NumElements)
	}
	if m.ElementTypes[k] != Hex {
		return fmt.Errorf("element %d is a %v, not a Hex", k, m.ElementTypes[k])
	}
	verts := m.Elements[k]
	for c := 0; c < 8; c++ {
		v := m.Vertices[verts[hexCyclicToCanonical[c]]]
		corners[c][0], corners[c][1], corners[c][2] = v[0], v[1], v[2]
	}
	return nil
}

// QuadFaceCorners fills corners with the canonical-order coordinates of
// local quad face f of element k, for constructing a BilinearSurfaceMapping
func (m *Mesh) QuadFaceCorners(k, f int, corners *[4][3]float64) error {
	if k < 0 || k >= m.NumElements {
		return fmt.Errorf("element index %d out of range [0,%d)", k, m.NumElements)
	}
	faces := GetElementFaces(m.ElementTypes[k], m.Elements[k])
	if f < 0 || f >= len(faces) {
		return fmt.Errorf("face index %d out of range for %v element %d", f, m.ElementTypes[k], k)
	}
	face := faces[f]
	if len(face) != 4 {
		return fmt.Errorf("face %d of element %d is not a quad", f, k)
	}
	for c := 0; c < 4; c++ {
		v := m.Vertices[face[quadCyclicToCanonical[c]]]
		corners[c][0], corners[c][1], corners[c][2] = v[0], v[1], v[2]
	}
	return nil
}
