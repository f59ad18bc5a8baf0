package geometry3D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoSplitIdentity(t *testing.T) {
	tetra := NewNonConformingTetraMapping(NoSplit, 0)
	for _, c := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1. / 3, 1. / 3, 1. / 3}} {
		p := tetra.Child2Parent(c)
		assert.True(t, nearVec(c[:], p[:], 1.e-15))
	}

	hexa := NewNonConformingHexaMapping(NoSplit, 0)
	for _, c := range [][2]float64{{0, 0}, {1, 1}, {0.3, 0.7}} {
		p := hexa.Child2Parent(c)
		assert.True(t, nearVec(c[:], p[:], 1.e-15))
	}
}

func TestTetraEdgeBisection(t *testing.T) {
	var (
		v0 = [3]float64{1, 0, 0}
		v1 = [3]float64{0, 1, 0}
		v2 = [3]float64{0, 0, 1}
	)
	mid := func(a, b [3]float64) (m [3]float64) {
		for i := 0; i < 3; i++ {
			m[i] = 0.5 * (a[i] + b[i])
		}
		return
	}
	m01 := mid(v0, v1)
	m12 := mid(v1, v2)
	m20 := mid(v2, v0)

	// each case lists the parent-frame images of the child's three vertices
	cases := []struct {
		rule     RefinementRule
		child    int
		expected [3][3]float64
	}{
		{EdgeBisect01, 0, [3][3]float64{v0, m01, v2}},
		{EdgeBisect01, 1, [3][3]float64{m01, v1, v2}},
		{EdgeBisect12, 0, [3][3]float64{v0, v1, m12}},
		{EdgeBisect12, 1, [3][3]float64{v0, m12, v2}},
		{EdgeBisect20, 0, [3][3]float64{v0, v1, m20}},
		{EdgeBisect20, 1, [3][3]float64{m20, v1, v2}},
	}
	childVerts := [3][3]float64{v0, v1, v2}
	for _, tc := range cases {
		ncm := NewNonConformingTetraMapping(tc.rule, tc.child)
		for k := 0; k < 3; k++ {
			p := ncm.Child2Parent(childVerts[k])
			assert.True(t, nearVec(tc.expected[k][:], p[:], 1.e-15),
				"rule %v child %d vertex %d", tc.rule, tc.child, k)
		}
		// barycentric coordinates must stay a partition of unity
		p := ncm.Child2Parent([3]float64{0.2, 0.3, 0.5})
		assert.True(t, near(1, p[0]+p[1]+p[2], 1.e-15))
	}
}

func TestTetraIso4Tiling(t *testing.T) {
	var (
		v0  = [3]float64{1, 0, 0}
		v1  = [3]float64{0, 1, 0}
		v2  = [3]float64{0, 0, 1}
		m01 = [3]float64{0.5, 0.5, 0}
		m12 = [3]float64{0, 0.5, 0.5}
		m20 = [3]float64{0.5, 0, 0.5}
	)
	// images of the child reference triangle: three corner triangles plus
	// the center triangle, together tiling the parent exactly
	expected := [4][3][3]float64{
		{v0, m01, m20},
		{m01, v1, m12},
		{m20, m12, v2},
		{m12, m20, m01},
	}
	childVerts := [3][3]float64{v0, v1, v2}
	for child := 0; child < 4; child++ {
		ncm := NewNonConformingTetraMapping(Iso4, child)
		for k := 0; k < 3; k++ {
			p := ncm.Child2Parent(childVerts[k])
			assert.True(t, nearVec(expected[child][k][:], p[:], 1.e-15),
				"child %d vertex %d", child, k)
		}
	}

	// centroid images are the sub-triangle centroids, all distinct
	centroid := [3]float64{1. / 3, 1. / 3, 1. / 3}
	var images [4][3]float64
	for child := 0; child < 4; child++ {
		ncm := NewNonConformingTetraMapping(Iso4, child)
		images[child] = ncm.Child2Parent(centroid)
		assert.True(t, near(1, images[child][0]+images[child][1]+images[child][2], 1.e-15))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			assert.False(t, nearVec(images[i][:], images[j][:], 1.e-12))
		}
	}
}

func TestHexaIso4Tiling(t *testing.T) {
	// child k maps the unit square onto the quarter square at canonical
	// corner k
	expected := [4][2]float64{{0, 0}, {0.5, 0}, {0, 0.5}, {0.5, 0.5}}
	for child := 0; child < 4; child++ {
		ncm := NewNonConformingHexaMapping(Iso4, child)
		lo := ncm.Child2Parent([2]float64{0, 0})
		hi := ncm.Child2Parent([2]float64{1, 1})
		assert.True(t, nearVec([]float64{expected[child][0], expected[child][1]}, lo[:], 1.e-15))
		assert.True(t, nearVec([]float64{expected[child][0] + 0.5, expected[child][1] + 0.5}, hi[:], 1.e-15))
	}

	// shared corner: all four children meet at the parent center
	for child := 0; child < 4; child++ {
		ncm := NewNonConformingHexaMapping(Iso4, child)
		c := [2]float64{1 - float64(child&1), 1 - float64(child>>1)}
		p := ncm.Child2Parent(c)
		assert.True(t, nearVec([]float64{0.5, 0.5}, p[:], 1.e-15))
	}
}

func TestNonConformingContractViolations(t *testing.T) {
	assert.Panics(t, func() { NewNonConformingHexaMapping(EdgeBisect01, 0) })
	assert.Panics(t, func() { NewNonConformingTetraMapping(Iso4, 4) })
	assert.Panics(t, func() { NewNonConformingTetraMapping(EdgeBisect12, -1) })
	assert.Panics(t, func() { NewNonConformingHexaMapping(NoSplit, 1) })
	assert.Panics(t, func() { NewNonConformingTetraMapping(RefinementRule(9), 0) })
}
