package geometry3D

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/notargets/gogrid/utils"

	"github.com/stretchr/testify/assert"
)

// unit reference cube in canonical bit-pattern order
func unitCubeCorners() *[8][3]float64 {
	return &[8][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
}

// curved hex: unit cube with corners pulled off the lattice so that the
// mapping is genuinely trilinear, not affine
func distortedCorners() *[8][3]float64 {
	c := unitCubeCorners()
	c[1] = [3]float64{1.1, -0.05, 0.08}
	c[3] = [3]float64{1.05, 1.15, -0.04}
	c[6] = [3]float64{-0.08, 1.1, 1.2}
	c[7] = [3]float64{1.2, 1.05, 1.1}
	return c
}

func TestTrilinearIdentity(t *testing.T) {
	tm := NewTrilinearMapping(unitCubeCorners())
	points := [][3]float64{
		{0, 0, 0}, {1, 1, 1}, {0.5, 0.5, 0.5}, {0.25, 0.75, 0.1},
	}
	for _, xi := range points {
		x := tm.MapToWorld(xi)
		assert.True(t, nearVec(xi[:], x[:], 1.e-14))

		det, err := tm.Det(xi)
		assert.NoError(t, err)
		assert.True(t, near(1, det, 1.e-14))

		Dfi, err := tm.JacobianInverse(xi)
		assert.NoError(t, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.
				if i == j {
					want = 1.
				}
				assert.True(t, near(want, Dfi.At(i, j), 1.e-14))
			}
		}
	}
}

func TestTrilinearAffine(t *testing.T) {
	// x = A*xi + b applied to the unit cube corners: the Jacobian must be A
	// everywhere, with constant determinant det(A)
	A := utils.NewMatrix(3, 3, []float64{
		2, 1, 0,
		0, 3, 0.5,
		1, 0, 2,
	})
	b := [3]float64{-1, 2, 0.5}
	corners := unitCubeCorners()
	for k := 0; k < 8; k++ {
		v := A.MulVec3(corners[k])
		for i := 0; i < 3; i++ {
			corners[k][i] = v[i] + b[i]
		}
	}
	tm := NewTrilinearMapping(corners)

	Ainv, err := A.Inverse()
	assert.NoError(t, err)
	detA := A.Det()

	for _, xi := range [][3]float64{{0.5, 0.5, 0.5}, {0.1, 0.9, 0.3}, {0, 0, 1}} {
		det, err := tm.Det(xi)
		assert.NoError(t, err)
		assert.True(t, near(detA, det, 1.e-12))

		Dfi, err := tm.JacobianInverse(xi)
		assert.NoError(t, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.True(t, near(Ainv.At(i, j), Dfi.At(i, j), 1.e-12))
			}
		}
	}
}

func TestTrilinearRoundTrip(t *testing.T) {
	params := MappingParameters{Epsilon: 1.e-12, NewtonMaxIter: 50}
	tm := NewTrilinearMappingParams(distortedCorners(), params)
	points := [][3]float64{
		{0.5, 0.5, 0.5},
		{0.1, 0.2, 0.3},
		{0.9, 0.85, 0.1},
		{0.01, 0.99, 0.5},
	}
	for _, xi := range points {
		x := tm.MapToWorld(xi)
		xiBack, err := tm.WorldToMap(x)
		assert.NoError(t, err)
		assert.True(t, nearVec(xi[:], xiBack[:], 1.e-10))
	}
}

func TestTrilinearDegenerate(t *testing.T) {
	// collapse the element to zero volume: the top face coincides with the
	// bottom face
	corners := unitCubeCorners()
	for k := 4; k < 8; k++ {
		corners[k][2] = 0
	}
	tm := NewTrilinearMapping(corners)

	centroid := [3]float64{0.5, 0.5, 0.5}
	_, err := tm.JacobianInverse(centroid)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateJacobian))

	_, err = tm.Det(centroid)
	assert.True(t, errors.Is(err, ErrDegenerateJacobian))

	_, err = tm.WorldToMap([3]float64{0.5, 0.5, 0.5})
	assert.True(t, errors.Is(err, ErrDegenerateJacobian))
}

func TestTrilinearNonConvergence(t *testing.T) {
	// a curved hex cannot be inverted in a single Newton step unless the
	// target happens to be the center image
	params := MappingParameters{Epsilon: 1.e-12, NewtonMaxIter: 1}
	tm := NewTrilinearMappingParams(distortedCorners(), params)
	x := tm.MapToWorld([3]float64{0.9, 0.9, 0.9})
	_, err := tm.WorldToMap(x)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNewtonNoConvergence))
}

func TestTrilinearCopySemantics(t *testing.T) {
	tm := NewTrilinearMappingParams(distortedCorners(), MappingParameters{Epsilon: 1.e-12, NewtonMaxIter: 50})
	cp := *tm

	// prime the two caches at different points, then cross-check: each copy
	// must answer correctly from its own scratch state
	xiA := [3]float64{0.2, 0.3, 0.4}
	xiB := [3]float64{0.7, 0.6, 0.5}
	detA0, err := tm.Det(xiA)
	assert.NoError(t, err)
	detB0, err := cp.Det(xiB)
	assert.NoError(t, err)

	detA1, err := tm.Det(xiA)
	assert.NoError(t, err)
	detB1, err := cp.Det(xiB)
	assert.NoError(t, err)
	assert.True(t, near(detA0, detA1, 1.e-14))
	assert.True(t, near(detB0, detB1, 1.e-14))

	// and both still agree on a common point
	xA := tm.MapToWorld([3]float64{0.5, 0.5, 0.5})
	xB := cp.MapToWorld([3]float64{0.5, 0.5, 0.5})
	assert.True(t, nearVec(xA[:], xB[:], 1.e-14))
}

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			fmt.Printf("Diff = %v, Left[%d] = %v, Right[%d] = %v\n", math.Abs(val-b[i]), i, val, i, b[i])
			return false
		}
	}
	return true
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
