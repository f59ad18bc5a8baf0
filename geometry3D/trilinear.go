package geometry3D

import (
	"fmt"
	"math"

	"github.com/notargets/gogrid/utils"
)

/*
TrilinearMapping maps the unit reference hexahedron [0,1]^3 onto a physical
hexahedron given by 8 corner points:

	x(xi) = a0 + a1*xi0 + a2*xi1 + a3*xi2
	      + a4*xi0*xi1 + a5*xi1*xi2 + a6*xi2*xi0 + a7*xi0*xi1*xi2

Corners follow the canonical bit-pattern numbering, vertex k sits at
reference position (k&1, (k>>1)&1, (k>>2)&1):

	       6-------7
	      /|      /|       xi2
	     4-------5 |        |  xi1
	     | 2-----|-3        | /
	     |/      |/         |/
	     0-------1          +--- xi0

The mapping borrows the corner array from the owning mesh storage; it does
not copy it and does not observe later mutation of the corners. The
coefficients are fixed at construction, the Jacobian triple (Df, Dfi, DetDf)
is scratch state for the last evaluated point only.
*/
type TrilinearMapping struct {
	corners *[8][3]float64 // borrowed view, owned by mesh storage
	params  MappingParameters

	a [8][3]float64 // trilinear coefficients, one triple per basis monomial

	// Jacobian scratch, valid for lastXi only
	df      [3][3]float64
	dfi     [3][3]float64
	detDf   float64
	lastXi  [3]float64
	haveJac bool
}

// NewTrilinearMapping builds the mapping with default tolerances. Corners
// must be in canonical order; the caller keeps ownership and must keep the
// array alive for the life of the mapping
func NewTrilinearMapping(corners *[8][3]float64) *TrilinearMapping {
	return NewTrilinearMappingParams(corners, DefaultMappingParameters())
}

func NewTrilinearMappingParams(corners *[8][3]float64, params MappingParameters) (tm *TrilinearMapping) {
	tm = &TrilinearMapping{
		corners: corners,
		params:  params,
	}
	p := corners
	for i := 0; i < 3; i++ {
		tm.a[0][i] = p[0][i]
		tm.a[1][i] = p[1][i] - p[0][i]
		tm.a[2][i] = p[2][i] - p[0][i]
		tm.a[3][i] = p[4][i] - p[0][i]
		tm.a[4][i] = p[3][i] - p[2][i] - p[1][i] + p[0][i]
		tm.a[5][i] = p[6][i] - p[4][i] - p[2][i] + p[0][i]
		tm.a[6][i] = p[5][i] - p[4][i] - p[1][i] + p[0][i]
		tm.a[7][i] = p[7][i] - p[6][i] - p[5][i] + p[4][i] -
			p[3][i] + p[2][i] + p[1][i] - p[0][i]
	}
	return
}

// MapToWorld evaluates the trilinear polynomial at the reference point xi
func (tm *TrilinearMapping) MapToWorld(xi [3]float64) (x [3]float64) {
	return tm.MapToWorldXYZ(xi[0], xi[1], xi[2])
}

func (tm *TrilinearMapping) MapToWorldXYZ(xi0, xi1, xi2 float64) (x [3]float64) {
	var (
		a = &tm.a
	)
	for i := 0; i < 3; i++ {
		x[i] = a[0][i] +
			a[1][i]*xi0 + a[2][i]*xi1 + a[3][i]*xi2 +
			a[4][i]*xi0*xi1 + a[5][i]*xi1*xi2 + a[6][i]*xi2*xi0 +
			a[7][i]*xi0*xi1*xi2
	}
	return
}

// linear fills df with the Jacobian Df[i][j] = dx_i/dxi_j at xi
func (tm *TrilinearMapping) linear(xi [3]float64) {
	var (
		a             = &tm.a
		xi0, xi1, xi2 = xi[0], xi[1], xi[2]
	)
	for i := 0; i < 3; i++ {
		tm.df[i][0] = a[1][i] + a[4][i]*xi1 + a[6][i]*xi2 + a[7][i]*xi1*xi2
		tm.df[i][1] = a[2][i] + a[4][i]*xi0 + a[5][i]*xi2 + a[7][i]*xi0*xi2
		tm.df[i][2] = a[3][i] + a[5][i]*xi1 + a[6][i]*xi0 + a[7][i]*xi0*xi1
	}
}

// inverse recomputes the (Df, Dfi, DetDf) triple when xi differs from the
// last evaluated point
func (tm *TrilinearMapping) inverse(xi [3]float64) (err error) {
	if tm.haveJac && xi == tm.lastXi {
		return
	}
	tm.haveJac = false
	tm.linear(xi)
	D := utils.NewMatrix(3, 3, []float64{
		tm.df[0][0], tm.df[0][1], tm.df[0][2],
		tm.df[1][0], tm.df[1][1], tm.df[1][2],
		tm.df[2][0], tm.df[2][1], tm.df[2][2],
	})
	tm.detDf = D.Det()
	if math.Abs(tm.detDf) < tm.params.Epsilon {
		return fmt.Errorf("%w: det = %v at xi = %v", ErrDegenerateJacobian, tm.detDf, xi)
	}
	Di, err := D.Inverse()
	if err != nil {
		return fmt.Errorf("%w: %v at xi = %v", ErrDegenerateJacobian, err, xi)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tm.dfi[i][j] = Di.At(i, j)
		}
	}
	tm.lastXi = xi
	tm.haveJac = true
	return
}

// JacobianInverse returns the inverse Jacobian Dfi at xi. Fails when the
// element is degenerate there, |det(Df)| < Epsilon
func (tm *TrilinearMapping) JacobianInverse(xi [3]float64) (Dfi utils.Matrix, err error) {
	if err = tm.inverse(xi); err != nil {
		return
	}
	Dfi = utils.NewMatrix(3, 3, []float64{
		tm.dfi[0][0], tm.dfi[0][1], tm.dfi[0][2],
		tm.dfi[1][0], tm.dfi[1][1], tm.dfi[1][2],
		tm.dfi[2][0], tm.dfi[2][1], tm.dfi[2][2],
	})
	return
}

// Det returns the Jacobian determinant at xi
func (tm *TrilinearMapping) Det(xi [3]float64) (det float64, err error) {
	if err = tm.inverse(xi); err != nil {
		return
	}
	det = tm.detDf
	return
}

// WorldToMap inverts the trilinear mapping by Newton iteration starting from
// the reference cube center:
//
//	xi <- xi + Dfi(xi) * (x - f(xi))
//
// until the residual norm drops below Epsilon. Non-convergence within
// NewtonMaxIter signals a point outside the element or a degenerate element
func (tm *TrilinearMapping) WorldToMap(x [3]float64) (xi [3]float64, err error) {
	xi = [3]float64{0.5, 0.5, 0.5}
	for it := 0; it < tm.params.NewtonMaxIter; it++ {
		if err = tm.inverse(xi); err != nil {
			return
		}
		f := tm.MapToWorld(xi)
		var res [3]float64
		for i := 0; i < 3; i++ {
			res[i] = x[i] - f[i]
		}
		if math.Sqrt(res[0]*res[0]+res[1]*res[1]+res[2]*res[2]) < tm.params.Epsilon {
			return
		}
		for i := 0; i < 3; i++ {
			xi[i] += tm.dfi[i][0]*res[0] + tm.dfi[i][1]*res[1] + tm.dfi[i][2]*res[2]
		}
	}
	err = fmt.Errorf("%w after %d iterations for x = %v", ErrNewtonNoConvergence, tm.params.NewtonMaxIter, x)
	return
}
