package geometry3D

/*
BilinearSurfaceMapping maps the unit reference square [0,1]^2 onto a physical
quadrilateral face given by 4 corner points:

	x(xi,eta) = b0 + b1*xi + b2*eta + b3*xi*eta

Corners follow the canonical numbering (0,0), (1,0), (0,1), (1,1). The face
mapping is used for flux and surface integrals only, so no inverse is
provided. As with TrilinearMapping, the corner array is borrowed, not owned.
*/
type BilinearSurfaceMapping struct {
	corners *[4][3]float64 // borrowed view, owned by mesh storage

	b [4][3]float64 // bilinear coefficients
	n [3][3]float64 // normal coefficients: n(xi,eta) = n0 + n1*xi + n2*eta
}

func NewBilinearSurfaceMapping(corners *[4][3]float64) (bm *BilinearSurfaceMapping) {
	bm = &BilinearSurfaceMapping{
		corners: corners,
	}
	p := corners
	for i := 0; i < 3; i++ {
		bm.b[0][i] = p[0][i]
		bm.b[1][i] = p[1][i] - p[0][i]
		bm.b[2][i] = p[2][i] - p[0][i]
		bm.b[3][i] = p[3][i] - p[2][i] - p[1][i] + p[0][i]
	}
	// The surface tangents are t_xi = b1 + b3*eta and t_eta = b2 + b3*xi, so
	// the cross product expands to three constant coefficient vectors
	bm.n[0] = cross(bm.b[1], bm.b[2])
	bm.n[1] = cross(bm.b[1], bm.b[3])
	bm.n[2] = cross(bm.b[3], bm.b[2])
	return
}

// MapToWorld evaluates the bilinear polynomial at (xi, eta)
func (bm *BilinearSurfaceMapping) MapToWorld(xi, eta float64) (x [3]float64) {
	var (
		b = &bm.b
	)
	for i := 0; i < 3; i++ {
		x[i] = b[0][i] + b[1][i]*xi + b[2][i]*eta + b[3][i]*xi*eta
	}
	return
}

// Normal returns the area-weighted (non-unit) surface normal at (xi, eta),
// the cross product of the two tangent vectors there. A degenerate face
// yields a near-zero normal; that is the caller's lookout
func (bm *BilinearSurfaceMapping) Normal(xi, eta float64) (n [3]float64) {
	for i := 0; i < 3; i++ {
		n[i] = bm.n[0][i] + bm.n[1][i]*xi + bm.n[2][i]*eta
	}
	return
}

func cross(a, b [3]float64) (c [3]float64) {
	c[0] = a[1]*b[2] - a[2]*b[1]
	c[1] = a[2]*b[0] - a[0]*b[2]
	c[2] = a[0]*b[1] - a[1]*b[0]
	return
}
