package geometry3D

import "errors"

var (
	// ErrDegenerateJacobian reports a near-singular or inverted element: the
	// Jacobian determinant magnitude fell below Epsilon
	ErrDegenerateJacobian = errors.New("degenerate element jacobian")
	// ErrNewtonNoConvergence reports that the inverse mapping iteration did
	// not reach tolerance within NewtonMaxIter steps. The query point is
	// likely outside the element, or the element is badly shaped
	ErrNewtonNoConvergence = errors.New("inverse mapping did not converge")
)

// MappingParameters holds the numerical tolerances for the element mappings.
// The correct values are mesh-scale dependent, so they are parameters rather
// than constants
type MappingParameters struct {
	Epsilon       float64 // Degeneracy threshold for |det(Df)| and Newton residual norm
	NewtonMaxIter int     // Iteration cap for the inverse trilinear mapping
}

func DefaultMappingParameters() MappingParameters {
	return MappingParameters{
		Epsilon:       1.e-08,
		NewtonMaxIter: 30,
	}
}
