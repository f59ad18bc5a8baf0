package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/gogrid/geometry3D"
)

// QualityReport summarizes per-element geometric quality: the centroid
// Jacobian determinant over hexahedral elements and the area-weighted
// boundary-face normals
type QualityReport struct {
	HexElements   int
	TetElements   int
	OtherElements int

	MinDet, MaxDet, MeanDet float64
	Degenerate              []int // hex element IDs with a singular centroid Jacobian

	BoundaryFaces int
	BoundaryArea  float64 // face-center normal magnitudes summed, exact for planar faces
}

// Quality evaluates every hexahedral element's trilinear mapping at the
// reference centroid and every boundary quad face's bilinear normal at the
// face center
func (m *Mesh) Quality(params geometry3D.MappingParameters) (qr *QualityReport) {
	qr = &QualityReport{
		MinDet: math.Inf(1),
		MaxDet: math.Inf(-1),
	}
	var (
		centroid = [3]float64{0.5, 0.5, 0.5}
		detSum   float64
		corners  [8][3]float64
	)
	for k := 0; k < m.NumElements; k++ {
		switch m.ElementTypes[k] {
		case Hex:
			qr.HexElements++
			if err := m.HexCorners(k, &corners); err != nil {
				panic(err) // element typed Hex with bad connectivity is a builder bug
			}
			tm := geometry3D.NewTrilinearMappingParams(&corners, params)
			det, err := tm.Det(centroid)
			if err != nil {
				qr.Degenerate = append(qr.Degenerate, k)
				continue
			}
			detSum += det
			if det < qr.MinDet {
				qr.MinDet = det
			}
			if det > qr.MaxDet {
				qr.MaxDet = det
			}
		case Tet:
			qr.TetElements++
		default:
			qr.OtherElements++
		}
	}
	if n := qr.HexElements - len(qr.Degenerate); n > 0 {
		qr.MeanDet = detSum / float64(n)
	}

	var faceCorners [4][3]float64
	for k := 0; k < m.NumElements; k++ {
		for f, neighbor := range m.EToE[k] {
			if neighbor >= 0 {
				continue
			}
			qr.BoundaryFaces++
			if err := m.QuadFaceCorners(k, f, &faceCorners); err != nil {
				continue // triangular boundary face
			}
			bm := geometry3D.NewBilinearSurfaceMapping(&faceCorners)
			n := bm.Normal(0.5, 0.5)
			qr.BoundaryArea += math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		}
	}
	return
}

func (qr *QualityReport) Print() {
	fmt.Printf("Element Quality:\n")
	fmt.Printf("  Hex: %d, Tet: %d, Other: %d\n", qr.HexElements, qr.TetElements, qr.OtherElements)
	if qr.HexElements > len(qr.Degenerate) {
		fmt.Printf("  Centroid det(J): min %12.5e, max %12.5e, mean %12.5e\n",
			qr.MinDet, qr.MaxDet, qr.MeanDet)
	}
	if len(qr.Degenerate) != 0 {
		fmt.Printf("  DEGENERATE elements: %v\n", qr.Degenerate)
	}
	fmt.Printf("  Boundary faces: %d, quad boundary area: %10.6f\n",
		qr.BoundaryFaces, qr.BoundaryArea)
}
