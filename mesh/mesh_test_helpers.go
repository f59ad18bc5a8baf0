package mesh

// Standard test meshes shared by the reader, connectivity and quality tests.
// Element connectivity uses the reader's cyclic ordering: bottom ring then
// top ring.

// BuildSingleHexMesh returns one unit cube element
func BuildSingleHexMesh() *Mesh {
	m := NewMesh()
	m.Vertices = [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	m.Elements = [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}
	m.ElementTypes = []ElementType{Hex}
	m.ElementTags = []int{0}
	m.NumVertices = len(m.Vertices)
	m.NumElements = len(m.Elements)
	m.BuildConnectivity()
	return m
}

// BuildTwoHexMesh returns two unit cubes stacked in z, sharing one face
func BuildTwoHexMesh() *Mesh {
	m := NewMesh()
	m.Vertices = [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		{0, 0, 2}, {1, 0, 2}, {1, 1, 2}, {0, 1, 2},
	}
	m.Elements = [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{4, 5, 6, 7, 8, 9, 10, 11},
	}
	m.ElementTypes = []ElementType{Hex, Hex}
	m.ElementTags = []int{0, 0}
	m.NumVertices = len(m.Vertices)
	m.NumElements = len(m.Elements)
	m.BuildConnectivity()
	return m
}

// BuildCollapsedHexMesh returns a zero-volume hex: the top ring coincides
// with the bottom ring
func BuildCollapsedHexMesh() *Mesh {
	m := NewMesh()
	m.Vertices = [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	m.Elements = [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}
	m.ElementTypes = []ElementType{Hex}
	m.ElementTags = []int{0}
	m.NumVertices = len(m.Vertices)
	m.NumElements = len(m.Elements)
	m.BuildConnectivity()
	return m
}

// GambitTwoHexFixture is the BuildTwoHexMesh geometry as Gambit neutral file
// content, for reader round-trip tests
const GambitTwoHexFixture = `        CONTROL INFO 2.4.6
** GAMBIT NEUTRAL FILE
two stacked unit cubes
PROGRAM:                Gambit     VERSION:  2.4.6
     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
        12         2         0         0         3         3
ENDOFSECTION
   NODAL COORDINATES 2.4.6
         1   0.0   0.0   0.0
         2   1.0   0.0   0.0
         3   1.0   1.0   0.0
         4   0.0   1.0   0.0
         5   0.0   0.0   1.0
         6   1.0   0.0   1.0
         7   1.0   1.0   1.0
         8   0.0   1.0   1.0
         9   0.0   0.0   2.0
        10   1.0   0.0   2.0
        11   1.0   1.0   2.0
        12   0.0   1.0   2.0
ENDOFSECTION
      ELEMENTS/CELLS 2.4.6
     1  4  8     1     2     3     4     5     6     7     8
     2  4  8     5     6     7     8     9    10    11    12
ENDOFSECTION
`
