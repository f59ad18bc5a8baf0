package geometry3D

import "fmt"

// RefinementRule tags how a parent face was split during non-conforming
// refinement. The tag comes from the mesh's adaptive-refinement bookkeeping
type RefinementRule int8

const (
	NoSplit      RefinementRule = iota // face not refined on this side
	EdgeBisect01                       // triangle bisected along edge v0-v1
	EdgeBisect12                       // triangle bisected along edge v1-v2
	EdgeBisect20                       // triangle bisected along edge v2-v0
	Iso4                               // isotropic 4-way split
)

func (r RefinementRule) String() string {
	return [...]string{"NoSplit", "EdgeBisect01", "EdgeBisect12", "EdgeBisect20", "Iso4"}[r]
}

// NumChildren returns how many child faces the rule produces
func (r RefinementRule) NumChildren() int {
	switch r {
	case NoSplit:
		return 1
	case EdgeBisect01, EdgeBisect12, EdgeBisect20:
		return 2
	case Iso4:
		return 4
	default:
		panic(fmt.Errorf("unknown refinement rule %d", r))
	}
}

func checkRuleChild(rule RefinementRule, nChild int, edgeRules bool) {
	if rule != NoSplit && rule != Iso4 && !edgeRules {
		panic(fmt.Errorf("refinement rule %v not valid for quadrilateral faces", rule))
	}
	if nChild < 0 || nChild >= rule.NumChildren() {
		panic(fmt.Errorf("child index %d out of range for rule %v", nChild, rule))
	}
}

/*
NonConformingTetraMapping maps a coordinate in a child triangular face's
local frame to the matching coordinate in the parent face's frame, so that
quantities computed on the fine side of a hanging-node face can be related
to the coarse neighbor. Coordinates are barycentric (l0, l1, l2).

Child numbering convention: for an edge bisection, child 0 keeps the
lower-numbered edge vertex and child 1 the higher; for Iso4, children 0..2
are the corner triangles at v0..v2 and child 3 is the center triangle.

Every branch is a closed-form affine transform. An invalid (rule, child)
pair is a caller bug in mesh bookkeeping and panics at construction.
*/
type NonConformingTetraMapping struct {
	rule   RefinementRule
	nChild int
}

func NewNonConformingTetraMapping(rule RefinementRule, nChild int) NonConformingTetraMapping {
	checkRuleChild(rule, nChild, true)
	return NonConformingTetraMapping{rule: rule, nChild: nChild}
}

func (m NonConformingTetraMapping) Rule() RefinementRule { return m.rule }
func (m NonConformingTetraMapping) Child() int           { return m.nChild }

func (m NonConformingTetraMapping) Child2Parent(c [3]float64) (p [3]float64) {
	switch m.rule {
	case NoSplit:
		p = c
	case EdgeBisect01:
		if m.nChild == 0 { // (v0, m01, v2)
			p = [3]float64{c[0] + 0.5*c[1], 0.5 * c[1], c[2]}
		} else { // (m01, v1, v2)
			p = [3]float64{0.5 * c[0], c[1] + 0.5*c[0], c[2]}
		}
	case EdgeBisect12:
		if m.nChild == 0 { // (v0, v1, m12)
			p = [3]float64{c[0], c[1] + 0.5*c[2], 0.5 * c[2]}
		} else { // (v0, m12, v2)
			p = [3]float64{c[0], 0.5 * c[1], c[2] + 0.5*c[1]}
		}
	case EdgeBisect20:
		if m.nChild == 0 { // (v0, v1, m20)
			p = [3]float64{c[0] + 0.5*c[2], c[1], 0.5 * c[2]}
		} else { // (m20, v1, v2)
			p = [3]float64{0.5 * c[0], c[1], c[2] + 0.5*c[0]}
		}
	case Iso4:
		switch m.nChild {
		case 0: // corner triangle at v0: (v0, m01, m20)
			p = [3]float64{c[0] + 0.5*(c[1]+c[2]), 0.5 * c[1], 0.5 * c[2]}
		case 1: // corner triangle at v1: (m01, v1, m12)
			p = [3]float64{0.5 * c[0], c[1] + 0.5*(c[0]+c[2]), 0.5 * c[2]}
		case 2: // corner triangle at v2: (m20, m12, v2)
			p = [3]float64{0.5 * c[0], 0.5 * c[1], c[2] + 0.5*(c[0]+c[1])}
		case 3: // center triangle (m12, m20, m01), point reflection about the centroid
			p = [3]float64{0.5 * (1. - c[0]), 0.5 * (1. - c[1]), 0.5 * (1. - c[2])}
		}
	}
	return
}

/*
NonConformingHexaMapping is the quadrilateral-face counterpart of
NonConformingTetraMapping. Coordinates are planar (xi, eta) in [0,1]^2 with
the canonical corner numbering (0,0), (1,0), (0,1), (1,1). Quadrilateral
faces refine either not at all or into four quarter squares, child k sitting
at corner k.
*/
type NonConformingHexaMapping struct {
	rule   RefinementRule
	nChild int
}

func NewNonConformingHexaMapping(rule RefinementRule, nChild int) NonConformingHexaMapping {
	checkRuleChild(rule, nChild, false)
	return NonConformingHexaMapping{rule: rule, nChild: nChild}
}

func (m NonConformingHexaMapping) Rule() RefinementRule { return m.rule }
func (m NonConformingHexaMapping) Child() int           { return m.nChild }

func (m NonConformingHexaMapping) Child2Parent(c [2]float64) (p [2]float64) {
	switch m.rule {
	case NoSplit:
		p = c
	case Iso4:
		p = [2]float64{
			0.5*c[0] + 0.5*float64(m.nChild&1),
			0.5*c[1] + 0.5*float64(m.nChild>>1),
		}
	}
	return
}
