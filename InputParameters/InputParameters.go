package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gogrid/geometry3D"
)

// Parameters obtained from the YAML input file
type GridParameters struct {
	Title               string  `yaml:"Title"`
	GridFile            string  `yaml:"GridFile"`
	Epsilon             float64 `yaml:"Epsilon"`             // Mapping degeneracy / convergence tolerance
	NewtonMaxIterations int     `yaml:"NewtonMaxIterations"` // Inverse mapping iteration cap
}

func (gp *GridParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

// MappingParameters converts the file values to geometry3D tolerances,
// falling back to the defaults for unset fields
func (gp *GridParameters) MappingParameters() (mp geometry3D.MappingParameters) {
	mp = geometry3D.DefaultMappingParameters()
	if gp.Epsilon > 0 {
		mp.Epsilon = gp.Epsilon
	}
	if gp.NewtonMaxIterations > 0 {
		mp.NewtonMaxIter = gp.NewtonMaxIterations
	}
	return
}

func (gp *GridParameters) Print() {
	mp := gp.MappingParameters()
	fmt.Printf("\"%s\"\t\t= Title\n", gp.Title)
	fmt.Printf("[%s]\t\t= Grid File\n", gp.GridFile)
	fmt.Printf("%8.2e\t\t= Epsilon\n", mp.Epsilon)
	fmt.Printf("[%d]\t\t\t= Newton Max Iterations\n", mp.NewtonMaxIter)
}
