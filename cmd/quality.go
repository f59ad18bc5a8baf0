/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gogrid/InputParameters"
	"github.com/notargets/gogrid/mesh"
)

type QualityRun struct {
	GridFile  string
	ParamFile string
	Profile   bool
}

// QualityCmd represents the quality command
var QualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Report element geometry quality for an unstructured grid",
	Long: `Reads a grid file, builds the per-element trilinear mappings and
reports Jacobian determinant statistics and boundary face areas`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		qr := &QualityRun{}
		if qr.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		qr.ParamFile, _ = cmd.Flags().GetString("inputParametersFile")
		qr.Profile, _ = cmd.Flags().GetBool("profile")
		gp := processQualityInput(qr)
		RunQuality(qr, gp)
	},
}

func processQualityInput(qr *QualityRun) (gp *InputParameters.GridParameters) {
	gp = &InputParameters.GridParameters{}
	if len(qr.ParamFile) != 0 {
		data, err := ioutil.ReadFile(qr.ParamFile)
		if err != nil {
			panic(err)
		}
		if err = gp.Parse(data); err != nil {
			panic(err)
		}
	}
	if len(qr.GridFile) != 0 {
		gp.GridFile = qr.GridFile
	}
	if len(gp.GridFile) == 0 {
		fmt.Printf("error: must supply a grid file (-F, --gridFile) in .neu (Gambit neutral file) format\n")
		os.Exit(1)
	}
	return
}

func RunQuality(qr *QualityRun, gp *InputParameters.GridParameters) {
	if qr.Profile {
		defer profile.Start().Stop()
	}
	gp.Print()
	m, err := mesh.ReadMeshFile(gp.GridFile)
	if err != nil {
		fmt.Printf("error reading grid file: %s\n", err.Error())
		os.Exit(1)
	}
	m.PrintStatistics()
	report := m.Quality(gp.MappingParameters())
	report.Print()
}

func init() {
	rootCmd.AddCommand(QualityCmd)
	QualityCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gambit (.neu) format")
	QualityCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Epsilon\n\t- NewtonMaxIterations")
	QualityCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the quality pass")
}
