package main

import (
	"os"

	"github.com/achilleasa/meshgen/cmd"
	"github.com/urfave/cli"
)

// Flags shared by all generate subcommands.
func commonGenerateFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "out, o",
			Value: "mesh.obj",
			Usage: "output file for the generated mesh (.obj or .zip)",
		},
		cli.Float64Flag{
			Name:  "scale",
			Value: 1.0,
			Usage: "uniform scale applied to the generated mesh",
		},
		cli.StringFlag{
			Name:  "translate",
			Value: "0,0,0",
			Usage: "translation applied to the generated mesh",
		},
	}
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "meshgen"
	app.Usage = "generate procedural subdivided meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a procedural mesh",
			Action: nil,
			Subcommands: []cli.Command{
				{
					Name:  "plane",
					Usage: "generate a subdivided plane",
					Description: `
Generate a subdivided rectangle spanning -1,1 along the X and Y axes with a
+Z normal. The outline indices trace the rectangle border.`,
					Flags: append(commonGenerateFlags(),
						cli.IntFlag{
							Name:  "width-segments",
							Value: 1,
							Usage: "number of subdivisions along the X axis",
						},
						cli.IntFlag{
							Name:  "height-segments",
							Value: 1,
							Usage: "number of subdivisions along the Y axis",
						},
					),
					Action: cmd.GeneratePlane,
				},
				{
					Name:  "box",
					Usage: "generate a subdivided box",
					Description: `
Generate a subdivided cube spanning -1,1 along every axis, assembled from six
subdivided planes.`,
					Flags: append(commonGenerateFlags(),
						cli.IntFlag{
							Name:  "width-segments",
							Value: 1,
							Usage: "number of subdivisions along the X axis",
						},
						cli.IntFlag{
							Name:  "height-segments",
							Value: 1,
							Usage: "number of subdivisions along the Y axis",
						},
						cli.IntFlag{
							Name:  "depth-segments",
							Value: 1,
							Usage: "number of subdivisions along the Z axis",
						},
					),
					Action: cmd.GenerateBox,
				},
				{
					Name:  "sphere",
					Usage: "generate a subdivided sphere",
					Description: `
Generate a unit sphere from a latitude/longitude parametrization. The outline
indices trace the equator and four meridians.`,
					Flags: append(commonGenerateFlags(),
						cli.IntFlag{
							Name:  "longitude-segments",
							Value: 16,
							Usage: "number of subdivisions around the equator",
						},
						cli.IntFlag{
							Name:  "latitude-segments",
							Value: 8,
							Usage: "number of subdivisions from pole to pole",
						},
					),
					Action: cmd.GenerateSphere,
				},
				{
					Name:  "torus",
					Usage: "generate a subdivided torus",
					Flags: append(commonGenerateFlags(),
						cli.IntFlag{
							Name:  "major-segments",
							Value: 16,
							Usage: "number of subdivisions around the main ring",
						},
						cli.IntFlag{
							Name:  "minor-segments",
							Value: 16,
							Usage: "number of subdivisions around the tube",
						},
						cli.Float64Flag{
							Name:  "inner-radius",
							Value: 0.8,
							Usage: "distance from the origin to the tube center",
						},
						cli.Float64Flag{
							Name:  "outer-radius",
							Value: 0.2,
							Usage: "tube radius",
						},
					),
					Action: cmd.GenerateTorus,
				},
				{
					Name:  "sponge",
					Usage: "generate a menger sponge",
					Description: `
Generate a fractal sponge by recursively splitting a cube into 3x3x3
sub-cubes. A negative probability applies the deterministic menger removal
rule; probabilities in [0,1] keep each sub-cube at random instead.`,
					Flags: append(commonGenerateFlags(),
						cli.IntFlag{
							Name:  "level",
							Value: 3,
							Usage: "number of subdivision rounds",
						},
						cli.Float64Flag{
							Name:  "probability",
							Value: -1.0,
							Usage: "per sub-cube survival probability; negative for the deterministic rule",
						},
						cli.Int64Flag{
							Name:  "seed",
							Value: 1,
							Usage: "seed for the stochastic variant",
						},
						cli.StringFlag{
							Name:  "cube-origin",
							Value: "-0.25,-0.25,-0.25",
							Usage: "minimum corner of the starting cube",
						},
						cli.Float64Flag{
							Name:  "cube-size",
							Value: 0.5,
							Usage: "edge length of the starting cube",
						},
					),
					Action: cmd.GenerateSponge,
				},
			},
		},
		{
			Name:      "info",
			Usage:     "display info about a compiled mesh",
			ArgsUsage: "mesh.zip",
			Action:    cmd.ShowMeshInfo,
		},
	}

	app.Run(os.Args)
}
