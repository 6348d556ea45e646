package cmd

import (
	"errors"
	"strings"

	"github.com/achilleasa/meshgen/geometry/reader"
	"github.com/urfave/cli"
)

// Display compiled mesh info.
func ShowMeshInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing compiled mesh zip file")
	}

	meshFile := ctx.Args().First()
	if !strings.HasSuffix(meshFile, ".zip") {
		return errors.New("only compiled mesh files with a .zip extension are supported")
	}

	m, err := reader.ReadMesh(meshFile)
	if err != nil {
		return err
	}

	logger.Noticef("mesh information:\n%s", m.Stats())
	return nil
}
