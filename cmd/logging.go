package cmd

import (
	"github.com/achilleasa/meshgen/log"
	"github.com/urfave/cli"
)

var logger = log.New("meshgen")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
