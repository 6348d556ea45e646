package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/achilleasa/meshgen/geometry"
	"github.com/achilleasa/meshgen/geometry/writer"
	"github.com/achilleasa/meshgen/types"
	"github.com/urfave/cli"
)

// Parse a comma-separated list of 3 float values.
func parseVec3(s string) (types.Vec3, error) {
	tokens := strings.Split(s, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, fmt.Errorf("expected 3 comma-separated values; got %d", len(tokens))
	}

	var out types.Vec3
	for i, token := range tokens {
		val, err := strconv.ParseFloat(strings.TrimSpace(token), 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("could not parse component %d of '%s': %s", i, s, err.Error())
		}
		out[i] = float32(val)
	}
	return out, nil
}

// Build the placement transform from the shared --scale and --translate flags.
func placementTransform(ctx *cli.Context) (types.Mat4, error) {
	scale := float32(ctx.Float64("scale"))
	if scale == 0 {
		return types.Mat4{}, fmt.Errorf("scale must be non-zero")
	}

	translate, err := parseVec3(ctx.String("translate"))
	if err != nil {
		return types.Mat4{}, fmt.Errorf("invalid translate flag: %s", err.Error())
	}

	return types.Translate4(translate).Mul4(types.Scale4(types.XYZ(scale, scale, scale))), nil
}

// Write the generated mesh to the output file selected by the --out flag and
// display its statistics.
func writeMesh(ctx *cli.Context, m *geometry.Mesh[geometry.Vertex]) error {
	logger.Noticef("mesh information:\n%s", m.Stats())
	return writer.WriteMesh(m, ctx.String("out"))
}

// Generate a subdivided plane.
func GeneratePlane(ctx *cli.Context) error {
	setupLogging(ctx)

	mat, err := placementTransform(ctx)
	if err != nil {
		return err
	}

	m := geometry.New()
	if err = geometry.Plane(m, mat, ctx.Int("width-segments"), ctx.Int("height-segments")); err != nil {
		return err
	}
	return writeMesh(ctx, m)
}

// Generate a subdivided box.
func GenerateBox(ctx *cli.Context) error {
	setupLogging(ctx)

	mat, err := placementTransform(ctx)
	if err != nil {
		return err
	}

	m := geometry.New()
	if err = geometry.Box(m, mat, ctx.Int("width-segments"), ctx.Int("height-segments"), ctx.Int("depth-segments")); err != nil {
		return err
	}
	return writeMesh(ctx, m)
}

// Generate a subdivided sphere.
func GenerateSphere(ctx *cli.Context) error {
	setupLogging(ctx)

	mat, err := placementTransform(ctx)
	if err != nil {
		return err
	}

	m := geometry.New()
	if err = geometry.Sphere(m, mat, ctx.Int("longitude-segments"), ctx.Int("latitude-segments")); err != nil {
		return err
	}
	return writeMesh(ctx, m)
}

// Generate a subdivided torus.
func GenerateTorus(ctx *cli.Context) error {
	setupLogging(ctx)

	mat, err := placementTransform(ctx)
	if err != nil {
		return err
	}

	m := geometry.New()
	err = geometry.Torus(m, mat,
		ctx.Int("major-segments"), ctx.Int("minor-segments"),
		float32(ctx.Float64("inner-radius")), float32(ctx.Float64("outer-radius")),
	)
	if err != nil {
		return err
	}
	return writeMesh(ctx, m)
}

// Generate a Menger sponge. A negative probability selects the deterministic
// removal rule; otherwise each sub-cube survives a split with the given
// probability using a generator seeded by the --seed flag.
func GenerateSponge(ctx *cli.Context) error {
	setupLogging(ctx)

	mat, err := placementTransform(ctx)
	if err != nil {
		return err
	}

	origin, err := parseVec3(ctx.String("cube-origin"))
	if err != nil {
		return fmt.Errorf("invalid cube-origin flag: %s", err.Error())
	}
	start := geometry.Cube{
		Origin: origin,
		Size:   float32(ctx.Float64("cube-size")),
	}

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))

	m := geometry.New()
	err = geometry.MengerSponge(m, mat, start,
		ctx.Int("level"), float32(ctx.Float64("probability")), rng)
	if err != nil {
		return err
	}
	return writeMesh(ctx, m)
}
