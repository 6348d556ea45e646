package geometry

import (
	"math"

	"github.com/achilleasa/meshgen/types"
)

// Box appends a subdivided axis-aligned cube spanning [-1,1] on every axis.
// It is assembled from six Plane calls: each face transform rotates the local
// XY plane towards one of the cube sides and then pushes it one unit along
// the rotated +Z so it lands on the cube surface. The w, h and d segment
// counts subdivide the X, Y and Z axes respectively.
func Box[V any](m *Mesh[V], mat types.Mat4, w, h, d int) error {
	if w < 1 || h < 1 || d < 1 {
		return ErrInvalidSegmentCount
	}

	xAxis := types.XYZ(1, 0, 0)
	yAxis := types.XYZ(0, 1, 0)

	faceRot := [6]types.Mat4{
		types.Ident4(),
		types.Rotate4(math.Pi, yAxis),
		types.Rotate4(math.Pi*0.5, yAxis),
		types.Rotate4(math.Pi*1.5, yAxis),
		types.Rotate4(math.Pi*0.5, xAxis),
		types.Rotate4(math.Pi*1.5, xAxis),
	}
	faceSegs := [6][2]int{
		{w, h}, {w, h},
		{d, h}, {d, h},
		{w, d}, {w, d},
	}

	move := types.Translate4(types.XYZ(0, 0, 1))
	for side := 0; side < 6; side++ {
		if err := Plane(m, mat.Mul4(faceRot[side]).Mul4(move), faceSegs[side][0], faceSegs[side][1]); err != nil {
			return err
		}
	}

	return nil
}
