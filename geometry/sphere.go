package geometry

import (
	"math"

	"github.com/achilleasa/meshgen/types"
)

// Sphere appends a unit sphere built from a direct latitude/longitude
// parametrization with w segments around the equator and h segments from
// pole to pole. Normals equal positions and uv covers the full [0,1] range
// in both directions. The two pole rings emit a single triangle per quad
// instead of two, avoiding zero-area triangles at the poles. The outline is
// one equatorial ring plus meridians at the four longitude quarters.
func Sphere[V any](m *Mesh[V], mat types.Mat4, w, h int) error {
	if w < 1 || h < 1 {
		return ErrInvalidSegmentCount
	}

	xyShift := 1.0 / float32(w)
	zShift := 1.0 / float32(h)
	width := uint32(w + 1)
	offset := uint32(len(m.Vertices))

	m.Reserve((w+1)*(h+1), 2*w*h-2*w, w+4*h)

	for z := 0; z <= h; z++ {
		for xy := 0; xy <= w; xy++ {
			curXY := xyShift * float32(xy)
			curZ := zShift * float32(z)
			angleXY := float64(curXY) * math.Pi * 2.0
			angleZ := float64(1.0-curZ) * math.Pi

			pos := types.XYZ(
				float32(math.Cos(angleXY)*math.Sin(angleZ)),
				float32(math.Sin(angleXY)*math.Sin(angleZ)),
				float32(math.Cos(angleZ)),
			)
			m.push(NewVertex(pos, pos, types.XY(curXY, curZ)).Transform(mat))
		}
	}

	vertex := uint32(0)
	for z := 0; z < h; z++ {
		for xy := 0; xy < w; xy++ {
			if z != h-1 {
				m.Triangles = append(m.Triangles,
					[3]uint32{offset + vertex + width + 1, offset + vertex + width, offset + vertex})
			}
			if z != 0 {
				m.Triangles = append(m.Triangles,
					[3]uint32{offset + vertex, offset + vertex + 1, offset + vertex + width + 1})
			}
			vertex++
		}
		vertex++
	}

	middle := uint32(h/2) * width
	for xy := uint32(0); xy < uint32(w); xy++ {
		m.Outline = append(m.Outline, [2]uint32{offset + middle + xy, offset + middle + xy + 1})
	}

	for i := 0; i < 4; i++ {
		x := uint32((w * i) / 4)
		for z := uint32(0); z < uint32(h); z++ {
			m.Outline = append(m.Outline, [2]uint32{offset + x + width*z, offset + x + width*(z+1)})
		}
	}

	return nil
}
