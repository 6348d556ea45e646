package geometry

import (
	"math"

	"github.com/achilleasa/meshgen/types"
)

// Torus appends a torus lying in the local XZ plane with w segments around
// the main ring and h segments around the tube. The inner radius is the
// distance from the origin to the tube center and the outer radius is the
// tube radius itself. There are no singular points so every quad emits two
// triangles. The outline consists of ring lines at four tube cross-sections
// and tube circles at four positions around the main ring.
func Torus[V any](m *Mesh[V], mat types.Mat4, w, h int, innerRadius, outerRadius float32) error {
	if w < 1 || h < 1 {
		return ErrInvalidSegmentCount
	}
	if innerRadius <= 0 || outerRadius <= 0 {
		return ErrInvalidRadius
	}

	columns := uint32(h + 1)
	offset := uint32(len(m.Vertices))

	m.Reserve((w+1)*(h+1), 2*w*h, 4*(w+h))

	majorStep := 2.0 * math.Pi / float64(w)
	minorStep := 2.0 * math.Pi / float64(h)

	for major := 0; major <= w; major++ {
		phi := float64(major) * majorStep
		sinPhi, cosPhi := math.Sincos(phi)

		for minor := 0; minor <= h; minor++ {
			theta := float64(minor) * minorStep
			sinTheta, cosTheta := math.Sincos(theta)
			radius := innerRadius + outerRadius*float32(cosTheta)

			vert := NewVertex(
				types.XYZ(radius*float32(cosPhi), outerRadius*float32(sinTheta), -radius*float32(sinPhi)),
				types.XYZ(float32(cosPhi*cosTheta), float32(sinTheta), float32(-sinPhi*cosTheta)),
				types.XY(float32(major)/float32(w), float32(minor)/float32(h)),
			)
			m.push(vert.Transform(mat))
		}
	}

	for major := uint32(0); major < uint32(w); major++ {
		for minor := uint32(0); minor < uint32(h); minor++ {
			a := offset + major*columns + minor
			c := offset + (major+1)*columns + minor
			m.Triangles = append(m.Triangles,
				[3]uint32{a, a + 1, c},
				[3]uint32{c, a + 1, c + 1},
			)
		}
	}

	// ring lines at four tube cross-sections
	for i := uint32(0); i < 4; i++ {
		minor := (uint32(h) * i) / 4
		for major := uint32(0); major < uint32(w); major++ {
			m.Outline = append(m.Outline,
				[2]uint32{offset + major*columns + minor, offset + (major+1)*columns + minor})
		}
	}

	// tube circles at four positions around the main ring
	for i := uint32(0); i < 4; i++ {
		major := (uint32(w) * i) / 4
		for minor := uint32(0); minor < uint32(h); minor++ {
			m.Outline = append(m.Outline,
				[2]uint32{offset + major*columns + minor, offset + major*columns + minor + 1})
		}
	}

	return nil
}
