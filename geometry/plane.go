package geometry

import "github.com/achilleasa/meshgen/types"

// Plane appends a subdivided rectangle to the mesh. The rectangle spans
// [-1,1] along the local X and Y axes at Z=0 with a +Z normal and uv
// coordinates in [0,1]; every vertex is transformed by mat before it is
// appended. Each grid cell emits two CCW triangles. The outline traces only
// the four border edges of the grid, not the interior lines.
func Plane[V any](m *Mesh[V], mat types.Mat4, w, h int) error {
	if w < 1 || h < 1 {
		return ErrInvalidSegmentCount
	}

	xmove := 1.0 / float32(w)
	ymove := 1.0 / float32(h)
	width := uint32(w + 1)
	offset := uint32(len(m.Vertices))

	m.Reserve((w+1)*(h+1), 2*w*h, 2*(w+h))

	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			xpos := float32(x) * xmove
			ypos := float32(y) * ymove

			vert := NewVertex(
				types.XYZ((xpos-0.5)*2.0, (ypos-0.5)*2.0, 0),
				types.XYZ(0, 0, 1),
				types.XY(xpos, ypos),
			)
			m.push(vert.Transform(mat))
		}
	}

	for y := uint32(0); y < uint32(h); y++ {
		for x := uint32(0); x < uint32(w); x++ {
			// upper and lower triangle of each grid cell
			m.Triangles = append(m.Triangles,
				[3]uint32{offset + x + (y+1)*width, offset + x + y*width, offset + x + 1 + (y+1)*width},
				[3]uint32{offset + x + 1 + (y+1)*width, offset + x + y*width, offset + x + 1 + y*width},
			)
		}
	}

	// left, right, bottom and top border strips
	for y := uint32(0); y < uint32(h); y++ {
		m.Outline = append(m.Outline, [2]uint32{offset + y*width, offset + (y+1)*width})
	}
	for y := uint32(0); y < uint32(h); y++ {
		m.Outline = append(m.Outline, [2]uint32{offset + y*width + uint32(w), offset + (y+1)*width + uint32(w)})
	}
	for x := uint32(0); x < uint32(w); x++ {
		m.Outline = append(m.Outline, [2]uint32{offset + x, offset + x + 1})
	}
	for x := uint32(0); x < uint32(w); x++ {
		m.Outline = append(m.Outline, [2]uint32{offset + uint32(h)*width + x, offset + uint32(h)*width + x + 1})
	}

	return nil
}
