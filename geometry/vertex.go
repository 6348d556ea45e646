package geometry

import "github.com/achilleasa/meshgen/types"

// The canonical vertex layout emitted by all generators. Positions carry w=1
// and normals w=0 so the same 4x4 transform can be applied to both; the
// translation part cancels out for normals.
type Vertex struct {
	Position types.Vec4
	Normal   types.Vec4
	TexCoord types.Vec4
}

// Create a vertex from a position, a normal and a uv pair.
func NewVertex(pos types.Vec3, normal types.Vec3, uv types.Vec2) Vertex {
	return Vertex{
		Position: pos.Vec4(1),
		Normal:   normal.Vec4(0),
		TexCoord: types.XYZW(uv[0], uv[1], 0, 0),
	}
}

// Apply a transformation matrix to the vertex position and normal. Normals
// are not renormalized; callers applying non-uniform scales must renormalize
// themselves.
func (v Vertex) Transform(mat types.Mat4) Vertex {
	v.Position = mat.Mul4x1(v.Position)
	v.Normal = mat.Mul4x1(v.Normal)
	return v
}
