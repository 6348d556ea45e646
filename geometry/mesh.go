// Package geometry provides procedural mesh primitives that are subdivided.
//
// Each generator is a free function that appends vertices, triangle indices
// and outline indices into a caller-owned Mesh, which allows primitives to
// be composed (Box is six Planes, the sponge is many Boxes) without any
// intermediate allocations. All basic primitives span the -1,1 range along
// the axes they use.
//
// The outline indices are not a full edge list; they are typical feature
// lines (the border rectangle for a plane, a few rings for sphere/torus)
// meant for wireframe display.
package geometry

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/olekukonko/tablewriter"
)

// Mesh accumulates generated geometry. It is generic over the vertex type so
// consumers can generate directly into their own vertex layout; the converter
// supplied to NewMesh maps each canonical Vertex to a V before it is stored.
//
// Triangles are CCW wound. Every index in Triangles and Outline refers to an
// entry of Vertices. A mesh is append-only while generators run and must not
// be shared between concurrent generator calls.
type Mesh[V any] struct {
	Vertices  []V
	Triangles [][3]uint32
	Outline   [][2]uint32

	convert func(Vertex) V
}

// Create a mesh that stores vertices of type V. The converter is invoked for
// every generated vertex and must not be nil.
func NewMesh[V any](convert func(Vertex) V) *Mesh[V] {
	return &Mesh[V]{convert: convert}
}

// Create a mesh that stores the canonical vertex layout.
func New() *Mesh[Vertex] {
	return NewMesh(func(v Vertex) Vertex { return v })
}

// Grow the mesh buffers so that at least the given number of additional
// vertices, triangles and outline segments can be appended without further
// allocation. Generators reserve their exact output size up front.
func (m *Mesh[V]) Reserve(verts, tris, lines int) {
	m.Vertices = grow(m.Vertices, verts)
	m.Triangles = grow(m.Triangles, tris)
	m.Outline = grow(m.Outline, lines)
}

func grow[T any](s []T, n int) []T {
	if cap(s)-len(s) >= n {
		return s
	}
	out := make([]T, len(s), len(s)+n)
	copy(out, s)
	return out
}

// Convert and store a single canonical vertex.
func (m *Mesh[V]) push(v Vertex) {
	m.Vertices = append(m.Vertices, m.convert(v))
}

// Append another mesh's geometry. Vertices are copied verbatim and the
// incoming indices are shifted by the pre-merge vertex count so they keep
// referring to the copied vertices.
func (m *Mesh[V]) Append(other *Mesh[V]) {
	m.Reserve(len(other.Vertices), len(other.Triangles), len(other.Outline))

	offset := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)

	for _, tri := range other.Triangles {
		m.Triangles = append(m.Triangles, [3]uint32{tri[0] + offset, tri[1] + offset, tri[2] + offset})
	}
	for _, line := range other.Outline {
		m.Outline = append(m.Outline, [2]uint32{line[0] + offset, line[1] + offset})
	}
}

// Reverse the orientation of every triangle by swapping its first and third
// index. Vertex data is left untouched. Applying this twice is a no-op.
func (m *Mesh[V]) FlipWinding() {
	for i := range m.Triangles {
		m.Triangles[i][0], m.Triangles[i][2] = m.Triangles[i][2], m.Triangles[i][0]
	}
}

// Get the number of stored vertices.
func (m *Mesh[V]) VertexCount() uint32 {
	return uint32(len(m.Vertices))
}

// Get the total number of triangle indices (3 per triangle).
func (m *Mesh[V]) TriangleIndexCount() uint32 {
	return uint32(len(m.Triangles) * 3)
}

// Get the total number of outline indices (2 per line segment).
func (m *Mesh[V]) OutlineIndexCount() uint32 {
	return uint32(len(m.Outline) * 2)
}

// Get the size of the vertex buffer in bytes.
func (m *Mesh[V]) VerticesSize() int {
	var v V
	return len(m.Vertices) * int(unsafe.Sizeof(v))
}

// Get the size of the triangle index buffer in bytes.
func (m *Mesh[V]) TriangleIndicesSize() int {
	return len(m.Triangles) * 3 * 4
}

// Get the size of the outline index buffer in bytes.
func (m *Mesh[V]) OutlineIndicesSize() int {
	return len(m.Outline) * 2 * 4
}

// Get a raw view of the vertex buffer suitable for uploading to a device.
// The view aliases the mesh storage and is invalidated by any append.
func (m *Mesh[V]) VertexBytes() []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Vertices[0])), m.VerticesSize())
}

// Get a raw view of the triangle index buffer suitable for uploading to a
// device. The view aliases the mesh storage and is invalidated by any append.
func (m *Mesh[V]) TriangleIndexBytes() []byte {
	if len(m.Triangles) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Triangles[0])), m.TriangleIndicesSize())
}

// Get a raw view of the outline index buffer suitable for uploading to a
// device. The view aliases the mesh storage and is invalidated by any append.
func (m *Mesh[V]) OutlineIndexBytes() []byte {
	if len(m.Outline) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Outline[0])), m.OutlineIndicesSize())
}

// Build a tabular representation of mesh statistics.
func (m *Mesh[V]) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Buffer", "Count", "Size"})
	table.Append([]string{"Vertices", fmt.Sprintf("%d", m.VertexCount()), fmtSize(m.VerticesSize())})
	table.Append([]string{"Triangle indices", fmt.Sprintf("%d", m.TriangleIndexCount()), fmtSize(m.TriangleIndicesSize())})
	table.Append([]string{"Outline indices", fmt.Sprintf("%d", m.OutlineIndexCount()), fmtSize(m.OutlineIndicesSize())})
	table.SetFooter([]string{"Total", " ", fmtSize(m.VerticesSize() + m.TriangleIndicesSize() + m.OutlineIndicesSize())})

	table.Render()
	return buf.String()
}

// Format a byte count with the appropriate byte/kb/mb unit.
func fmtSize(totalBytes int) string {
	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", totalBytes)
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", float32(totalBytes)/1e3)
	}
	return fmt.Sprintf("%3.1f mb", float32(totalBytes)/1e6)
}
