package writer

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/achilleasa/meshgen/geometry"
	"github.com/achilleasa/meshgen/log"
)

type wavefrontWriter struct {
	logger   log.Logger
	meshFile string
}

// Create a new wavefront obj mesh writer.
func newWavefrontWriter(meshFile string) *wavefrontWriter {
	return &wavefrontWriter{
		logger:   log.New("obj writer"),
		meshFile: meshFile,
	}
}

// Write mesh data as a wavefront object file. Triangles are emitted as "f"
// entries referencing position, uv and normal; the outline segments are
// emitted as "l" entries.
func (w *wavefrontWriter) Write(m *geometry.Mesh[geometry.Vertex]) error {
	w.logger.Noticef(`writing wavefront mesh to "%s"`, w.meshFile)
	start := time.Now()

	objFile, err := os.Create(w.meshFile)
	if err != nil {
		return err
	}
	defer objFile.Close()

	buf := bufio.NewWriter(objFile)
	fmt.Fprintf(buf, "# exported by meshgen: %d vertices, %d triangles, %d outline segments\n",
		len(m.Vertices), len(m.Triangles), len(m.Outline))

	for _, v := range m.Vertices {
		fmt.Fprintf(buf, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(buf, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(buf, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}

	// obj indices are 1-based
	for _, tri := range m.Triangles {
		fmt.Fprintf(buf, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			tri[0]+1, tri[0]+1, tri[0]+1,
			tri[1]+1, tri[1]+1, tri[1]+1,
			tri[2]+1, tri[2]+1, tri[2]+1)
	}
	for _, line := range m.Outline {
		fmt.Fprintf(buf, "l %d %d\n", line[0]+1, line[1]+1)
	}

	if err = buf.Flush(); err != nil {
		return err
	}

	w.logger.Noticef("exported mesh in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}
