package writer

import (
	"fmt"
	"strings"

	"github.com/achilleasa/meshgen/geometry"
)

// The Writer interface is implemented by all mesh writers.
type Writer interface {
	// Write mesh data to the output.
	Write(*geometry.Mesh[geometry.Vertex]) error
}

// Write mesh to a file. The output format is selected based on the file
// extension: .obj emits a wavefront object file while .zip emits the
// compressed binary mesh format.
func WriteMesh(m *geometry.Mesh[geometry.Vertex], filename string) error {
	var writer Writer
	if strings.HasSuffix(filename, ".obj") {
		writer = newWavefrontWriter(filename)
	} else if strings.HasSuffix(filename, ".zip") {
		writer = newZipMeshWriter(filename)
	} else {
		return fmt.Errorf("writeMesh: unsupported file format")
	}

	return writer.Write(m)
}
