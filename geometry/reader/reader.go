package reader

import (
	"fmt"
	"strings"

	"github.com/achilleasa/meshgen/asset"
	"github.com/achilleasa/meshgen/geometry"
)

// The Reader interface is implemented by all mesh readers.
type Reader interface {
	// Read mesh data from a resource.
	Read(*asset.Resource) (*geometry.Mesh[geometry.Vertex], error)
}

// Read mesh from a local file or a http/https URL. Only the compressed
// binary format produced by the writer package is supported.
func ReadMesh(filename string) (*geometry.Mesh[geometry.Vertex], error) {
	res, err := asset.NewResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !strings.HasSuffix(filename, ".zip") {
		return nil, fmt.Errorf("readMesh: unsupported file format")
	}
	return newZipMeshReader().Read(res)
}
