package reader

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/meshgen/asset"
	"github.com/achilleasa/meshgen/geometry"
	"github.com/achilleasa/meshgen/log"
)

const (
	dataFile = "mesh.bin"
)

type zipMeshReader struct {
	logger log.Logger
}

// Create a new zip mesh reader.
func newZipMeshReader() *zipMeshReader {
	return &zipMeshReader{
		logger: log.New("zip reader"),
	}
}

// Read mesh data from a zip file.
func (p *zipMeshReader) Read(meshRes *asset.Resource) (*geometry.Mesh[geometry.Vertex], error) {
	p.logger.Noticef(`parsing compressed mesh from "%s"`, meshRes.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(meshRes)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	m := geometry.New()
	for _, f := range zr.File {
		if f.Name != dataFile {
			p.logger.Warningf("unknown file %s in mesh zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		err = gob.NewDecoder(rc).Decode(m)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zipMeshReader: failed to load %s: %s", f.Name, err.Error())
		}
	}

	p.logger.Noticef("loaded mesh in %d ms", time.Since(start).Nanoseconds()/1000000)
	return m, nil
}
