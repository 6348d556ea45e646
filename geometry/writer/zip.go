package writer

import (
	"archive/zip"
	"encoding/gob"
	"os"
	"time"

	"github.com/achilleasa/meshgen/geometry"
	"github.com/achilleasa/meshgen/log"
)

const (
	dataFile = "mesh.bin"
)

type zipMeshWriter struct {
	logger   log.Logger
	meshFile string
}

// Create a new zip mesh writer.
func newZipMeshWriter(meshFile string) *zipMeshWriter {
	return &zipMeshWriter{
		logger:   log.New("zip writer"),
		meshFile: meshFile,
	}
}

// Write mesh data to zip file.
func (w *zipMeshWriter) Write(m *geometry.Mesh[geometry.Vertex]) error {
	w.logger.Noticef(`writing compressed mesh to "%s"`, w.meshFile)
	start := time.Now()

	zipFile, err := os.Create(w.meshFile)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	defer zw.Close()

	cw, err := zw.Create(dataFile)
	if err != nil {
		return err
	}
	if err = gob.NewEncoder(cw).Encode(m); err != nil {
		return err
	}

	w.logger.Noticef("compressed mesh in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}
