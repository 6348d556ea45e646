package reader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/meshgen/geometry"
	"github.com/achilleasa/meshgen/geometry/writer"
	"github.com/achilleasa/meshgen/types"
)

func TestZipRoundTrip(t *testing.T) {
	src := geometry.New()
	if err := geometry.Torus(src, types.Ident4(), 8, 8, 0.8, 0.2); err != nil {
		t.Fatal(err)
	}

	meshFile := filepath.Join(t.TempDir(), "torus.zip")
	if err := writer.WriteMesh(src, meshFile); err != nil {
		t.Fatal(err)
	}

	m, err := ReadMesh(meshFile)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(m.Vertices), len(src.Vertices); got != want {
		t.Fatalf("expected %d vertices after round trip; got %d", want, got)
	}
	for i := range src.Vertices {
		if m.Vertices[i] != src.Vertices[i] {
			t.Fatalf("expected vertex %d to survive the round trip; got %+v want %+v", i, m.Vertices[i], src.Vertices[i])
		}
	}

	if got, want := len(m.Triangles), len(src.Triangles); got != want {
		t.Fatalf("expected %d triangles after round trip; got %d", want, got)
	}
	for i := range src.Triangles {
		if m.Triangles[i] != src.Triangles[i] {
			t.Fatalf("expected triangle %d to survive the round trip; got %v want %v", i, m.Triangles[i], src.Triangles[i])
		}
	}

	if got, want := len(m.Outline), len(src.Outline); got != want {
		t.Fatalf("expected %d outline segments after round trip; got %d", want, got)
	}
}

func TestReadMeshUnsupportedFormat(t *testing.T) {
	meshFile := filepath.Join(t.TempDir(), "mesh.stl")
	if err := os.WriteFile(meshFile, []byte("solid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadMesh(meshFile); err == nil {
		t.Fatalf("expected an error for an unsupported mesh format")
	}
}

func TestReadMeshRemote(t *testing.T) {
	src := geometry.New()
	if err := geometry.Box(src, types.Ident4(), 1, 1, 1); err != nil {
		t.Fatal(err)
	}

	meshDir := t.TempDir()
	if err := writer.WriteMesh(src, filepath.Join(meshDir, "box.zip")); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.FileServer(http.Dir(meshDir)))
	defer server.Close()

	m, err := ReadMesh(server.URL + "/box.zip")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(m.Vertices), len(src.Vertices); got != want {
		t.Fatalf("expected %d vertices from the remote mesh; got %d", want, got)
	}
}

func TestReadMeshMissingFile(t *testing.T) {
	if _, err := ReadMesh(filepath.Join(t.TempDir(), "missing.zip")); err == nil {
		t.Fatalf("expected an error for a missing mesh file")
	}
}
