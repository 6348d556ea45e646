package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/meshgen/geometry"
	"github.com/achilleasa/meshgen/types"
)

func TestWavefrontOutput(t *testing.T) {
	m := geometry.New()
	if err := geometry.Plane(m, types.Ident4(), 1, 1); err != nil {
		t.Fatal(err)
	}

	objFile := filepath.Join(t.TempDir(), "plane.obj")
	if err := WriteMesh(m, objFile); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(objFile)
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	for _, line := range strings.Split(string(data), "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		counts[tokens[0]]++
	}

	if got, want := counts["v"], len(m.Vertices); got != want {
		t.Fatalf("expected %d position entries; got %d", want, got)
	}
	if got, want := counts["vn"], len(m.Vertices); got != want {
		t.Fatalf("expected %d normal entries; got %d", want, got)
	}
	if got, want := counts["vt"], len(m.Vertices); got != want {
		t.Fatalf("expected %d uv entries; got %d", want, got)
	}
	if got, want := counts["f"], len(m.Triangles); got != want {
		t.Fatalf("expected %d face entries; got %d", want, got)
	}
	if got, want := counts["l"], len(m.Outline); got != want {
		t.Fatalf("expected %d line entries; got %d", want, got)
	}

	// obj indices are 1-based
	if strings.Contains(string(data), "f 0/") {
		t.Fatalf("expected face indices to be 1-based")
	}
}

func TestWriteMeshUnsupportedFormat(t *testing.T) {
	m := geometry.New()
	if err := WriteMesh(m, "mesh.stl"); err == nil {
		t.Fatalf("expected an error for an unsupported output format")
	}
}
