package geometry

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/meshgen/types"
)

// One unit box instanced per surviving cube.
const (
	boxVerts = 6 * 4
	boxTris  = 6 * 2
)

func TestSpongeLevelZero(t *testing.T) {
	m := New()
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 0, -1, nil); err != nil {
		t.Fatal(err)
	}

	if got := len(m.Vertices); got != boxVerts {
		t.Fatalf("expected a single box worth of vertices (%d); got %d", boxVerts, got)
	}
	if got := len(m.Triangles); got != boxTris {
		t.Fatalf("expected a single box worth of triangles (%d); got %d", boxTris, got)
	}

	// the box must cover exactly the start cube extent
	min := DefaultSpongeCube.Origin
	max := min.Add(types.XYZ(DefaultSpongeCube.Size, DefaultSpongeCube.Size, DefaultSpongeCube.Size))
	for i, v := range m.Vertices {
		for c := 0; c < 3; c++ {
			if v.Position[c] < min[c]-1e-5 || v.Position[c] > max[c]+1e-5 {
				t.Fatalf("expected vertex %d inside the start cube; got %v", i, v.Position)
			}
		}
	}

	checkIndexBounds(t, m)
}

func TestSpongeDeterministicLevelOne(t *testing.T) {
	m := New()
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 1, -1, nil); err != nil {
		t.Fatal(err)
	}

	// the canonical menger rule keeps 20 of the 27 sub-cubes
	if got, want := len(m.Vertices), 20*boxVerts; got != want {
		t.Fatalf("expected %d vertices for a level 1 sponge; got %d", want, got)
	}
	if got, want := len(m.Triangles), 20*boxTris; got != want {
		t.Fatalf("expected %d triangles for a level 1 sponge; got %d", want, got)
	}

	checkIndexBounds(t, m)
}

func TestSpongeDeterministicLevelTwo(t *testing.T) {
	m := New()
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 2, -1, nil); err != nil {
		t.Fatal(err)
	}

	if got, want := len(m.Vertices), 20*20*boxVerts; got != want {
		t.Fatalf("expected %d vertices for a level 2 sponge; got %d", want, got)
	}
}

func TestSpongeStochasticExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	m := New()
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 1, 1, rng); err != nil {
		t.Fatal(err)
	}
	// probability 1 keeps all 27 sub-cubes, including the center
	if got, want := len(m.Vertices), 27*boxVerts; got != want {
		t.Fatalf("expected %d vertices with probability 1; got %d", want, got)
	}

	m = New()
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 1, 0, rng); err != nil {
		t.Fatal(err)
	}
	if got := len(m.Vertices); got != 0 {
		t.Fatalf("expected no vertices with probability 0; got %d", got)
	}
}

func TestSpongeStochasticDeterminismUnderSeed(t *testing.T) {
	gen := func(seed int64) *Mesh[Vertex] {
		m := New()
		rng := rand.New(rand.NewSource(seed))
		if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 3, 0.7, rng); err != nil {
			t.Fatal(err)
		}
		return m
	}

	m1 := gen(7)
	m2 := gen(7)
	if len(m1.Vertices) != len(m2.Vertices) {
		t.Fatalf("expected identical vertex counts for the same seed; got %d and %d", len(m1.Vertices), len(m2.Vertices))
	}
	for i := range m1.Vertices {
		if m1.Vertices[i] != m2.Vertices[i] {
			t.Fatalf("expected identical vertices for the same seed; vertex %d differs", i)
		}
	}
}

func TestSpongeArgumentValidation(t *testing.T) {
	m := New()
	rng := rand.New(rand.NewSource(1))

	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, -1, -1, nil); err != ErrInvalidLevel {
		t.Fatalf("expected ErrInvalidLevel; got %v", err)
	}
	if err := MengerSponge(m, types.Ident4(), Cube{Size: 0}, 1, -1, nil); err != ErrInvalidCubeSize {
		t.Fatalf("expected ErrInvalidCubeSize; got %v", err)
	}
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 1, 1.5, rng); err != ErrInvalidProbability {
		t.Fatalf("expected ErrInvalidProbability; got %v", err)
	}
	if err := MengerSponge(m, types.Ident4(), DefaultSpongeCube, 1, 0.5, nil); err != ErrMissingRandSource {
		t.Fatalf("expected ErrMissingRandSource; got %v", err)
	}
}
