package geometry

import (
	"math/rand"

	"github.com/achilleasa/meshgen/types"
)

// Cube describes an axis-aligned cube by its minimum corner and edge length.
type Cube struct {
	Origin types.Vec3
	Size   float32
}

// DefaultSpongeCube spans [-0.25, 0.25] along every axis.
var DefaultSpongeCube = Cube{Origin: types.XYZ(-0.25, -0.25, -0.25), Size: 0.5}

// split appends the 20 sub-cubes that survive the classic Menger removal
// rule: a sub-cube is dropped when at least two of its three grid indices
// sit at the center of the 3x3x3 grid (the center cube and the six face
// centers).
func (c Cube) split(out []Cube) []Cube {
	size := c.Size / 3.0
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if (x == 1 && y == 1) || (x == 1 && z == 1) || (y == 1 && z == 1) {
					continue
				}
				out = append(out, Cube{
					Origin: c.Origin.Add(types.XYZ(float32(x)*size, float32(y)*size, float32(z)*size)),
					Size:   size,
				})
			}
		}
	}
	return out
}

// splitProb appends each of the 27 sub-cubes independently with the given
// survival probability. Unlike the deterministic rule the center cube gets
// no special treatment.
func (c Cube) splitProb(out []Cube, prob float32, rng *rand.Rand) []Cube {
	size := c.Size / 3.0
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if rng.Float32() > prob {
					continue
				}
				out = append(out, Cube{
					Origin: c.Origin.Add(types.XYZ(float32(x)*size, float32(y)*size, float32(z)*size)),
					Size:   size,
				})
			}
		}
	}
	return out
}

// MengerSponge appends a fractal sponge built by iteratively splitting the
// start cube into 3x3x3 sub-cubes for the given number of levels and then
// instancing a unit Box scaled and translated onto the extent of every
// surviving leaf cube.
//
// A negative probability selects the deterministic Menger rule which keeps
// 20 of the 27 sub-cubes per split. A probability in [0,1] keeps each
// sub-cube independently with that probability, drawing from rng; rng must
// not be nil in that case so runs stay reproducible under a caller-chosen
// seed. With level 0 the start cube itself is emitted as a single box.
func MengerSponge[V any](m *Mesh[V], mat types.Mat4, start Cube, level int, probability float32, rng *rand.Rand) error {
	if level < 0 {
		return ErrInvalidLevel
	}
	if start.Size <= 0 {
		return ErrInvalidCubeSize
	}
	if probability > 1 {
		return ErrInvalidProbability
	}
	if probability >= 0 && rng == nil {
		return ErrMissingRandSource
	}

	prev := []Cube{start}
	var next []Cube

	for i := 0; i < level; i++ {
		next = next[:0]
		for _, c := range prev {
			if probability < 0 {
				next = c.split(next)
			} else {
				next = c.splitProb(next, probability, rng)
			}
		}
		prev, next = next, prev
	}

	for _, c := range prev {
		half := c.Size * 0.5
		center := c.Origin.Add(types.XYZ(half, half, half))
		boxMat := mat.Mul4(types.Translate4(center)).Mul4(types.Scale4(types.XYZ(half, half, half)))
		if err := Box(m, boxMat, 1, 1, 1); err != nil {
			return err
		}
	}

	return nil
}
