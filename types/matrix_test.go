package types

import (
	"math"
	"testing"
)

func vec4AlmostEqual(a, b Vec4) bool {
	for i := 0; i < 4; i++ {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestTranslateScaleComposition(t *testing.T) {
	mat := Translate4(XYZ(1, 2, 3)).Mul4(Scale4(XYZ(2, 2, 2)))

	got := mat.Mul4x1(XYZW(1, 1, 1, 1))
	exp := XYZW(3, 4, 5, 1)
	if !vec4AlmostEqual(got, exp) {
		t.Fatalf("expected transformed point %v; got %v", exp, got)
	}

	// direction vectors (w=0) must ignore the translation part
	got = mat.Mul4x1(XYZW(0, 0, 1, 0))
	exp = XYZW(0, 0, 2, 0)
	if !vec4AlmostEqual(got, exp) {
		t.Fatalf("expected transformed direction %v; got %v", exp, got)
	}
}

func TestRotate4(t *testing.T) {
	mat := Rotate4(math.Pi*0.5, XYZ(0, 1, 0))

	got := mat.Mul4x1(XYZW(0, 0, 1, 0))
	exp := XYZW(1, 0, 0, 0)
	if !vec4AlmostEqual(got, exp) {
		t.Fatalf("expected +Z to rotate onto +X; got %v", got)
	}
}

func TestRotate4MatchesQuatRotate(t *testing.T) {
	axis := XYZ(1, 2, 3).Normalize()
	angle := float32(0.7)

	v := XYZ(0.5, -1, 2)
	exp := QuatFromAxisAngle(axis, angle).Rotate(v)
	got := Rotate4(angle, axis).Mul4x1(v.Vec4(0)).Vec3()

	for i := 0; i < 3; i++ {
		if math.Abs(float64(exp[i]-got[i])) > 1e-5 {
			t.Fatalf("expected matrix rotation to match quaternion rotation; got %v want %v", got, exp)
		}
	}
}

func TestIdent4(t *testing.T) {
	v := XYZW(1, -2, 3, 1)
	if got := Ident4().Mul4x1(v); got != v {
		t.Fatalf("expected identity transform to preserve %v; got %v", v, got)
	}
}
