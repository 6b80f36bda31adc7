package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Length(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float32
	}{
		{Vec3{}, 0},
		{Vec3{3, 4, 0}, 5},
		{Vec3{2, 3, 6}, 7},
	}
	for _, tt := range tests {
		if got := tt.v.Length(); got != tt.want {
			t.Errorf("%v.Length() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{1, -2, 3}.Normalize()
	if l := n.Length(); math32.Abs(l-1) > 1e-6 {
		t.Errorf("Normalize().Length() = %v, want 1", l)
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != Up {
		t.Errorf("Vec3{}.Normalize() = %v, want %v", got, Up)
	}
	if got := (Vec3{0, 2, 0}).Normalize(); got != Up {
		t.Errorf("Vec3{0,2,0}.Normalize() = %v, want %v", got, Up)
	}
}

func TestVec3Array(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got := v.Array(); got != [3]float32{1, -2, 3} {
		t.Errorf("Array() = %v, want [1 -2 3]", got)
	}
}
