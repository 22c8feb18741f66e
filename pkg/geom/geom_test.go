package geom

import (
	"math"
	"testing"
)

func TestParallel(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want bool
	}{
		{"same axis", Vec3{X: 1}, Vec3{X: 1}, true},
		{"antiparallel", Vec3{Z: 1}, Vec3{Z: -1}, true},
		{"perpendicular", Vec3{X: 1}, Vec3{Y: 1}, false},
		{"within tolerance", Vec3{X: 1}, Vec3{X: 1, Y: 1e-10}, true},
		{"beyond tolerance", Vec3{X: 1}, Vec3{X: 1, Y: 1e-6}, false},
		{"skew unit vectors", Vec3{X: 1}, Vec3{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parallel(tt.a, tt.b); got != tt.want {
				t.Errorf("Parallel(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNearZero(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"zero", 0, true},
		{"sub-epsilon", 5e-10, true},
		{"negative sub-epsilon", -5e-10, true},
		{"above epsilon", 1e-8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearZero(tt.x); got != tt.want {
				t.Errorf("NearZero(%g) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	d := Direction(Vec3{X: 1, Y: 1, Z: 1}, Vec3{X: 4, Y: 1, Z: 1})
	if !Parallel(d, Vec3{X: 1}) {
		t.Errorf("Direction along X = %v, want unit X", d)
	}
	if !EqualWithin(d.Length(), 1) {
		t.Errorf("Direction length = %g, want 1", d.Length())
	}

	zero := Direction(Vec3{X: 2}, Vec3{X: 2})
	if !IsZero(zero) {
		t.Errorf("Direction of coincident points = %v, want zero vector", zero)
	}
}
