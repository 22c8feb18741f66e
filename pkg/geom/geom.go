// Package geom provides the tolerance-based vector helpers shared by the
// profile engine. All comparisons use an absolute epsilon; B-rep data coming
// out of a CAD kernel is only ever equal to within tolerance.
package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Eps is the absolute tolerance for all near-zero and equality tests.
const Eps = 1e-9

// Vec3 is the module-wide 3D vector type.
type Vec3 = v3.Vec

// NearZero reports whether x is within Eps of zero.
func NearZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0, Eps)
}

// EqualWithin reports whether a and b are within Eps of each other.
func EqualWithin(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Eps)
}

// Parallel reports whether a and b point along the same line. Antiparallel
// vectors count as parallel: the component-wise test is applied to both the
// direct difference and the negated difference. Inputs are expected to be
// unit vectors (kernel normals and axes always are).
func Parallel(a, b Vec3) bool {
	return coincident(a, b) || coincident(a, b.Neg())
}

// coincident is the component-wise near-zero test on a - b.
func coincident(a, b Vec3) bool {
	d := a.Sub(b)
	return NearZero(d.X) && NearZero(d.Y) && NearZero(d.Z)
}

// Direction returns the unit vector from start to end, or the zero vector
// when the points coincide within tolerance.
func Direction(start, end Vec3) Vec3 {
	d := end.Sub(start)
	if NearZero(d.Length()) {
		return Vec3{}
	}
	return d.Normalize()
}

// IsZero reports whether v is the zero vector within tolerance.
func IsZero(v Vec3) bool {
	return NearZero(v.X) && NearZero(v.Y) && NearZero(v.Z)
}
