// Package vector provides an immutable 3D vector value type
package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroMagnitude is returned by operations that are undefined for a
// vector whose magnitude is exactly zero.
var ErrZeroMagnitude = errors.New("zero magnitude vector")

// Vector3D is an immutable three-component vector with float64 components.
// Every operation returns a new value; a Vector3D never changes after
// construction. The type is comparable with ==, which compares components
// structurally (with the usual float64 caveats: NaN != NaN, 0.0 == -0.0).
//
// Non-finite components are accepted everywhere and propagate through
// arithmetic per IEEE-754; the only failing operations are Normalize and
// AngleBetween on a zero-magnitude operand.
type Vector3D struct {
	x, y, z float64
}

// New creates a 3D vector with the given components
func New(x, y, z float64) Vector3D {
	return Vector3D{x: x, y: y, z: z}
}

// X returns the x-component
func (v Vector3D) X() float64 { return v.x }

// Y returns the y-component
func (v Vector3D) Y() float64 { return v.y }

// Z returns the z-component
func (v Vector3D) Z() float64 { return v.z }

// String formats the vector as "(x, y, z)" with each component rendered
// to exactly two decimal places. Rounding follows Go's %.2f formatting of
// the stored binary value (nearest, ties to even), so New(1.005, 0, 0)
// prints "(1.00, 0.00, 0.00)". Negative zero prints as -0.00; non-finite
// components print as NaN, +Inf or -Inf.
func (v Vector3D) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.x, v.y, v.z)
}

// Magnitude returns the vector's Euclidean length
func (v Vector3D) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// Normalize returns a unit vector in the same direction.
// It returns ErrZeroMagnitude when the magnitude is exactly zero. The
// check is exact equality, not a tolerance: any nonzero computed
// magnitude, however small, normalizes without error. Components tiny
// enough that their squares underflow to zero yield an exactly zero
// magnitude and are rejected like the zero vector.
func (v Vector3D) Normalize() (Vector3D, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector3D{}, ErrZeroMagnitude
	}
	return Vector3D{x: v.x / m, y: v.y / m, z: v.z / m}, nil
}

// Add returns the componentwise sum of two vectors
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{x: v.x + o.x, y: v.y + o.y, z: v.z + o.z}
}

// Multiply scales the vector by a scalar
func (v Vector3D) Multiply(scalar float64) Vector3D {
	return Vector3D{x: v.x * scalar, y: v.y * scalar, z: v.z * scalar}
}

// DotProduct returns the dot product of two vectors
func (v Vector3D) DotProduct(o Vector3D) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// AngleBetween returns the angle between two vectors in degrees, in the
// range [0, 180]. It returns ErrZeroMagnitude when either operand has
// exactly zero magnitude, checked before any division. The cosine is
// clamped to [-1, 1] to keep float overshoot inside the domain of acos;
// no other tolerance is applied.
func (v Vector3D) AngleBetween(o Vector3D) (float64, error) {
	m1 := v.Magnitude()
	m2 := o.Magnitude()
	if m1 == 0 || m2 == 0 {
		return 0, ErrZeroMagnitude
	}
	cosTheta := v.DotProduct(o) / (m1 * m2)
	cosTheta = math.Max(-1.0, math.Min(1.0, cosTheta))
	return math.Acos(cosTheta) * 180.0 / math.Pi, nil
}
