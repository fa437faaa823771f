package geom

import (
	"math"

	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/scenekit/scenekit-go/pkg/record"
)

// Epsilon is the squared-norm threshold below which a vector is treated as
// null by the warning checks and by Equal.
const Epsilon = 1e-10

const component = "geom.Vec"

// Vec is a 3D vector. Index 0, 1 and 2 hold the x, y and z components.
type Vec [3]float64

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec {
	return Vec{x, y, z}
}

// X returns the x component.
func (v Vec) X() float64 { return v[0] }

// Y returns the y component.
func (v Vec) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vec) Z() float64 { return v[2] }

// SetX sets the x component.
func (v *Vec) SetX(x float64) { v[0] = x }

// SetY sets the y component.
func (v *Vec) SetY(y float64) { v[1] = y }

// SetZ sets the z component.
func (v *Vec) SetZ(z float64) { v[2] = z }

// SetValue sets all three components.
func (v *Vec) SetValue(x, y, z float64) {
	*v = Vec{x, y, z}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v[0] * k, v[1] * k, v[2] * k}
}

// Div returns v / k. A |k| below 1e-10 is reported as a warning but the
// division is still performed.
func (v Vec) Div(k float64) Vec {
	if math.Abs(k) < Epsilon {
		log.Warn(nil, log.Event{
			Component: component,
			Operation: "Div",
			Value:     record.FormatFloat(k),
			Message:   "dividing by a null value",
		})
	}
	return Vec{v[0] / k, v[1] / k, v[2] / k}
}

// Dot returns the dot product v · o.
func (v Vec) Dot(o Vec) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product v × o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// SquaredNorm returns |v|², which avoids the square root of Norm.
func (v Vec) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Normalize scales v to unit length and returns its previous norm.
// A null vector is reported as a warning and still divided by its norm.
func (v *Vec) Normalize() float64 {
	return v.NormalizeWithLogger(nil)
}

// NormalizeWithLogger is Normalize reporting to logger.
func (v *Vec) NormalizeWithLogger(logger log.Logger) float64 {
	n := v.Norm()
	if n < Epsilon {
		log.Warn(logger, log.Event{
			Component: component,
			Operation: "Normalize",
			Value:     record.FormatFloat(n),
			Message:   "normalizing a null vector",
		})
	}
	*v = Vec{v[0] / n, v[1] / n, v[2] / n}
	return n
}

// Unit returns a normalized copy of v.
func (v Vec) Unit() Vec {
	v.Normalize()
	return v
}

// Orthogonal returns a vector orthogonal to v. It is not normalized, and it
// is null only when v is null.
func (v Vec) Orthogonal() Vec {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	switch {
	case ay >= 0.9*ax && az >= 0.9*ax:
		return Vec{0, -v[2], v[1]}
	case ax >= 0.9*ay && az >= 0.9*ay:
		return Vec{-v[2], 0, v[0]}
	default:
		return Vec{-v[1], v[0], 0}
	}
}

// Equal reports whether v and o are the same point up to Epsilon on the
// squared distance. Use == for exact comparison.
func (v Vec) Equal(o Vec) bool {
	return v.Sub(o).SquaredNorm() < Epsilon
}

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vec) ApproxEqual(o Vec, tol float64) bool {
	for i := range v {
		if math.Abs(v[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
