package geom

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/scenekit/scenekit-go/pkg/log"
)

// R3 converts v to a gonum r3.Vec.
func (v Vec) R3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// FromR3 converts a gonum r3.Vec to a Vec.
func FromR3(p r3.Vec) Vec {
	return Vec{p.X, p.Y, p.Z}
}

// Rotate returns v rotated by angle radians around axis, counter-clockwise
// when looking down the axis towards the origin. A null axis is reported as a
// warning and yields non-finite components.
func (v Vec) Rotate(angle float64, axis Vec) Vec {
	return v.RotateWithLogger(angle, axis, nil)
}

// RotateWithLogger is Rotate reporting to logger.
func (v Vec) RotateWithLogger(angle float64, axis Vec, logger log.Logger) Vec {
	if angle == 0 {
		return v
	}
	if axis.SquaredNorm() < Epsilon {
		warnNull(logger, "Rotate", "rotation axis is null", axis)
	}
	return FromR3(r3.NewRotation(angle, axis.R3()).Rotate(v.R3()))
}
