package geom

import (
	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/scenekit/scenekit-go/pkg/record"
)

// ProjectOnAxis replaces v by its orthogonal projection on the line through
// the origin with the given direction. direction need not be normalized but
// must not be null: a squared norm below Epsilon is reported as a warning and
// the division by it is still performed.
func (v *Vec) ProjectOnAxis(direction Vec) {
	v.ProjectOnAxisWithLogger(direction, nil)
}

// ProjectOnAxisWithLogger is ProjectOnAxis reporting to logger.
func (v *Vec) ProjectOnAxisWithLogger(direction Vec, logger log.Logger) {
	sq := direction.SquaredNorm()
	if sq < Epsilon {
		warnNull(logger, "ProjectOnAxis", "axis direction is not normalized", direction)
	}
	*v = direction.Scale(v.Dot(direction) / sq)
}

// ProjectOnPlane replaces v by its orthogonal projection on the plane through
// the origin with the given normal. normal need not be normalized but must not
// be null, with the same warning policy as ProjectOnAxis.
func (v *Vec) ProjectOnPlane(normal Vec) {
	v.ProjectOnPlaneWithLogger(normal, nil)
}

// ProjectOnPlaneWithLogger is ProjectOnPlane reporting to logger.
func (v *Vec) ProjectOnPlaneWithLogger(normal Vec, logger log.Logger) {
	sq := normal.SquaredNorm()
	if sq < Epsilon {
		warnNull(logger, "ProjectOnPlane", "plane normal is not normalized", normal)
	}
	*v = v.Sub(normal.Scale(v.Dot(normal) / sq))
}

// ProjectedOnAxis returns the projection of v on direction, leaving v unchanged.
func (v Vec) ProjectedOnAxis(direction Vec) Vec {
	v.ProjectOnAxis(direction)
	return v
}

// ProjectedOnPlane returns the projection of v on the plane with the given
// normal, leaving v unchanged.
func (v Vec) ProjectedOnPlane(normal Vec) Vec {
	v.ProjectOnPlane(normal)
	return v
}

func warnNull(logger log.Logger, op, msg string, d Vec) {
	log.Warn(logger, log.Event{
		Component: component,
		Operation: op,
		Value:     record.FormatFloat(d.Norm()),
		Message:   msg,
	})
}
