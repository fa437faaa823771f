// Package geom provides the geometry value types of scenekit.
//
// Vec is a three-component float64 vector used for positions, directions and
// normals. It is a plain array, so components can be read either by index
// (v[0]) or by name (v.X()), and both always refer to the same storage:
//
//	v := geom.New(1, 2, 3)
//	v[1] = 5          // same slot as v.SetY(5)
//	n := geom.New(0, 0, 1)
//	v.ProjectOnPlane(n)
//
// # Tolerant Behavior
//
// Vec operations never return errors. Reading a vector from a record with
// missing or malformed attributes substitutes 0 for those components, and
// projecting on a near-null direction still computes the result. In both cases
// a warning is sent to the diagnostics logger (log.Default() unless one is
// passed explicitly) so that misuse stays visible.
//
// # Record Form
//
// Record and FromRecord convert a Vec to and from a record.Element of the form
//
//	<anyTagName x="1.5" y="0" z="-2.25"/>
package geom
