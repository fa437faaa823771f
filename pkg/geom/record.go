package geom

import (
	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/scenekit/scenekit-go/pkg/record"
)

var axisNames = [3]string{"x", "y", "z"}

// Record returns an element named name holding the x, y and z attributes:
//
//	<name x=".." y=".." z=".."/>
//
// Components are written as the shortest decimal text that parses back to
// the same float64.
func (v Vec) Record(name string) *record.Element {
	el := record.NewElement(name)
	for i, a := range axisNames {
		el.SetFloat(a, v[i])
	}
	return el
}

// FromRecord reads a vector from an element with x, y and z attributes.
// A missing or malformed attribute yields 0 for that component and a warning.
func FromRecord(el *record.Element) Vec {
	return FromRecordWithLogger(el, nil)
}

// FromRecordWithLogger is FromRecord reporting to logger.
func FromRecordWithLogger(el *record.Element, logger log.Logger) Vec {
	scoped := log.WithScope(logger, component, "FromRecord")
	if el == nil {
		log.Warn(scoped, log.Event{Message: "no element to read vector from, using null vector"})
		return Vec{}
	}
	var v Vec
	for i, a := range axisNames {
		v[i] = record.Float(el, a, 0, scoped)
	}
	return v
}

// InitFromRecord restores v from an element created by Record. The previous
// value of v is discarded entirely.
func (v *Vec) InitFromRecord(el *record.Element) {
	*v = FromRecord(el)
}
