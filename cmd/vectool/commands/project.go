package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scenekit/scenekit-go/pkg/geom"
	"github.com/scenekit/scenekit-go/pkg/log"
)

// ProjectMode selects the projection performed by RunProject.
type ProjectMode int

const (
	ProjectAxis ProjectMode = iota
	ProjectPlane
)

// ParseVec parses "x,y,z" (commas and/or spaces as separators). Unlike record
// parsing, command-line input is strict: anything but three numbers is an error.
func ParseVec(s string) (geom.Vec, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 3 {
		return geom.Vec{}, fmt.Errorf("invalid vector %q: want 3 components, got %d", s, len(fields))
	}
	var v geom.Vec
	for i, f := range fields {
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Vec{}, fmt.Errorf("invalid vector %q: component %d: %w", s, i, err)
		}
		v[i] = c
	}
	return v, nil
}

// RunProject projects vec on the axis (or plane) given by dir and writes the
// result in tab-separated form. A null dir produces a warning on logger and a
// non-finite result, not an error.
func RunProject(mode ProjectMode, dir, vec string, w io.Writer, logger log.Logger) error {
	d, err := ParseVec(dir)
	if err != nil {
		return err
	}
	v, err := ParseVec(vec)
	if err != nil {
		return err
	}

	switch mode {
	case ProjectAxis:
		v.ProjectOnAxisWithLogger(d, logger)
	case ProjectPlane:
		v.ProjectOnPlaneWithLogger(d, logger)
	default:
		return fmt.Errorf("unknown projection mode %d", mode)
	}

	_, err = fmt.Fprintln(w, v)
	return err
}
