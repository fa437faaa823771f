// Package shell provides the interactive vector calculator of vectool.
package shell

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/scenekit/scenekit-go/cmd/vectool/commands"
	"github.com/scenekit/scenekit-go/pkg/geom"
	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/scenekit/scenekit-go/pkg/persistence"
)

var errUsage = errors.New("wrong number of arguments")

// Session holds the named vectors of one shell run and executes commands
// against them. It has no terminal dependency so it can be driven by tests.
type Session struct {
	vars      map[string]geom.Vec
	out       io.Writer
	logger    log.Logger
	statePath string
}

// NewSession creates a session writing results to out. Warnings raised by
// vector operations go to logger; statePath is the default file for save
// and load.
func NewSession(out io.Writer, logger log.Logger, statePath string) *Session {
	return &Session{
		vars:      make(map[string]geom.Vec),
		out:       out,
		logger:    logger,
		statePath: statePath,
	}
}

// SetLogger replaces where warnings go. nil means log.Default().
func (s *Session) SetLogger(logger log.Logger) {
	s.logger = logger
}

// Vars returns a copy of the named vectors.
func (s *Session) Vars() map[string]geom.Vec {
	out := make(map[string]geom.Vec, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Exec runs one command line and reports whether the session should end.
// Command errors are printed, not returned.
func (s *Session) Exec(line string) (quit bool) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "quit", "exit", "q":
		return true
	case "set":
		err = s.cmdSet(args)
	case "print", "p":
		err = s.cmdPrint(args)
	case "del":
		err = s.cmdDel(args)
	case "add", "sub", "cross":
		err = s.cmdBinary(cmd, args)
	case "dot":
		err = s.cmdDot(args)
	case "scale":
		err = s.cmdScale(args)
	case "norm":
		err = s.cmdNorm(args)
	case "normalize":
		err = s.cmdNormalize(args)
	case "ortho":
		err = s.cmdOrtho(args)
	case "axis", "plane":
		err = s.cmdProject(cmd, args)
	case "rotate":
		err = s.cmdRotate(args)
	case "save":
		err = s.cmdSave(args)
	case "load":
		err = s.cmdLoad(args)
	default:
		err = fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			err = fmt.Errorf("%s: %w", cmd, err)
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

// operand resolves a variable name or an inline "x,y,z" literal.
func (s *Session) operand(arg string) (geom.Vec, error) {
	if v, ok := s.vars[arg]; ok {
		return v, nil
	}
	if strings.ContainsAny(arg, ",") {
		return commands.ParseVec(arg)
	}
	return geom.Vec{}, fmt.Errorf("unknown vector: %s", arg)
}

func (s *Session) assign(name string, v geom.Vec) {
	s.vars[name] = v
	fmt.Fprintf(s.out, "%s = %s\n", name, v)
}

func (s *Session) cmdSet(args []string) error {
	var text string
	switch len(args) {
	case 2:
		text = args[1]
	case 4:
		text = strings.Join(args[1:], ",")
	default:
		return errUsage
	}
	v, err := commands.ParseVec(text)
	if err != nil {
		return err
	}
	s.assign(args[0], v)
	return nil
}

func (s *Session) cmdPrint(args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(s.vars))
		for n := range s.vars {
			names = append(names, n)
		}
		sort.Strings(names)
		args = names
	}
	for _, a := range args {
		v, err := s.operand(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s = %s\n", a, v)
	}
	return nil
}

func (s *Session) cmdDel(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, a := range args {
		delete(s.vars, a)
	}
	return nil
}

func (s *Session) cmdBinary(op string, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	a, err := s.operand(args[1])
	if err != nil {
		return err
	}
	b, err := s.operand(args[2])
	if err != nil {
		return err
	}
	switch op {
	case "add":
		s.assign(args[0], a.Add(b))
	case "sub":
		s.assign(args[0], a.Sub(b))
	case "cross":
		s.assign(args[0], a.Cross(b))
	}
	return nil
}

func (s *Session) cmdDot(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	a, err := s.operand(args[0])
	if err != nil {
		return err
	}
	b, err := s.operand(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatScalar(a.Dot(b)))
	return nil
}

func (s *Session) cmdScale(args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	a, err := s.operand(args[1])
	if err != nil {
		return err
	}
	k, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid factor %q", args[2])
	}
	s.assign(args[0], a.Scale(k))
	return nil
}

func (s *Session) cmdNorm(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	a, err := s.operand(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatScalar(a.Norm()))
	return nil
}

// cmdNormalize normalizes a variable in place and prints its previous norm.
func (s *Session) cmdNormalize(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	v, ok := s.vars[args[0]]
	if !ok {
		return fmt.Errorf("unknown vector: %s", args[0])
	}
	n := v.NormalizeWithLogger(s.logger)
	s.assign(args[0], v)
	fmt.Fprintf(s.out, "previous norm %s\n", formatScalar(n))
	return nil
}

func (s *Session) cmdOrtho(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	a, err := s.operand(args[1])
	if err != nil {
		return err
	}
	s.assign(args[0], a.Orthogonal())
	return nil
}

// cmdProject projects a variable in place on an axis or plane.
func (s *Session) cmdProject(kind string, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	v, ok := s.vars[args[0]]
	if !ok {
		return fmt.Errorf("unknown vector: %s", args[0])
	}
	d, err := s.operand(args[1])
	if err != nil {
		return err
	}
	if kind == "axis" {
		v.ProjectOnAxisWithLogger(d, s.logger)
	} else {
		v.ProjectOnPlaneWithLogger(d, s.logger)
	}
	s.assign(args[0], v)
	return nil
}

// cmdRotate handles "rotate DST SRC DEGREES AXIS".
func (s *Session) cmdRotate(args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	a, err := s.operand(args[1])
	if err != nil {
		return err
	}
	deg, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid angle %q", args[2])
	}
	axis, err := s.operand(args[3])
	if err != nil {
		return err
	}
	s.assign(args[0], a.RotateWithLogger(deg*math.Pi/180, axis, s.logger))
	return nil
}

func (s *Session) store(args []string) (*persistence.StateStore, error) {
	path := s.statePath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no state file given")
	}
	st := persistence.NewStateStore(path)
	st.SetLogger(s.logger)
	return st, nil
}

func (s *Session) cmdSave(args []string) error {
	st, err := s.store(args)
	if err != nil {
		return err
	}
	if err := st.SaveVectors(s.vars); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %d vectors to %s\n", len(s.vars), st.Path())
	return nil
}

// cmdLoad merges the vectors of a state file into the session.
func (s *Session) cmdLoad(args []string) error {
	st, err := s.store(args)
	if err != nil {
		return err
	}
	vecs, err := st.LoadVectors()
	if err != nil {
		return err
	}
	for n, v := range vecs {
		s.vars[n] = v
	}
	fmt.Fprintf(s.out, "loaded %d vectors from %s\n", len(vecs), st.Path())
	return nil
}

func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  set NAME X Y Z | set NAME X,Y,Z   define a vector
  print [NAME...]                   show vectors (all when none given)
  del NAME...                       forget vectors
  add|sub|cross DST A B             DST = A op B
  dot A B                           print A.B
  scale DST A K                     DST = K*A
  norm A                            print |A|
  normalize NAME                    normalize NAME in place
  ortho DST A                       DST = a vector orthogonal to A
  axis NAME DIR                     project NAME on the axis DIR
  plane NAME NORMAL                 project NAME on the plane with NORMAL
  rotate DST A DEGREES AXIS         DST = A rotated about AXIS
  save [FILE] | load [FILE]         persist or restore all vectors
  help                              this text
  quit                              leave the shell
Operands are vector names or literals such as 1,0,0.
`)
}
