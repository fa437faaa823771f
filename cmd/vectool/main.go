// Command vectool works with 3D vectors and the record documents that store
// them.
//
// Usage:
//
//	vectool <command> [flags] [args]
//
// Commands:
//
//	project  Project a vector on an axis or a plane
//	convert  Convert a record document between xml, yaml, cbor and json
//	show     Print every vector stored in a record document
//	diag     Inspect diagnostics files (view, stats, export, filter)
//	shell    Interactive vector calculator
//
// Examples:
//
//	# Project on the x axis
//	vectool project -axis 1,0,0 3,4,5
//
//	# Convert XML to YAML
//	vectool convert -o scene.yaml scene.xml
//
//	# Show vectors, keeping the warnings in a diagnostics file
//	vectool show -diag-log show.dlog scene.xml
//
//	# Summarize the warnings
//	vectool diag stats show.dlog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/scenekit/scenekit-go/cmd/vectool/commands"
	"github.com/scenekit/scenekit-go/cmd/vectool/shell"
	"github.com/scenekit/scenekit-go/pkg/log"
)

const usage = `vectool - 3D vector and record document tool

Usage:
  vectool <command> [flags] [args]

Commands:
  project  Project a vector on an axis or a plane
  convert  Convert a record document between xml, yaml, cbor and json
  show     Print every vector stored in a record document
  diag     Inspect diagnostics files (view, stats, export, filter)
  shell    Interactive vector calculator

Use "vectool <command> -help" for more information about a command.
`

const diagUsage = `vectool diag - Inspect diagnostics files

Usage:
  vectool diag <view|stats|export|filter> [flags] <file.dlog>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "project":
		runProject(args)
	case "convert":
		runConvert(args)
	case "show":
		runShow(args)
	case "diag":
		runDiag(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loggingFlags are shared by the commands that run vector operations.
type loggingFlags struct {
	verbose *bool
	backend *string
	diagLog *string
}

func addLoggingFlags(fs *flag.FlagSet) *loggingFlags {
	return &loggingFlags{
		verbose: fs.Bool("v", false, "Show debug diagnostics on stderr"),
		backend: fs.String("log-backend", "slog", "Console diagnostics backend (slog, logrus)"),
		diagLog: fs.String("diag-log", "", "Also append diagnostics to this CBOR file"),
	}
}

// setup installs the process-wide diagnostics logger: console output to
// stderr, optionally a diagnostics file, all stamped with a fresh session ID.
// The file keeps warnings and above unless -v is given. The returned function
// closes the file.
func (f *loggingFlags) setup(stderr io.Writer) (log.Logger, func(), error) {
	var console log.Logger
	switch *f.backend {
	case "slog":
		level := slog.LevelWarn
		if *f.verbose {
			level = slog.LevelDebug
		}
		console = log.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	case "logrus":
		lr := logrus.New()
		lr.SetOutput(stderr)
		lr.SetLevel(logrus.WarnLevel)
		if *f.verbose {
			lr.SetLevel(logrus.DebugLevel)
		}
		console = log.NewLogrusAdapter(lr)
	default:
		return nil, nil, fmt.Errorf("unknown log backend: %s (supported: slog, logrus)", *f.backend)
	}

	closeFn := func() {}
	sink := console
	if *f.diagLog != "" {
		minLevel := log.LevelWarn
		if *f.verbose {
			minLevel = log.LevelDebug
		}
		fl, err := log.NewFileLogger(*f.diagLog, log.WithMinLevel(minLevel))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open diagnostics file: %w", err)
		}
		closeFn = func() { fl.Close() }
		sink = log.NewMultiLogger(console, fl)
	}

	sessionID := log.NewSessionID()
	logger := log.WithSession(sink, sessionID)
	log.SetDefault(logger)
	log.Debug(logger, log.Event{Component: "vectool", Operation: "start", Value: sessionID, Message: "diagnostics session started"})
	return logger, closeFn, nil
}

func runProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vectool project - Project a vector on an axis or a plane

Usage:
  vectool project (-axis DIR | -plane NORMAL) [flags] <x,y,z>

Flags:
`)
		fs.PrintDefaults()
	}

	axis := fs.String("axis", "", "Axis direction dx,dy,dz")
	plane := fs.String("plane", "", "Plane normal nx,ny,nz")
	lf := addLoggingFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 || (*axis == "") == (*plane == "") {
		fmt.Fprintln(os.Stderr, "Error: a vector and exactly one of -axis or -plane required")
		fs.Usage()
		os.Exit(1)
	}

	logger, closeFn, err := lf.setup(os.Stderr)
	if err != nil {
		fatal(err)
	}
	defer closeFn()

	mode, dir := commands.ProjectAxis, *axis
	if *plane != "" {
		mode, dir = commands.ProjectPlane, *plane
	}

	if err := commands.RunProject(mode, dir, fs.Arg(0), os.Stdout, logger); err != nil {
		closeFn()
		fatal(err)
	}
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vectool convert - Convert a record document

Usage:
  vectool convert [flags] <input>

Formats default to the file extensions (xml, yaml, cbor, json).

Flags:
`)
		fs.PrintDefaults()
	}

	from := fs.String("from", "", "Input format (default: from extension)")
	to := fs.String("to", "", "Output format (default: from -o extension)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: input file path required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.ConvertOptions{
		Input:  fs.Arg(0),
		Output: *output,
		From:   *from,
		To:     *to,
	}
	if err := commands.RunConvert(opts, os.Stdout); err != nil {
		fatal(err)
	}
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vectool show - Print every vector stored in a record document

Usage:
  vectool show [flags] <file>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "", "Input format (default: from extension)")
	lf := addLoggingFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}

	logger, closeFn, err := lf.setup(os.Stderr)
	if err != nil {
		fatal(err)
	}
	defer closeFn()

	if err := commands.RunShow(fs.Arg(0), *format, os.Stdout, logger); err != nil {
		closeFn()
		fatal(err)
	}
}

func runShell(args []string) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vectool shell - Interactive vector calculator

Usage:
  vectool shell [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	state := fs.String("state", "vectors.xml", "Default file for save and load")
	lf := addLoggingFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	sh, err := shell.New(*state)
	if err != nil {
		fatal(err)
	}

	logger, closeFn, err := lf.setup(sh.Stderr())
	if err != nil {
		fatal(err)
	}
	defer closeFn()
	sh.SetLogger(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	sh.Run(ctx)
}

// diagFilterFlags registers the event filter flags of the diag subcommands.
func diagFilterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.MinLevel, "level", "", "Minimum level (debug, info, warn, error)")
	fs.StringVar(&opts.Component, "component", "", "Filter by component (e.g. geom.Vec)")
	fs.StringVar(&opts.Operation, "op", "", "Filter by operation (e.g. ProjectOnAxis)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return opts
}

func runDiag(args []string) {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, diagUsage)
		os.Exit(1)
	}

	sub := args[0]
	fs := flag.NewFlagSet("diag "+sub, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "vectool diag %s\n\nUsage:\n  vectool diag %s [flags] <file.dlog>\n\nFlags:\n", sub, sub)
		fs.PrintDefaults()
	}

	opts := diagFilterFlags(fs)
	var format, output *string
	switch sub {
	case "view", "stats":
	case "export":
		format = fs.String("format", "jsonl", "Output format (jsonl, csv)")
		output = fs.String("o", "", "Output file (default: stdout)")
	case "filter":
		output = fs.String("o", "", "Output file (required)")
	case "-h", "-help", "--help", "help":
		fmt.Print(diagUsage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown diag command: %s\n", sub)
		fmt.Fprint(os.Stderr, diagUsage)
		os.Exit(1)
	}

	if err := fs.Parse(args[1:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	path := fs.Arg(0)

	if sub == "filter" {
		if *output == "" {
			fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
			fs.Usage()
			os.Exit(1)
		}
		n, err := commands.RunFilter(path, *output, *opts)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Filtered %d events to %s\n", n, *output)
		return
	}

	filter, err := opts.BuildFilter()
	if err != nil {
		fatal(err)
	}

	switch sub {
	case "view":
		err = commands.RunView(path, filter, os.Stdout)
	case "stats":
		err = commands.RunStats(path, filter, os.Stdout)
	case "export":
		err = commands.RunExport(path, *format, *output, filter, os.Stdout)
	}
	if err != nil {
		fatal(err)
	}
}
