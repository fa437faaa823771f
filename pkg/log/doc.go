// Package log provides structured diagnostics for scenekit.
//
// Geometry and record code never fails on bad input. Instead it substitutes a
// default value and reports what happened through a Logger. This package
// defines that Logger interface, the Event type it receives, and a set of
// implementations. It is separate from operational logging (slog): diagnostics
// are machine-readable events that can be captured, filtered and replayed.
//
// # Basic Usage
//
// Diagnostics go to the process-wide default logger unless a caller passes
// one explicitly:
//
//	// For development: warnings on the console via slog (the default)
//	log.SetDefault(log.NewSlogAdapter(slog.Default()))
//
//	// For hosts already using logrus
//	log.SetDefault(log.NewLogrusAdapter(logrus.StandardLogger()))
//
//	// For offline analysis: write to a CBOR file
//	fl, _ := log.NewFileLogger("/var/log/scenekit/viewer.dlog")
//	log.SetDefault(log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl))
//
// # Event Fields
//
// Every event names the Component and Operation that produced it. Attribute
// and Value identify the offending record attribute or numeric input when
// there is one.
//
// # File Format
//
// Diagnostics files use CBOR encoding with .dlog extension. The vectool diag
// subcommands provide viewing, filtering, and export.
package log
