package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/scenekit/scenekit-go/pkg/log"
)

// FilterOptions holds the textual filter flags shared by the diag commands.
type FilterOptions struct {
	SessionID string
	MinLevel  string
	Component string
	Operation string
	TimeStart string
	TimeEnd   string
}

// BuildFilter converts the flag values into a log.Filter.
func (o FilterOptions) BuildFilter() (log.Filter, error) {
	filter := log.Filter{
		SessionID: o.SessionID,
		Component: o.Component,
		Operation: o.Operation,
	}

	if o.MinLevel != "" {
		l, err := log.ParseLevel(o.MinLevel)
		if err != nil {
			return log.Filter{}, err
		}
		filter.MinLevel = &l
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// RunFilter copies the events of path matching opts into a new diagnostics
// file at output and returns how many were written.
func RunFilter(path, output string, opts FilterOptions) (int, error) {
	filter, err := opts.BuildFilter()
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	out, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer out.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		out.Log(event)
		count++
	}
	return count, nil
}
