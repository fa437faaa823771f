package commands

import (
	"fmt"
	"io"

	"github.com/scenekit/scenekit-go/pkg/log"
)

// RunView prints the events of a diagnostics file that match filter.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a header line and an indented detail line per event.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-5s %s.%s\n",
		ts, shortenID(event.SessionID), event.Level, event.Component, event.Operation)

	fmt.Fprintf(w, "  %s\n", event.Message)
	if event.Attribute != "" {
		fmt.Fprintf(w, "  Attribute: %s\n", event.Attribute)
	}
	if event.Value != "" {
		fmt.Fprintf(w, "  Value: %q\n", event.Value)
	}
}

func shortenID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
