package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/scenekit/scenekit-go/pkg/log"
)

// Stats holds aggregate statistics about a diagnostics file.
type Stats struct {
	TotalEvents int
	ByLevel     map[log.Level]int
	BySource    map[string]int
	ByAttribute map[string]int
	Sessions    map[string]*SessionStats
	TimeRange   struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Warnings  int
}

// RunStats analyzes the diagnostics file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		ByLevel:     make(map[log.Level]int),
		BySource:    make(map[string]int),
		ByAttribute: make(map[string]int),
		Sessions:    make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.ByLevel[event.Level]++
	s.BySource[event.Component+"."+event.Operation]++
	if event.Attribute != "" {
		s.ByAttribute[event.Attribute]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
	if event.Timestamp.Before(sess.FirstSeen) {
		sess.FirstSeen = event.Timestamp
	}
	if event.Level >= log.LevelWarn {
		sess.Warnings++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Diagnostics Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Level:")
	for _, l := range []log.Level{log.LevelDebug, log.LevelInfo, log.LevelWarn, log.LevelError} {
		if count := stats.ByLevel[l]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", l.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Source:")
	for _, k := range sortedKeys(stats.BySource) {
		fmt.Fprintf(w, "  %-28s %d\n", k+":", stats.BySource[k])
	}

	if len(stats.ByAttribute) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Events by Attribute:")
		for _, k := range sortedKeys(stats.ByAttribute) {
			fmt.Fprintf(w, "  %-12s %d\n", k+":", stats.ByAttribute[k])
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) == 0 {
		return
	}

	type sessInfo struct {
		id    string
		stats *SessionStats
	}
	sessions := make([]sessInfo, 0, len(stats.Sessions))
	for id, ss := range stats.Sessions {
		sessions = append(sessions, sessInfo{id, ss})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, s := range sessions {
		duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] %d events, %d warnings, duration %s\n",
			shortenID(s.id), s.stats.Events, s.stats.Warnings, duration)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
