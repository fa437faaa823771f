package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scenekit/scenekit-go/pkg/geom"
	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/scenekit/scenekit-go/pkg/record"
)

// RunShow prints every element of a record document that carries at least
// one of the x, y, z attributes, as its slash-separated path followed by the
// tab-separated vector. Missing or malformed components are reported to
// logger and shown as 0.
func RunShow(path, format string, w io.Writer, logger log.Logger) error {
	f := record.FormatFromPath(path)
	if format != "" {
		var err error
		if f, err = record.ParseFormat(format); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	root, err := record.Unmarshal(f, data)
	if err != nil {
		return err
	}

	var (
		stack    []string
		writeErr error
	)
	root.Walk(func(el *record.Element, depth int) bool {
		stack = append(stack[:depth], el.Name)
		if el.HasAttr("x") || el.HasAttr("y") || el.HasAttr("z") {
			v := geom.FromRecordWithLogger(el, logger)
			if _, err := fmt.Fprintf(w, "%s\t%s\n", strings.Join(stack, "/"), v); err != nil {
				writeErr = fmt.Errorf("failed to write output: %w", err)
				return false
			}
		}
		return true
	})
	return writeErr
}
