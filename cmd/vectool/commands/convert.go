package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/scenekit/scenekit-go/pkg/record"
)

// ConvertOptions configures RunConvert. Empty formats are derived from the
// file extensions; an empty Output writes to the fallback writer.
type ConvertOptions struct {
	Input  string
	Output string
	From   string
	To     string
}

// RunConvert reads a record document in one format and writes it in another.
func RunConvert(opts ConvertOptions, stdout io.Writer) error {
	from := record.FormatFromPath(opts.Input)
	if opts.From != "" {
		f, err := record.ParseFormat(opts.From)
		if err != nil {
			return err
		}
		from = f
	}

	to := record.FormatFromPath(opts.Output)
	if opts.To != "" {
		f, err := record.ParseFormat(opts.To)
		if err != nil {
			return err
		}
		to = f
	}
	if opts.Output == "" && opts.To == "" {
		return fmt.Errorf("output format required when writing to stdout (use -to)")
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	root, err := record.Unmarshal(from, data)
	if err != nil {
		return err
	}

	out, err := record.Marshal(to, root)
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", to, err)
	}

	if opts.Output == "" {
		_, err := stdout.Write(out)
		return err
	}
	return writeOutput(opts.Output, out)
}

// writeOutput writes data to path. A partially written file is removed.
func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
