package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/scenekit/scenekit-go/pkg/log"
)

// Shell runs a Session behind a readline prompt.
type Shell struct {
	rl      *readline.Instance
	session *Session
}

// New creates a shell. statePath is the default file for save and load.
// Warnings go to log.Default() until SetLogger is called.
func New(statePath string) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vec> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		rl:      rl,
		session: NewSession(rl.Stdout(), nil, statePath),
	}, nil
}

// Stderr returns a writer that coordinates with the prompt. Console
// diagnostics written anywhere else would garble the input line.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// SetLogger routes the warnings of vector operations to logger.
func (s *Shell) SetLogger(logger log.Logger) {
	s.session.SetLogger(logger)
}

// Run reads and executes commands until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.session.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		if s.session.Exec(line) {
			return
		}
	}
}
