package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	isbnerrors "isbnsplit/internal/isbn/errors"
	"isbnsplit/internal/isbn/service"
	"isbnsplit/pkg/logger"
	"isbnsplit/pkg/model"
)

const (
	ExitOK    = 0
	ExitFatal = 1
)

type Session struct {
	In        io.Reader
	Out       io.Writer
	ErrOut    io.Writer
	MaxLength int
	Service   service.DecomposerService
	Log       *logger.Logger
}

// Run prompts for one ISBN, decomposes it and prints the outcome. It
// returns the process exit code.
func (s *Session) Run(ctx context.Context) int {
	fmt.Fprint(s.Out, Prompt)

	line, err := NewLineReader(s.In, s.MaxLength).ReadLine()
	switch {
	case errors.Is(err, isbnerrors.ErrInputTooLong):
		s.Log.Warn("ISBN input rejected", "error", err, "max_length", s.MaxLength)
		fmt.Fprintln(s.Out, TooLongMessage)
		return ExitOK
	case err != nil:
		s.Log.Error("Failed to read ISBN input", "error", err)
		fmt.Fprintln(s.ErrOut, FatalMessage)
		return ExitFatal
	}

	result, err := s.Service.Decompose(ctx, line)
	if err != nil && result.Kind() == model.ErrorNone {
		// Not a validation failure: nothing meaningful to render.
		s.Log.Error("ISBN decomposition failed", "error", err)
		fmt.Fprintln(s.ErrOut, FatalMessage)
		return ExitFatal
	}

	if err := Render(s.Out, result); err != nil {
		s.Log.Error("Failed to write result", "error", err)
		return ExitFatal
	}
	return ExitOK
}
