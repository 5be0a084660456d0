// Package ui holds the interactive surface: the command picker and abort
// normalization around it.
package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted is returned when the user backs out of an interactive
// prompt. Backing out of the picker is not a failure; callers exit zero.
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort folds the various abort signals (Esc/Ctrl+C in huh, Ctrl+D
// or a closed stdin, context cancellation) into ErrUserAborted.
func NormalizeAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return ErrUserAborted
	}
	return err
}

// IsAbort reports whether the error represents a user abort.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
