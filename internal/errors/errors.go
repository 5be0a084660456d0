// Package errors defines the typed errors used across the resolution
// pipeline. All of them are fatal within a single invocation; callers wrap
// them with %w and the CLI maps them to a non-zero exit code.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatch is returned when the target tokens resolve to nothing.
	ErrNoMatch = errors.New("no matching command found")

	// ErrNoEnvironment is returned when a command defines environments but
	// none was named and no default is configured.
	ErrNoEnvironment = errors.New("no environment specified and no default environment is set")

	// ErrUnknownEnvironment is returned when the leading argument does not
	// name a defined environment and no default can take over.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrDefaultEnvMissing is returned when a configured default environment
	// does not exist in the merged environment set.
	ErrDefaultEnvMissing = errors.New("default environment not defined")

	// ErrScopeResolution is returned when a root path cannot be resolved
	// while checking visibility. It aborts the walk rather than skipping.
	ErrScopeResolution = errors.New("resolving command scope")

	// ErrConflict is the sentinel matched by ConflictError.
	ErrConflict = errors.New("conflicting command definitions")

	// ErrDanglingDefault is returned in strict mode when a group's default
	// key does not name an existing command.
	ErrDanglingDefault = errors.New("default does not name an existing command")
)

// ConflictError reports an ambiguous match under the Error conflict policy.
// It names the command path that more than one source defines.
type ConflictError struct {
	Keys []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting definitions for command %q (set on_conflict to Override to pick the highest-priority source)", strings.Join(e.Keys, " "))
}

// Is lets errors.Is(err, ErrConflict) match a ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
