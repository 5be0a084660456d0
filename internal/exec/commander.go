// Package exec abstracts external command execution so callers that shell
// out (git discovery, mostly) can be tested without touching the system.
package exec

import (
	"context"
	"os/exec"
)

// Commander runs an external command and returns its combined output.
type Commander interface {
	Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error)
}

// RealCommander executes commands against the real operating system.
type RealCommander struct{}

func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
