// Package runner turns a resolved command into a shell invocation and
// executes it with the caller's terminal attached.
package runner

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	osexec "os/exec"
	"slices"
	"strings"

	"github.com/charmbracelet/x/term"
	"mvdan.cc/sh/v3/syntax"

	"github.com/naoray/ds/internal/dsfile"
	"github.com/naoray/ds/internal/utils"
)

// Invocation is a fully assembled command ready to spawn.
type Invocation struct {
	// Line is the complete shell line, prefix and quoted extra arguments
	// included.
	Line string
	// Dir is the working directory, empty to inherit the caller's.
	Dir string
	// Env holds variables overlaid on the inherited environment.
	Env map[string]string
}

// Build assembles the invocation for a resolved command. Extra arguments are
// the target tokens left over after matching; each one is shell-quoted on
// its own so the child sees them as the user typed them.
func Build(cmd *dsfile.Command, ancestors []*dsfile.Group, extra []string, envVars map[string]string, envPrefix string, ws dsfile.Workspace, docPath string) (*Invocation, error) {
	line, ok := commandLine(cmd)
	if !ok {
		return nil, fmt.Errorf("command has no runnable command line")
	}

	var b strings.Builder
	if envPrefix != "" {
		b.WriteString(envPrefix)
		b.WriteString(" ")
	}
	b.WriteString(line)
	for _, arg := range extra {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return nil, fmt.Errorf("quoting argument %q: %w", arg, err)
		}
		b.WriteString(" ")
		b.WriteString(quoted)
	}

	dir, err := workdir(cmd, ancestors, docPath, ws.Home)
	if err != nil {
		return nil, err
	}

	return &Invocation{Line: b.String(), Dir: dir, Env: envVars}, nil
}

func commandLine(cmd *dsfile.Command) (string, bool) {
	switch cmd.Kind {
	case dsfile.KindInline:
		return cmd.Inline, true
	case dsfile.KindConfig:
		return cmd.Config.Command, true
	default:
		return "", false
	}
}

// workdir picks the command's own root when it has one, otherwise the
// nearest ancestor root. Commands without any root inherit the caller's
// directory.
func workdir(cmd *dsfile.Command, ancestors []*dsfile.Group, docPath, home string) (string, error) {
	root := cmd.Root()
	if root == nil {
		for i := len(ancestors) - 1; i >= 0; i-- {
			if ancestors[i].Root != nil {
				root = ancestors[i].Root
				break
			}
		}
	}
	if root == nil {
		return "", nil
	}

	dir, err := utils.ResolveAgainst(root.Path, docPath, home)
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return dir, nil
}

// Spawn runs the invocation through bash -c with the caller's stdio attached
// and returns the child's exit code. When stdout is a terminal the usual
// color opt-in variables are set so children keep their colored output
// despite running under a wrapper.
func Spawn(ctx context.Context, inv *Invocation) (int, error) {
	cmd := osexec.CommandContext(ctx, "bash", "-c", inv.Line)
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	env := os.Environ()
	if term.IsTerminal(os.Stdout.Fd()) {
		env = append(env, "CLICOLOR=1", "CLICOLOR_FORCE=1", "FORCE_COLOR=1")
	}
	for _, key := range slices.Sorted(maps.Keys(inv.Env)) {
		env = append(env, key+"="+inv.Env[key])
	}
	cmd.Env = env

	err := cmd.Run()
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, fmt.Errorf("running %q: %w", inv.Line, err)
	}
	return 0, nil
}
