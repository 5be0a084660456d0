// Package git discovers repository context for scope checks and document
// discovery. It shells out to the git binary rather than linking a git
// implementation.
package git

import (
	"context"
	"strings"

	"github.com/naoray/ds/internal/exec"
)

// DiscoverRoot returns the top-level directory of the repository containing
// dir, or the empty string when dir is not inside a work tree. git being
// missing entirely is treated the same way; commands scoped to a repository
// simply stay hidden.
func DiscoverRoot(ctx context.Context, commander exec.Commander, dir string) string {
	out, err := commander.Run(ctx, dir, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
