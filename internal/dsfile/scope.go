package dsfile

import (
	"fmt"

	dserrors "github.com/naoray/ds/internal/errors"
	"github.com/naoray/ds/internal/utils"
)

// Workspace carries the ambient state resolution depends on. Tests construct
// synthetic workspaces instead of touching the real filesystem.
type Workspace struct {
	// Dir is the absolute current directory.
	Dir string
	// RepoRoot is the discovered repository root; empty when the current
	// directory is outside any repository.
	RepoRoot string
	// Home is the user's home directory, used for tilde expansion.
	Home string
}

// InScope reports whether the node is visible from the workspace. Only the
// node's own root is consulted; inherited roots affect the working directory
// at execution time, not visibility. A path that cannot be resolved is a
// fatal error, never a skip.
func (c *Command) InScope(ws Workspace, docPath string) (bool, error) {
	root := c.Root()
	if root == nil || root.Scope == ScopeGlobal {
		return true, nil
	}

	target, err := utils.ResolveAgainst(root.Path, docPath, ws.Home)
	if err != nil {
		return false, fmt.Errorf("%w: %v", dserrors.ErrScopeResolution, err)
	}

	switch root.Scope {
	case ScopeExact:
		return ws.Dir == target, nil
	case ScopeGitRoot:
		// Anchored to one specific repository: the discovered root must be
		// the configured path, not just any repository.
		if ws.RepoRoot == "" {
			return false, nil
		}
		return utils.WithinRoot(ws.RepoRoot, ws.Dir) && ws.RepoRoot == target, nil
	default:
		return true, nil
	}
}
