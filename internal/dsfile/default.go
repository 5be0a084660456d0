package dsfile

import (
	"fmt"

	dserrors "github.com/naoray/ds/internal/errors"
)

// ResolveDefault follows a group's default pointer down to a concrete
// command, returning the final command and the groups descended through
// (excluding the starting group itself). Non-group commands return
// themselves.
//
// A default key that does not name an existing child stops the descent and
// the group resolves as if it had no default; strict turns that into
// ErrDanglingDefault instead.
func (c *Command) ResolveDefault(strict bool) (*Command, []*Group, error) {
	if c.Kind != KindGroup {
		return c, nil, nil
	}

	var chain []*Group
	cur := c
	for cur.Kind == KindGroup && cur.Group.Default != "" {
		next, ok := cur.Group.Commands[cur.Group.Default]
		if !ok {
			if strict {
				return nil, nil, fmt.Errorf("%w: %q", dserrors.ErrDanglingDefault, cur.Group.Default)
			}
			break
		}
		if next.Kind == KindGroup {
			chain = append(chain, next.Group)
		}
		cur = next
	}

	return cur, chain, nil
}
