package dsfile

import "sort"

// Signal controls the walk from inside a visitor.
type Signal int

const (
	// Continue descends into the node when it is a group.
	Continue Signal = iota
	// Skip does not descend but keeps walking siblings.
	Skip
	// Stop aborts the entire walk immediately.
	Stop
)

// VisitFunc receives the path from the document root to the node, the node
// itself, and the ancestor groups root-to-parent. The slices are freshly
// built per node and safe to retain.
type VisitFunc func(keys []string, cmd *Command, ancestors []*Group) Signal

// Walk traverses the group's commands depth-first in pre-order. Command
// names are visited in sorted order so traversal is deterministic.
func (g *Group) Walk(visit VisitFunc) Signal {
	return g.walk(nil, nil, visit)
}

func (g *Group) walk(keys []string, ancestors []*Group, visit VisitFunc) Signal {
	// Full slice expressions keep child paths from aliasing sibling paths.
	ancestors = append(ancestors[:len(ancestors):len(ancestors)], g)

	names := make([]string, 0, len(g.Commands))
	for name := range g.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := g.Commands[name]
		childKeys := append(keys[:len(keys):len(keys)], name)

		switch visit(childKeys, cmd, ancestors) {
		case Skip:
			continue
		case Stop:
			return Stop
		}

		if cmd.Kind == KindGroup {
			if cmd.Group.walk(childKeys, ancestors, visit) == Stop {
				return Stop
			}
		}
	}

	return Continue
}
