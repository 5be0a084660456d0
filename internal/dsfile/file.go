package dsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	dserrors "github.com/naoray/ds/internal/errors"
	"github.com/naoray/ds/internal/utils"
)

// File is one loaded command document: an immutable group tree plus where it
// came from.
type File struct {
	Group *Group
	// Path is the absolute location of the document.
	Path string
	// FileName is the document's base name, used as the group name fallback.
	FileName string
	// Display is the tilde-collapsed path, used as the description fallback.
	Display string
}

// Parse builds a File from raw document bytes. A missing group name falls
// back to the file name, a missing description to the display path.
func Parse(data []byte, path, home string) (*File, error) {
	var group Group
	if err := yaml.Unmarshal(data, &group); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	fileName := filepath.Base(path)
	if group.Name == "" {
		group.Name = fileName
	}

	display := utils.CollapseTilde(path, home)
	if group.Description == "" {
		group.Description = display
	}

	return &File{
		Group:    &group,
		Path:     path,
		FileName: fileName,
		Display:  display,
	}, nil
}

// Load reads and parses the document at path.
func Load(path, home string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, path, home)
}

// Matches walks the document and scores every visible node against the
// target tokens. Out-of-scope subtrees are pruned; a scope resolution
// failure aborts the walk. Only matches at the document's maximum score are
// returned, in discovery order.
func (f *File) Matches(target []string, nesting Nesting, ws Workspace) ([]*Match, error) {
	var matches []*Match
	var walkErr error

	f.Group.Walk(func(keys []string, cmd *Command, ancestors []*Group) Signal {
		visible, err := cmd.InScope(ws, f.Path)
		if err != nil {
			walkErr = fmt.Errorf("command %q: %w", strings.Join(keys, " "), err)
			return Stop
		}
		if !visible {
			return Skip
		}

		levels := AcceptedLevels(keys, cmd, ancestors)
		m, err := MatchCommand(f.Path, keys, levels, target, nesting)
		if err != nil {
			walkErr = err
			return Stop
		}
		if m != nil {
			matches = append(matches, m)
		}
		return Continue
	})

	if walkErr != nil {
		return nil, walkErr
	}

	maxScore := 0
	for _, m := range matches {
		if m.Score > maxScore {
			maxScore = m.Score
		}
	}

	deepest := matches[:0]
	for _, m := range matches {
		if m.Score == maxScore {
			deepest = append(deepest, m)
		}
	}
	return deepest, nil
}

// CommandAt resolves a literal key path one segment at a time. The returned
// ancestor stack starts at the document root and, when the final node is a
// group, includes that group as its last element.
func (f *File) CommandAt(keys []string) (*Command, []*Group, error) {
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("%w: empty key path", dserrors.ErrNoMatch)
	}

	ancestors := []*Group{f.Group}
	var cmd *Command

	for _, key := range keys {
		cur := ancestors[len(ancestors)-1]
		next, ok := cur.Commands[key]
		if !ok {
			return nil, nil, fmt.Errorf("%w for keys: %s", dserrors.ErrNoMatch, strings.Join(keys, " "))
		}
		cmd = next
		if next.Kind == KindGroup {
			ancestors = append(ancestors, next.Group)
		}
	}

	return cmd, ancestors, nil
}

// Resolve looks up a key path and follows group defaults down to a concrete
// command. When the result is still a group (no resolvable default), the
// group is removed from the ancestor stack so it does not appear as both the
// target and its own parent.
func (f *File) Resolve(keys []string, strict bool) (*Command, []*Group, error) {
	cmd, ancestors, err := f.CommandAt(keys)
	if err != nil {
		return nil, nil, err
	}

	final, chain, err := cmd.ResolveDefault(strict)
	if err != nil {
		return nil, nil, err
	}
	ancestors = append(ancestors, chain...)

	if final.Kind == KindGroup {
		ancestors = ancestors[:len(ancestors)-1]
	}

	return final, ancestors, nil
}
