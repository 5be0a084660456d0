// Package dsfile implements the command document model: nested groups of
// shell commands with aliases, selectable environments and directory scoping,
// plus the traversal and matching machinery that resolves a token vector
// against one document.
package dsfile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/naoray/ds/internal/envset"
)

// Mode controls whether a group's own name is part of its children's
// invocation path.
type Mode int

const (
	// ModeNamespaced requires the group name (or an alias) as a path segment.
	ModeNamespaced Mode = iota
	// ModeFlattened makes the group's commands reachable without naming the
	// group itself.
	ModeFlattened
)

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch {
	case strings.EqualFold(s, "Namespaced"):
		*m = ModeNamespaced
	case strings.EqualFold(s, "Flattened"):
		*m = ModeFlattened
	default:
		return fmt.Errorf("line %d: unknown group mode %q", value.Line, s)
	}
	return nil
}

// Scope restricts where a command or group is visible.
type Scope int

const (
	// ScopeGlobal makes the node visible everywhere.
	ScopeGlobal Scope = iota
	// ScopeGitRoot requires the current directory to be inside the one
	// repository whose root equals the configured path.
	ScopeGitRoot
	// ScopeExact requires the current directory to equal the configured path.
	ScopeExact
)

func (s *Scope) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch {
	case strings.EqualFold(raw, "Global"):
		*s = ScopeGlobal
	case strings.EqualFold(raw, "GitRoot"):
		*s = ScopeGitRoot
	case strings.EqualFold(raw, "Exact"):
		*s = ScopeExact
	default:
		return fmt.Errorf("line %d: unknown root scope %q", value.Line, raw)
	}
	return nil
}

// RootConfig pins a node to a directory: where it runs from, and (through
// Scope) where it is visible.
type RootConfig struct {
	Path  string `yaml:"path"`
	Scope Scope  `yaml:"scope"`
}

// Group is a namespace of commands sharing configuration. It is the
// top-level structure of a document and can be nested arbitrarily.
type Group struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	// Default names the command this group resolves to when no further
	// segment is supplied. Empty means the group resolves to its help.
	Default    string                 `yaml:"default"`
	Commands   map[string]*Command    `yaml:"commands"`
	Envs       map[string]*envset.Def `yaml:"envs"`
	DefaultEnv string                 `yaml:"default_env"`
	Root       *RootConfig            `yaml:"root"`
	Mode       Mode                   `yaml:"mode"`
	Aliases    []string               `yaml:"aliases"`
}

// CommandConfig is a leaf command with extra configuration; its settings
// override the enclosing group's.
type CommandConfig struct {
	Command     string                 `yaml:"command"`
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Envs        map[string]*envset.Def `yaml:"envs"`
	DefaultEnv  string                 `yaml:"default_env"`
	Root        *RootConfig            `yaml:"root"`
	Aliases     []string               `yaml:"aliases"`
}

// Kind discriminates the three command shapes.
type Kind int

const (
	// KindInline is a bare command string.
	KindInline Kind = iota
	// KindConfig is a command with configuration.
	KindConfig
	// KindGroup is a nested group.
	KindGroup
)

// Command is one entry in a group's command map. Exactly one of Inline,
// Config and Group is populated, indicated by Kind.
type Command struct {
	Kind   Kind
	Inline string
	Config *CommandConfig
	Group  *Group
}

// UnmarshalYAML decodes the untagged union by ordered attempt: a scalar is an
// inline command, a mapping with a command field is a configured command, a
// mapping with a commands field is a nested group.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Kind = KindInline
		return value.Decode(&c.Inline)
	case yaml.MappingNode:
		if mappingHasKey(value, "command") {
			c.Kind = KindConfig
			c.Config = &CommandConfig{}
			return value.Decode(c.Config)
		}
		if mappingHasKey(value, "commands") {
			c.Kind = KindGroup
			c.Group = &Group{}
			return value.Decode(c.Group)
		}
		return fmt.Errorf("line %d: command must have either a command or a commands field", value.Line)
	default:
		return fmt.Errorf("line %d: command must be a string or a mapping", value.Line)
	}
}

func mappingHasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Root returns the node's own root configuration, without consulting
// ancestors. Scope checking deliberately looks only at this.
func (c *Command) Root() *RootConfig {
	switch c.Kind {
	case KindConfig:
		return c.Config.Root
	case KindGroup:
		return c.Group.Root
	default:
		return nil
	}
}

// Aliases returns the node's alternate names at its parent level.
func (c *Command) Aliases() []string {
	switch c.Kind {
	case KindConfig:
		return c.Config.Aliases
	case KindGroup:
		return c.Group.Aliases
	default:
		return nil
	}
}

// CommandLine returns the shell command this node runs, following a group's
// default chain. Groups without a resolvable default have none.
func (c *Command) CommandLine() (string, bool) {
	final, _, err := c.ResolveDefault(false)
	if err != nil {
		return "", false
	}
	switch final.Kind {
	case KindInline:
		return final.Inline, true
	case KindConfig:
		return final.Config.Command, true
	default:
		return "", false
	}
}
