// Package envset implements selectable environments for commands: named
// definitions that load a dotenv file, overlay explicit variables, and may
// prepend a prefix to the final invocation.
package envset

import (
	"fmt"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	dserrors "github.com/naoray/ds/internal/errors"
	"github.com/naoray/ds/internal/utils"
)

// Def is a single environment definition. In documents it is either a bare
// dotenv path or a mapping with any of path, vars and command_prefix.
type Def struct {
	// Path points at a dotenv file, relative to the defining document.
	Path string
	// Vars overrides file-loaded values on key collision.
	Vars map[string]string
	// CommandPrefix is prepended to the invocation string when selected.
	CommandPrefix string
}

type defConfig struct {
	Path          string            `yaml:"path"`
	Vars          map[string]string `yaml:"vars"`
	CommandPrefix string            `yaml:"command_prefix"`
}

// UnmarshalYAML decodes the two document shapes: a scalar string is a dotenv
// path, a mapping carries the full configuration.
func (d *Def) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var path string
		if err := value.Decode(&path); err != nil {
			return err
		}
		d.Path = path
		return nil
	case yaml.MappingNode:
		var cfg defConfig
		if err := value.Decode(&cfg); err != nil {
			return err
		}
		d.Path = cfg.Path
		d.Vars = cfg.Vars
		d.CommandPrefix = cfg.CommandPrefix
		return nil
	default:
		return fmt.Errorf("line %d: environment must be a dotenv path or a mapping", value.Line)
	}
}

// Materialize loads the dotenv file (if any) relative to the document that
// defined this environment and overlays the explicit vars on top.
func (d *Def) Materialize(docPath, home string) (map[string]string, error) {
	vars := make(map[string]string)

	if d.Path != "" {
		resolved, err := utils.ResolveAgainst(d.Path, docPath, home)
		if err != nil {
			return nil, err
		}
		loaded, err := godotenv.Read(resolved)
		if err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", d.Path, err)
		}
		for k, v := range loaded {
			vars[k] = v
		}
	}

	for k, v := range d.Vars {
		vars[k] = v
	}

	return vars, nil
}

// Match selects an environment from the remaining argument tokens.
//
// The first token is consumed when it names a defined environment; otherwise
// the default is used with the tokens untouched. Commands without
// environments pass through unchanged.
func Match(envs map[string]*Def, defaultName string, args []string) (*Def, string, []string, error) {
	if len(envs) == 0 {
		return nil, "", args, nil
	}

	if len(args) == 0 && defaultName == "" {
		return nil, "", args, dserrors.ErrNoEnvironment
	}

	if len(args) > 0 {
		if def, ok := envs[args[0]]; ok {
			return def, args[0], args[1:], nil
		}
	}

	if defaultName != "" {
		if def, ok := envs[defaultName]; ok {
			return def, defaultName, args, nil
		}
		return nil, "", args, fmt.Errorf("%w: %q", dserrors.ErrDefaultEnvMissing, defaultName)
	}

	return nil, "", args, fmt.Errorf("%w: %q", dserrors.ErrUnknownEnvironment, args[0])
}
