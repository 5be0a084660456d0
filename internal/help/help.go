// Package help flattens loaded documents into the listing shown when no
// command was matched, and feeds the interactive picker.
package help

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/naoray/ds/internal/dsfile"
)

// Row is one runnable entry in the listing.
type Row struct {
	// Source is the display name of the document the command came from.
	Source string
	// Tokens is the sequence the user types to run the command, flattened
	// levels already omitted.
	Tokens []string
	// Env is the environment variant this row represents, empty when the
	// command has no environments.
	Env string
	// DefaultEnv marks the variant that runs when no environment is named.
	DefaultEnv bool
	// Command is the shell line behind the entry.
	Command string
	// Description is the command's configured description, if any.
	Description string
}

// Rows collects every runnable command visible from the workspace, highest
// priority document first. A command with environments produces one row per
// environment variant.
func Rows(files []*dsfile.File, ws dsfile.Workspace) ([]Row, error) {
	var rows []Row

	for i := len(files) - 1; i >= 0; i-- {
		file := files[i]
		var walkErr error

		file.Group.Walk(func(keys []string, cmd *dsfile.Command, ancestors []*dsfile.Group) dsfile.Signal {
			visible, err := cmd.InScope(ws, file.Path)
			if err != nil {
				walkErr = fmt.Errorf("command %q: %w", strings.Join(keys, " "), err)
				return dsfile.Stop
			}
			if !visible {
				return dsfile.Skip
			}
			if cmd.Kind == dsfile.KindGroup {
				return dsfile.Continue
			}

			rows = append(rows, commandRows(file, keys, cmd, ancestors)...)
			return dsfile.Continue
		})

		if walkErr != nil {
			return nil, walkErr
		}
	}

	return rows, nil
}

// GroupRows lists the runnable commands under one group node, with the same
// tokens they carry in the full listing.
func GroupRows(file *dsfile.File, target *dsfile.Group, ws dsfile.Workspace) ([]Row, error) {
	var rows []Row
	var walkErr error

	file.Group.Walk(func(keys []string, cmd *dsfile.Command, ancestors []*dsfile.Group) dsfile.Signal {
		visible, err := cmd.InScope(ws, file.Path)
		if err != nil {
			walkErr = fmt.Errorf("command %q: %w", strings.Join(keys, " "), err)
			return dsfile.Stop
		}
		if !visible {
			return dsfile.Skip
		}
		if cmd.Kind == dsfile.KindGroup {
			return dsfile.Continue
		}
		if !slices.Contains(ancestors, target) {
			return dsfile.Continue
		}

		rows = append(rows, commandRows(file, keys, cmd, ancestors)...)
		return dsfile.Continue
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return rows, nil
}

func commandRows(file *dsfile.File, keys []string, cmd *dsfile.Command, ancestors []*dsfile.Group) []Row {
	levels := dsfile.AcceptedLevels(keys, cmd, ancestors)
	tokens := make([]string, len(levels))
	for i, level := range levels {
		tokens[i] = level[0]
	}

	line, _ := cmd.CommandLine()

	var description string
	if cmd.Kind == dsfile.KindConfig {
		description = cmd.Config.Description
	}

	base := Row{
		Source:      file.Group.Name,
		Tokens:      tokens,
		Command:     line,
		Description: description,
	}

	envs, defaultName := dsfile.ResolveEnvs(cmd, ancestors)
	if len(envs) == 0 {
		return []Row{base}
	}

	var rows []Row
	for _, name := range slices.Sorted(maps.Keys(envs)) {
		row := base
		row.Env = name
		row.DefaultEnv = name == defaultName
		rows = append(rows, row)
	}
	return rows
}
