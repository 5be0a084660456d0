package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/naoray/ds/internal/help"
)

// PickCommand shows a filterable list of every runnable command and returns
// the token sequence for the chosen entry, ready to go back through normal
// dispatch. The environment variant is appended as the first extra argument.
func PickCommand(rows []help.Row) ([]string, error) {
	options := make([]huh.Option[int], len(rows))
	for i, row := range rows {
		options[i] = huh.NewOption(optionLabel(row), i)
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Run a command").
				Description("Type to filter, Enter to run").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return nil, NormalizeAbort(err)
	}

	row := rows[selected]
	tokens := slices.Clone(row.Tokens)
	if row.Env != "" {
		tokens = append(tokens, row.Env)
	}
	return tokens, nil
}

func optionLabel(row help.Row) string {
	var b strings.Builder
	b.WriteString(strings.Join(row.Tokens, " "))
	if row.Env != "" {
		b.WriteString(" ")
		b.WriteString(row.Env)
		if row.DefaultEnv {
			b.WriteString(" (default)")
		}
	}
	if row.Description != "" {
		b.WriteString("  · ")
		b.WriteString(row.Description)
	} else if row.Command != "" {
		b.WriteString("  · ")
		b.WriteString(row.Command)
	}
	return b.String()
}
