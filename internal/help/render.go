package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes rows as an aligned listing, grouped by source document.
// Styled output is meant for terminals; the plain form goes to pipes and
// tests.
type Renderer struct {
	Styled bool
}

var (
	sourceStyle  = lipgloss.NewStyle().Bold(true)
	tokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	commandStyle = lipgloss.NewStyle().Faint(true)
)

func (r Renderer) Render(rows []Row) string {
	if len(rows) == 0 {
		return "no commands available\n"
	}

	width := 0
	for _, row := range rows {
		if l := len(row.invocation()); l > width {
			width = l
		}
	}

	var b strings.Builder
	source := ""
	for _, row := range rows {
		if row.Source != source {
			source = row.Source
			b.WriteString(r.styled(sourceStyle, source))
			b.WriteString("\n")
		}

		invocation := row.invocation()
		b.WriteString("  ")
		b.WriteString(r.styled(tokenStyle, invocation))
		b.WriteString(strings.Repeat(" ", width-len(invocation)+2))

		detail := row.Command
		if row.Description != "" {
			detail = row.Description
		}
		b.WriteString(r.styled(commandStyle, detail))
		b.WriteString("\n")
	}
	return b.String()
}

// invocation is what the user types: the command tokens plus the environment
// variant, the default variant parenthesized because naming it is optional.
func (row Row) invocation() string {
	s := strings.Join(row.Tokens, " ")
	switch {
	case row.Env == "":
		return s
	case row.DefaultEnv:
		return s + " (" + row.Env + ")"
	default:
		return s + " " + row.Env
	}
}

func (r Renderer) styled(style lipgloss.Style, s string) string {
	if !r.Styled {
		return s
	}
	return style.Render(s)
}
