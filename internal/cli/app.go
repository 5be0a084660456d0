package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"

	"github.com/naoray/ds/internal/dispatch"
	"github.com/naoray/ds/internal/dsfile"
	"github.com/naoray/ds/internal/envset"
	"github.com/naoray/ds/internal/help"
	"github.com/naoray/ds/internal/runner"
	"github.com/naoray/ds/internal/ui"
)

// App holds everything an invocation needs once configuration and documents
// are loaded.
type App struct {
	Config *appConfig
	Files  []*dsfile.File
	Ws     dsfile.Workspace
}

// appConfig is the slice of the global configuration the pipeline consumes.
type appConfig struct {
	OnConflict     string
	StrictDefaults bool
}

// Plan is what target tokens resolved to: a runnable invocation, or the
// rows to present when the tokens name a group (or nothing at all).
type Plan struct {
	Invocation *runner.Invocation
	Rows       []help.Row
}

// Plan resolves target tokens through match, default, environment and
// runner assembly. It performs no IO besides reading dotenv files.
func (a *App) Plan(tokens []string) (*Plan, error) {
	if len(tokens) == 0 {
		rows, err := help.Rows(a.Files, a.Ws)
		if err != nil {
			return nil, err
		}
		return &Plan{Rows: rows}, nil
	}

	policy, err := dispatch.ParsePolicy(a.Config.OnConflict)
	if err != nil {
		return nil, err
	}

	d := &dispatch.Dispatcher{Files: a.Files, Policy: policy, Ws: a.Ws}
	sel, err := d.Match(tokens)
	if err != nil {
		return nil, err
	}
	log.Debug("matched", "file", sel.File.Display, "keys", sel.Match.Keys, "score", sel.Match.Score)

	final, ancestors, err := sel.File.Resolve(sel.Match.Keys, a.Config.StrictDefaults)
	if err != nil {
		return nil, err
	}

	if final.Kind == dsfile.KindGroup {
		rows, err := help.GroupRows(sel.File, final.Group, a.Ws)
		if err != nil {
			return nil, err
		}
		return &Plan{Rows: rows}, nil
	}

	extra := tokens[sel.Match.Score:]

	envs, defaultName := dsfile.ResolveEnvs(final, ancestors)
	def, envName, remaining, err := envset.Match(envs, defaultName, extra)
	if err != nil {
		return nil, err
	}

	var vars map[string]string
	var prefix string
	if def != nil {
		log.Debug("environment", "name", envName)
		vars, err = def.Materialize(sel.File.Path, a.Ws.Home)
		if err != nil {
			return nil, err
		}
		prefix = def.CommandPrefix
	}

	inv, err := runner.Build(final, ancestors, remaining, vars, prefix, a.Ws, sel.File.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("invocation", "line", inv.Line, "dir", inv.Dir)

	return &Plan{Invocation: inv}, nil
}

// Run plans the tokens and either spawns the invocation or presents the
// rows. With interactive set, listings become a picker whose selection goes
// back through planning; aborting the picker is not an error.
func (a *App) Run(ctx context.Context, tokens []string, interactive bool) error {
	plan, err := a.Plan(tokens)
	if err != nil {
		return err
	}

	for plan.Invocation == nil {
		if !interactive {
			styled := term.IsTerminal(os.Stdout.Fd())
			fmt.Print(help.Renderer{Styled: styled}.Render(plan.Rows))
			return nil
		}

		picked, err := ui.PickCommand(plan.Rows)
		if err != nil {
			if ui.IsAbort(err) {
				return nil
			}
			return err
		}

		plan, err = a.Plan(picked)
		if err != nil {
			return err
		}
	}

	code, err := runner.Spawn(ctx, plan.Invocation)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}
