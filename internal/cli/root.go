package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/naoray/ds/internal/config"
	"github.com/naoray/ds/internal/dsfile"
	dserrors "github.com/naoray/ds/internal/errors"
	"github.com/naoray/ds/internal/exec"
	"github.com/naoray/ds/internal/git"
)

var rootCmd = &cobra.Command{
	Use:   "ds [tokens...]",
	Short: "Run project commands declared in ds.yaml documents",
	Long: `ds resolves the given tokens against the command documents visible
from the current directory and runs the matching shell command.
Without tokens it lists everything it could run.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadGlobal()
	if err != nil {
		return err
	}

	ws, err := workspace(cmd.Context())
	if err != nil {
		return err
	}

	paths, err := config.Discover(cfg, ws)
	if err != nil {
		return err
	}
	log.Debug("documents", "paths", paths)

	files := make([]*dsfile.File, 0, len(paths))
	for _, path := range paths {
		file, err := dsfile.Load(path, ws.Home)
		if err != nil {
			return err
		}
		files = append(files, file)
	}

	app := &App{
		Config: &appConfig{
			OnConflict:     cfg.OnConflict,
			StrictDefaults: cfg.StrictDefaults,
		},
		Files: files,
		Ws:    ws,
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	return app.Run(cmd.Context(), args, interactive)
}

// workspace captures the ambient state resolution depends on.
func workspace(ctx context.Context) (dsfile.Workspace, error) {
	dir, err := os.Getwd()
	if err != nil {
		return dsfile.Workspace{}, fmt.Errorf("getting working directory: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	repoRoot := git.DiscoverRoot(ctx, &exec.RealCommander{}, dir)

	return dsfile.Workspace{Dir: dir, RepoRoot: repoRoot, Home: home}, nil
}

// Execute runs the root command and maps errors onto exit codes: resolution
// failures get a fixed code so scripts can tell them from a failing child,
// whose own exit code is passed through untouched.
func Execute() int {
	applyVersion()

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return config.ExitSuccess
	}

	var ec *exitCodeError
	if errors.As(err, &ec) {
		// Child already reported its own failure.
		return ec.code
	}

	fmt.Fprintf(os.Stderr, "ds: %v\n", err)
	return classify(err)
}

// exitCodeError carries a child process exit code through the cobra stack.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func classify(err error) int {
	for _, resolution := range []error{
		dserrors.ErrNoMatch,
		dserrors.ErrConflict,
		dserrors.ErrNoEnvironment,
		dserrors.ErrUnknownEnvironment,
		dserrors.ErrDefaultEnvMissing,
		dserrors.ErrDanglingDefault,
		dserrors.ErrScopeResolution,
	} {
		if errors.Is(err, resolution) {
			return config.ExitResolutionFailure
		}
	}
	return config.ExitGeneralError
}

func init() {
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolP("interactive", "i", false, "Pick a command from a filterable list")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}
