package cli

import "fmt"

// These variables are set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// applyVersion wires the build metadata into cobra's --version flag. There
// is deliberately no version subcommand: every bare token belongs to the
// user's command namespace.
func applyVersion() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("ds version {{.Version}} (%s, built %s)\n", Commit, BuildDate))
}
