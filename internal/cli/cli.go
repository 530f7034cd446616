// Package cli implements the scarb-eject command-line interface.
//
// scarb-eject is a single-command tool: the root command queries Scarb for
// workspace metadata, projects the selected package's dependency closure,
// and writes a cairo_project.toml descriptor. With --watch it keeps running
// and regenerates the descriptor whenever the workspace manifest or lockfile
// changes.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/software-mansion-labs/scarb-eject/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// stdoutSink is the output spelling that streams the descriptor to stdout.
const stdoutSink = "-"

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts ejectOpts

	root := &cobra.Command{
		Use:   "scarb-eject",
		Short: "Eject a Scarb package to a plain cairo_project.toml",
		Long: `scarb-eject converts the dependency graph Scarb resolved for a package
into the flat cairo_project.toml descriptor the Cairo compiler consumes
directly: one source root per crate plus the language edition.

The descriptor is regenerated in full on every run.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			if opts.watch {
				return c.watch(ctx, opts)
			}
			return c.eject(ctx, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.output, "output", "o", "",
		"path of the cairo_project.toml to overwrite (default: next to Scarb.toml; '-' for stdout)")
	root.Flags().StringVarP(&opts.pkg, "package", "p", "",
		"package to eject, as NAME or NAME@VERSION (default: the workspace's default member)")
	root.Flags().BoolVar(&opts.noDeps, "no-deps", false,
		"omit per-crate dependency settings from the descriptor")
	root.Flags().BoolVar(&opts.watch, "watch", false,
		"keep running and regenerate the descriptor when Scarb.toml or Scarb.lock changes")

	return root
}
