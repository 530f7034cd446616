package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/software-mansion-labs/scarb-eject/pkg/project"
	"github.com/software-mansion-labs/scarb-eject/pkg/scarb"
)

// descriptorFilename is the conventional descriptor location relative to the
// workspace root.
const descriptorFilename = "cairo_project.toml"

// ejectOpts holds the command-line flags for an eject run.
type ejectOpts struct {
	output string // descriptor path; "-" streams to stdout; empty means beside Scarb.toml
	pkg    string // package selector (NAME or NAME@VERSION); empty means default member
	noDeps bool   // suppress [config.global.dependencies]
	watch  bool   // regenerate on manifest changes instead of exiting
}

// eject performs one full regeneration: metadata query, projection, write.
func (c *CLI) eject(ctx context.Context, opts ejectOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	metadata, err := scarb.NewMetadataCommand().InheritStderr().Exec(ctx)
	if err != nil {
		return err
	}

	mainPackage, err := scarb.PackagesFilter{Spec: opts.pkg}.MatchOne(metadata)
	if err != nil {
		return err
	}
	logger.Debugf("Ejecting %s", mainPackage.ID)

	cfg, err := project.Project(metadata.Graph(), mainPackage.ID, project.Options{NoDeps: opts.noDeps})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = filepath.Join(metadata.Workspace.Root, descriptorFilename)
	}
	if output == stdoutSink {
		if err := cfg.Write(os.Stdout); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Ejected %d crates", len(cfg.CrateRoots)))
		return nil
	}

	if err := cfg.WriteFile(output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d crates to %s", len(cfg.CrateRoots), output))
	return nil
}
