package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/software-mansion-labs/scarb-eject/pkg/scarb"
)

// debouncePeriod coalesces the burst of filesystem events editors and Scarb
// emit for a single logical change.
const debouncePeriod = 500 * time.Millisecond

// watchedFiles are the manifest files whose changes trigger a regeneration.
var watchedFiles = map[string]bool{
	"Scarb.toml": true,
	"Scarb.lock": true,
}

// watch ejects once, then keeps regenerating the descriptor whenever the
// workspace manifest or lockfile changes. Every trigger is a complete run:
// metadata is re-queried and the descriptor rewritten in full. Failures
// after the first run are logged and watching continues; the loop ends with
// the context.
func (c *CLI) watch(ctx context.Context, opts ejectOpts) error {
	if opts.output == stdoutSink {
		return fmt.Errorf("--watch requires a file output, not %q", stdoutSink)
	}
	logger := loggerFromContext(ctx)

	// Locate the workspace before the first eject so a broken setup fails
	// fast instead of being retried forever.
	metadata, err := scarb.NewMetadataCommand().InheritStderr().Exec(ctx)
	if err != nil {
		return err
	}
	workspaceDir := filepath.Dir(metadata.Workspace.ManifestPath)

	if err := c.eject(ctx, opts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the files: editors replace manifests via
	// rename, which would leave a file watch pointing at a dead inode.
	if err := watcher.Add(workspaceDir); err != nil {
		return fmt.Errorf("watch %s: %w", workspaceDir, err)
	}
	logger.Infof("Watching %s", workspaceDir)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchedFiles[filepath.Base(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Debugf("Change detected: %s (%s)", ev.Name, ev.Op)
			if timer == nil {
				timer = time.NewTimer(debouncePeriod)
				timerC = timer.C
			} else {
				timer.Reset(debouncePeriod)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watch error: %v", err)

		case <-timerC:
			logger.Infof("Manifest changed; regenerating descriptor")
			if err := c.eject(ctx, opts); err != nil {
				logger.Errorf("Eject failed: %v", err)
			}
		}
	}
}
