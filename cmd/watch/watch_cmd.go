// Package watch implements `kjnav watch`: rebuild the symbol index
// whenever a .kt/.java file changes, grounded on the teacher's
// cmd/watch debounced fsnotify loop.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kjnav/kjnav/internal/applog"
	"github.com/kjnav/kjnav/internal/discover"
	"github.com/kjnav/kjnav/internal/indexer"

	"github.com/spf13/cobra"
)

type watchOptions struct {
	repoPath string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a project and keep the symbol index up to date",
		Long:  `Watch a project directory for Kotlin/Java file changes and rebuild the symbol index on each change, reporting statistics as it goes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repoPath, "repo", "r", "", "Project root (default: current directory)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	repoPath := opts.repoPath
	if repoPath == "" {
		repoPath = "."
	}
	absRepoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("failed to resolve repo path: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := applog.New(applog.Default())

	files, err := discover.Find(absRepoPath)
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}

	handle, err := indexer.NewHandle(ctx, files, readFile, logger)
	if err != nil {
		return fmt.Errorf("failed to build initial index: %w", err)
	}
	logger.Info("initial index built", "stats", handle.Get().Stats().String())

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", absRepoPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndReindex(ctx, absRepoPath, handle, logger)
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
