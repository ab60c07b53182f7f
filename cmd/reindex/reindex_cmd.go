// Package reindex implements `kjnav reindex`: a one-shot rebuild that
// reports index statistics, useful for CI sanity checks and for timing
// a rebuild before wiring it into a long-running host.
package reindex

import (
	"fmt"
	"path/filepath"

	"github.com/kjnav/kjnav/internal/applog"
	"github.com/kjnav/kjnav/internal/cli"

	"github.com/spf13/cobra"
)

type reindexOptions struct {
	repoPath string
}

// Cmd represents the reindex command.
var Cmd = NewCommand()

// NewCommand returns a new reindex command instance.
func NewCommand() *cobra.Command {
	opts := &reindexOptions{}

	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Build the symbol index once and report statistics",
		Long:  `Discover Kotlin/Java source files, run extraction and cross-reference, and print the resulting index statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReindex(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repoPath, "repo", "r", "", "Project root (default: current directory)")

	return cmd
}

func runReindex(cmd *cobra.Command, opts *reindexOptions) error {
	repoPath := opts.repoPath
	if repoPath == "" {
		repoPath = "."
	}
	absRepoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("failed to resolve repo path: %w", err)
	}

	logger := applog.New(applog.Default())
	idx, err := cli.BuildIndex(cmd.Context(), absRepoPath, logger)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), idx.Stats().String())
	return nil
}
