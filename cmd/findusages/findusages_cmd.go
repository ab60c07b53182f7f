// Package findusages implements `kjnav find-usages`.
package findusages

import (
	"fmt"
	"path/filepath"

	"github.com/kjnav/kjnav/internal/applog"
	"github.com/kjnav/kjnav/internal/cli"
	"github.com/kjnav/kjnav/internal/query"
	"github.com/kjnav/kjnav/internal/render"

	"github.com/spf13/cobra"
)

type usagesOptions struct {
	repoPath       string
	file           string
	line           int
	includeImports bool
}

// Cmd represents the find-usages command.
var Cmd = NewCommand()

// NewCommand returns a new find-usages command instance.
func NewCommand() *cobra.Command {
	opts := &usagesOptions{}

	cmd := &cobra.Command{
		Use:   "find-usages <symbol>",
		Short: "Find every usage of a Kotlin/Java symbol",
		Long:  `Find every reference (and, optionally, import) of a symbol across a mixed Kotlin/Java source tree.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFindUsages(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repoPath, "repo", "r", "", "Project root (default: current directory)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "File containing the symbol at --line, to disambiguate shadowed names")
	cmd.Flags().IntVarP(&opts.line, "line", "l", 0, "1-based line of the symbol within --file")
	cmd.Flags().BoolVar(&opts.includeImports, "include-imports", false, "Include import statements in the results")

	return cmd
}

func runFindUsages(cmd *cobra.Command, symbol string, opts *usagesOptions) error {
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

	file := opts.file
	if file != "" {
		file, err = filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve --file: %w", err)
		}
	}

	results := query.FindUsages(idx, symbol, file, opts.line, opts.includeImports)
	fmt.Fprintln(cmd.OutOrStdout(), render.FormatOccurrences(absRepoPath, results))
	return nil
}
