// Package finddefinition implements `kjnav find-definition`.
package finddefinition

import (
	"fmt"
	"path/filepath"

	"github.com/kjnav/kjnav/internal/applog"
	"github.com/kjnav/kjnav/internal/cli"
	"github.com/kjnav/kjnav/internal/query"
	"github.com/kjnav/kjnav/internal/render"

	"github.com/spf13/cobra"
)

type definitionOptions struct {
	repoPath string
	file     string
	line     int
}

// Cmd represents the find-definition command.
var Cmd = NewCommand()

// NewCommand returns a new find-definition command instance.
func NewCommand() *cobra.Command {
	opts := &definitionOptions{}

	cmd := &cobra.Command{
		Use:   "find-definition <symbol>",
		Short: "Find the declaration(s) of a Kotlin/Java symbol",
		Long:  `Find the declaration of a symbol across a mixed Kotlin/Java source tree, resolving Lombok-synthesized accessors and type aliases.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFindDefinition(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repoPath, "repo", "r", "", "Project root (default: current directory)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "File containing the symbol at --line, to disambiguate shadowed names")
	cmd.Flags().IntVarP(&opts.line, "line", "l", 0, "1-based line of the symbol within --file")

	return cmd
}

func runFindDefinition(cmd *cobra.Command, symbol string, opts *definitionOptions) error {
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

	results := query.FindDefinition(idx, symbol, file, opts.line)
	fmt.Fprintln(cmd.OutOrStdout(), render.FormatOccurrences(absRepoPath, results))
	return nil
}
