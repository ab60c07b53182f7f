// Package dependencytree implements `kjnav dependency-tree`.
package dependencytree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kjnav/kjnav/internal/gradle"

	"github.com/spf13/cobra"
)

type treeOptions struct {
	repoPath string
	module   string
}

// Cmd represents the dependency-tree command.
var Cmd = NewCommand()

// NewCommand returns a new dependency-tree command instance.
func NewCommand() *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "dependency-tree",
		Short: "Show a Gradle module's compile-classpath dependency tree",
		Long:  `Shell out to the project's Gradle wrapper and render a module's compile-classpath dependency tree. With no --module, lists the project's modules.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDependencyTree(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repoPath, "repo", "r", "", "Project root (default: current directory)")
	cmd.Flags().StringVarP(&opts.module, "module", "m", "", "Gradle module path, e.g. :app")

	return cmd
}

func runDependencyTree(cmd *cobra.Command, opts *treeOptions) error {
	repoPath := opts.repoPath
	if repoPath == "" {
		repoPath = "."
	}
	absRepoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("failed to resolve repo path: %w", err)
	}

	runner := gradle.NewRunner(absRepoPath)
	if !runner.HasWrapper() {
		return fmt.Errorf("no gradlew wrapper found under %s", absRepoPath)
	}

	if opts.module == "" {
		modules, err := runner.Modules(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list modules: %w", err)
		}
		if len(modules) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No modules found.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Modules:")
		for _, m := range modules {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", m)
		}
		return nil
	}

	deps, err := runner.Dependencies(cmd.Context(), opts.module)
	if err != nil {
		return fmt.Errorf("failed to resolve dependencies for %s: %w", opts.module, err)
	}
	if len(deps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No dependencies found.")
		return nil
	}

	var b strings.Builder
	renderTree(&b, deps, 0)
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}

func renderTree(b *strings.Builder, nodes []gradle.DependencyNode, depth int) {
	for _, n := range nodes {
		fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), n.Coordinate)
		renderTree(b, n.Children, depth+1)
	}
}
