package cmd

import (
	"os"

	"github.com/kjnav/kjnav/cmd/dependencytree"
	"github.com/kjnav/kjnav/cmd/finddefinition"
	"github.com/kjnav/kjnav/cmd/findusages"
	"github.com/kjnav/kjnav/cmd/reindex"
	"github.com/kjnav/kjnav/cmd/watch"

	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kjnav",
	Short: "A code-navigation server for mixed Kotlin/Java source trees.",
	Long: `A code-navigation server for mixed Kotlin/Java source trees.

Use cases:
- Find every usage of a symbol with "kjnav find-usages"
- Jump to a symbol's declaration with "kjnav find-definition"
- Inspect a Gradle module's dependencies with "kjnav dependency-tree"
- Keep a live index while coding with "kjnav watch"`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(findusages.Cmd)
	rootCmd.AddCommand(finddefinition.Cmd)
	rootCmd.AddCommand(dependencytree.Cmd)
	rootCmd.AddCommand(reindex.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Accepted but has no effect: commands log at info level")
	rootCmd.PersistentFlags().BoolP("version", "V", false, "Print version information and exit")

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit
	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
