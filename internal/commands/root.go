// Package commands wires the repoforge CLI: the root command plus the
// new and bootstrap subcommands that drive the generators.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	repoforge "github.com/Ace1928/repo-forge"
	"github.com/Ace1928/repo-forge/internal/output"
)

// RootCmd creates and returns the root command for the repoforge CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "repoforge",
		Short: "Universal monorepo structure generator",
		Long: `Repo Forge creates complete monorepo structures in one pass:

• Core directory tree with per-language project scaffolds
• Documentation structure (manual, auto-generated, assets)
• Configuration and community files (README, CI, LICENSE, ...)
• Automation scripts for setup, build, and test

Example:
  repoforge new my_monorepo --languages python,go`,
		Version: repoforge.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// ForgeRepoName reads forge.yml in the current directory and returns the
// repository name it declares. The second return is false when no valid
// forge.yml exists.
func ForgeRepoName() (string, bool) {
	data, err := os.ReadFile("forge.yml")
	if err != nil {
		return "", false
	}

	var config struct {
		Repository struct {
			Name string `yaml:"name"`
		} `yaml:"repository"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return "", false
	}
	if config.Repository.Name == "" {
		return "", false
	}
	return config.Repository.Name, true
}
