package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ace1928/repo-forge/internal/output"
)

// BootstrapCmd creates and returns the 'bootstrap' command, which applies
// the full structure to the current directory without overwriting anything.
func BootstrapCmd() *cobra.Command {
	var languages []string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Apply the monorepo structure to the current directory",
		Long: `Regenerates the full monorepo structure in place. Existing files
are never overwritten, so the command is safe to run on a repository that
already has content.

Example:
  repoforge bootstrap --languages python,go`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cwd, err := os.Getwd()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			name, ok := ForgeRepoName()
			if ok {
				output.Verbose("Using repository name from forge.yml: " + name)
			} else {
				name = filepath.Base(cwd)
			}

			output.Info("Bootstrapping repository structure in place...")

			err = runPipeline(pipelineOptions{
				repoPath:  cwd,
				repoName:  name,
				languages: languages,
				overwrite: false,
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success("Repository structure bootstrapped")
		},
	}

	cmd.Flags().StringSliceVar(&languages, "languages", []string{"python", "nodejs", "go", "rust"}, "Programming languages to support")

	return cmd
}
