package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ace1928/repo-forge/internal/execx"
	"github.com/Ace1928/repo-forge/internal/output"
)

// NewCmd creates and returns the 'new' command for generating monorepos.
func NewCmd() *cobra.Command {
	var (
		outputDir string
		languages []string
		safeMode  bool
		initGit   bool
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new monorepo structure",
		Long: `Creates a complete monorepo under <output>/<name>:
• Core directory tree with .gitkeep placeholders
• Documentation structure (manual, auto, assets)
• Configuration and community files
• Automation scripts and per-language project scaffolds

Example:
  repoforge new my_monorepo --languages python,go --init-git`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]
			repoPath := filepath.Join(outputDir, name)

			output.Verbose(fmt.Sprintf("Creating monorepo: %s", repoPath))

			if err := os.MkdirAll(repoPath, 0o755); err != nil {
				output.Error(fmt.Sprintf("cannot create %s: %v", repoPath, err))
				os.Exit(1)
			}

			err := runPipeline(pipelineOptions{
				repoPath:  repoPath,
				repoName:  name,
				languages: languages,
				overwrite: !safeMode,
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if initGit {
				exec := execx.NewExecutor(&execx.Options{Dir: repoPath})
				if err := exec.RunWithSpinner(cmd.Context(), "Initializing git repository", "git", "init"); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
			}

			output.Success(fmt.Sprintf("Created monorepo: %s", repoPath))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", repoPath))
			output.Step("./scripts/setup/install_dependencies.sh")
			output.Step("./scripts/build/build_all.sh")
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory where the repository is created")
	cmd.Flags().StringSliceVar(&languages, "languages", []string{"python", "nodejs", "go", "rust"}, "Programming languages to support")
	cmd.Flags().BoolVar(&safeMode, "safe-mode", false, "Never overwrite existing files")
	cmd.Flags().BoolVar(&initGit, "init-git", false, "Initialize a git repository")

	return cmd
}
