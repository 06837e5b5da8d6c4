package commands

import (
	"fmt"

	"github.com/Ace1928/repo-forge/internal/generators/configfiles"
	"github.com/Ace1928/repo-forge/internal/generators/docs"
	"github.com/Ace1928/repo-forge/internal/generators/project"
	"github.com/Ace1928/repo-forge/internal/generators/scripts"
	"github.com/Ace1928/repo-forge/internal/identity"
	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
	"github.com/Ace1928/repo-forge/internal/scaffold"
)

// pipelineOptions parameterizes one full generation run.
type pipelineOptions struct {
	repoPath  string
	repoName  string
	languages []string
	overwrite bool
}

// runPipeline drives the generators in order: directory tree, docs,
// configuration, scripts, project scaffolds. Each phase's raw result is
// normalized before the next phase starts; the first failure aborts the
// run and leaves completed phases on disk.
func runPipeline(opts pipelineOptions) error {
	info := identity.Resolve()

	output.Info("Creating monorepo structure...")
	raw, err := scaffold.BuildTree(opts.repoPath, opts.languages)
	if err != nil {
		return fmt.Errorf("directory structure: %w", err)
	}
	if _, err := report.Normalize(raw, "directory structure"); err != nil {
		return err
	}

	output.Info("Generating documentation structure...")
	raw, err = docs.NewGenerator(info).Generate(opts.repoPath, opts.repoName, nil, opts.overwrite)
	if err != nil {
		return fmt.Errorf("documentation structure: %w", err)
	}
	if _, err := report.Normalize(raw, "documentation structure"); err != nil {
		return err
	}

	output.Info("Creating configuration files...")
	raw, err = configfiles.NewGenerator(info).Generate(opts.repoPath, opts.repoName, opts.languages, opts.overwrite)
	if err != nil {
		return fmt.Errorf("configuration files: %w", err)
	}
	if _, err := report.Normalize(raw, "configuration files"); err != nil {
		return err
	}

	output.Info("Generating script files...")
	raw, err = scripts.Generate(opts.repoPath, opts.languages, opts.overwrite)
	if err != nil {
		return fmt.Errorf("script generation: %w", err)
	}
	if _, err := report.Normalize(raw, "script generation"); err != nil {
		return err
	}

	output.Info("Scaffolding project structures...")
	raw, err = project.Generate(opts.repoPath, project.List(opts.languages), opts.overwrite)
	if err != nil {
		return fmt.Errorf("project scaffolding: %w", err)
	}
	result, err := report.Normalize(raw, "project scaffolding")
	if err != nil {
		return err
	}
	output.Verbose(fmt.Sprintf("Scaffolded %d project files", result.Count))

	return nil
}
