// Package scripts generates the scripts/ tree: setup, build, test, and
// CI helpers plus a project statistics utility, all marked executable.
package scripts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Ace1928/repo-forge/internal/layout"
	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
	"github.com/Ace1928/repo-forge/internal/scaffold"
	"github.com/Ace1928/repo-forge/internal/template"
)

// Generate writes the automation scripts under base/scripts. Shell and
// Python scripts get their execute bits set; the README does not.
func Generate(base string, languages []string, overwrite bool) (report.Raw, error) {
	if languages == nil {
		languages = layout.DefaultLanguages
	}

	vars := template.Vars{"languages": strings.Join(languages, " ")}

	install, err := template.Render(layout.InstallDependenciesTemplate, vars, false)
	if err != nil {
		return nil, fmt.Errorf("rendering install script: %w", err)
	}
	build, err := template.Render(layout.BuildAllTemplate, vars, false)
	if err != nil {
		return nil, fmt.Errorf("rendering build script: %w", err)
	}
	tests, err := template.Render(layout.RunTestsTemplate, vars, false)
	if err != nil {
		return nil, fmt.Errorf("rendering test script: %w", err)
	}

	files := map[string]string{
		"README.md": layout.ScriptsReadme,
		filepath.Join("setup", "install_dependencies.sh"): install,
		filepath.Join("build", "build_all.sh"):            build,
		filepath.Join("dev", "run_tests.sh"):              tests,
		filepath.Join("ci", "run_checks.sh"):              layout.RunChecksContent,
		filepath.Join("utils", "project_stats.py"):        layout.ProjectStatsContent,
	}
	executable := map[string]bool{
		filepath.Join("setup", "install_dependencies.sh"): true,
		filepath.Join("build", "build_all.sh"):            true,
		filepath.Join("dev", "run_tests.sh"):              true,
		filepath.Join("ci", "run_checks.sh"):              true,
		filepath.Join("utils", "project_stats.py"):        true,
	}

	raw, err := scaffold.WriteFiles(filepath.Join(base, "scripts"), files, executable, overwrite)
	if err != nil {
		return nil, err
	}
	raw["base_path"] = base

	created, _ := raw["created_files"].([]string)
	output.Verbose(fmt.Sprintf("Created %d automation scripts", len(created)))
	return raw, nil
}
