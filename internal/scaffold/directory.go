package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Ace1928/repo-forge/internal/layout"
	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
)

// CreateDirectory creates a directory and any missing parents. Pre-existing
// directories are not an error.
func CreateDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

// createDirectoriesInParallel creates independent directories concurrently.
// The directories share no state and their relative order is irrelevant;
// the call returns once every creation has finished, with the first error
// encountered.
func createDirectoriesInParallel(base string, dirs []string) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(dirs))

	for _, dir := range dirs {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := CreateDirectory(path); err != nil {
				errs <- err
			}
		}(filepath.Join(base, dir))
	}
	wg.Wait()
	close(errs)

	return <-errs
}

// BuildTree creates the complete directory structure for a generated
// monorepo: the parallel top-level set, per-language project subtrees with
// touched placeholder files, and the category trees for scripts, tests,
// benchmarks, examples, CI, GitHub, shared artifacts, config, and tools.
//
// After the full tree is built, a terminal sweep drops a zero-byte .gitkeep
// marker into every directory that is still empty, so version control
// retains the structure. Hidden directories are exempt.
//
// The result names the base path and the languages processed; directories
// are not files, so no file count is reported.
func BuildTree(base string, languages []string) (report.Raw, error) {
	if languages == nil {
		languages = layout.DefaultLanguages
	}

	output.Verbose("Creating core directories at " + base)
	if err := createDirectoriesInParallel(base, layout.CoreDirectories); err != nil {
		return nil, err
	}

	projectsPath := filepath.Join(base, "projects")
	for _, language := range languages {
		tree, ok := layout.LanguageDirectories[language]
		if !ok {
			continue
		}

		projectPath := filepath.Join(projectsPath, language+"_project")
		srcPath := filepath.Join(projectPath, "src", language+"_project")
		if err := CreateDirectory(srcPath); err != nil {
			return nil, err
		}
		if err := CreateDirectory(filepath.Join(projectPath, "tests")); err != nil {
			return nil, err
		}

		for _, subdir := range tree.Structure {
			if err := CreateDirectory(filepath.Join(srcPath, subdir)); err != nil {
				return nil, err
			}
		}
		for _, file := range tree.Files {
			if err := touch(filepath.Join(srcPath, file)); err != nil {
				return nil, err
			}
		}
	}

	categories := []struct {
		parent string
		dirs   []string
	}{
		{"scripts", layout.ScriptDirectories},
		{"tests", layout.TestDirectories},
		{"benchmarks", layout.BenchmarkDirectories},
		{"examples", layout.ExampleDirectories},
		{"ci", layout.CIDirectories},
		{".github", layout.GitHubDirectories},
		{"shared", layout.SharedDirectories},
		{"config", layout.ConfigDirectories},
		{"tools", layout.ToolDirectories},
	}
	for _, category := range categories {
		for _, dir := range category.dirs {
			if err := CreateDirectory(filepath.Join(base, category.parent, dir)); err != nil {
				return nil, err
			}
		}
	}

	if err := dropMarkers(base); err != nil {
		return nil, err
	}

	return report.Raw{
		"success":   true,
		"base_path": base,
		"languages": languages,
	}, nil
}

// dropMarkers walks the finished tree and touches a .gitkeep in every
// directory that holds neither files nor subdirectories. Directories whose
// name begins with a dot are skipped.
func dropMarkers(base string) error {
	return filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || isHidden(d.Name()) {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return touch(filepath.Join(path, ".gitkeep"))
		}
		return nil
	})
}

// isHidden reports whether name follows the hidden-entry convention.
// The base directory itself is never hidden to the sweep.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// touch creates an empty file, creating parents, leaving existing files
// untouched.
func touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("cannot touch %s: %w", path, err)
	}
	return f.Close()
}
