// Package project scaffolds per-language starter projects under
// projects/<language>_project: README, build configuration, entry point,
// and a starter test.
package project

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"github.com/Ace1928/repo-forge/internal/layout"
	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
	"github.com/Ace1928/repo-forge/internal/scaffold"
	"github.com/Ace1928/repo-forge/internal/template"
)

// Languages selects which project scaffolds to create. Construct it with
// One, List, or Mapping; the zero value resolves to an error.
type Languages struct {
	one     string
	list    []string
	mapping map[string]string
	kind    languagesKind
}

type languagesKind int

const (
	kindInvalid languagesKind = iota
	kindOne
	kindList
	kindMapping
)

// One selects a single language.
func One(language string) Languages {
	return Languages{kind: kindOne, one: language}
}

// List selects languages in the given order.
func List(languages []string) Languages {
	return Languages{kind: kindList, list: languages}
}

// Mapping selects the keys of a language-to-description map, in sorted
// order so the result is deterministic.
func Mapping(languages map[string]string) Languages {
	return Languages{kind: kindMapping, mapping: languages}
}

// Resolve flattens the selection to an ordered, non-empty language list.
func (l Languages) Resolve() ([]string, error) {
	var resolved []string
	switch l.kind {
	case kindOne:
		resolved = []string{l.one}
	case kindList:
		resolved = l.list
	case kindMapping:
		resolved = make([]string, 0, len(l.mapping))
		for language := range l.mapping {
			resolved = append(resolved, language)
		}
		sort.Strings(resolved)
	default:
		return nil, fmt.Errorf("no languages selected")
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no languages selected")
	}
	for _, language := range resolved {
		if language == "" {
			return nil, fmt.Errorf("language name must not be empty")
		}
	}
	return resolved, nil
}

// Generate creates a project scaffold for every selected language and
// aggregates the per-language results: created_files concatenated in
// language order, count summed, success false if any language failed.
func Generate(base string, languages Languages, overwrite bool) (report.Raw, error) {
	resolved, err := languages.Resolve()
	if err != nil {
		return nil, err
	}

	createdFiles := []string{}
	results := map[string]any{}
	count := 0
	success := true

	for _, language := range resolved {
		result, err := scaffoldSingle(base, language, overwrite)
		if err != nil {
			return nil, fmt.Errorf("scaffolding %s project: %w", language, err)
		}
		results[language] = result
		if files, ok := result["created_files"].([]string); ok {
			createdFiles = append(createdFiles, files...)
			count += len(files)
		}
		if succeeded, _ := result["success"].(bool); !succeeded {
			success = false
		}
	}

	return report.Raw{
		"success":       success,
		"languages":     resolved,
		"results":       results,
		"created_files": createdFiles,
		"count":         count,
		"base_path":     base,
	}, nil
}

// scaffoldSingle creates one language's project. Reported paths are
// relative to the repository root, not the project directory.
func scaffoldSingle(base, language string, overwrite bool) (report.Raw, error) {
	projectName := language + "_project"
	projectRel := path.Join("projects", projectName)
	projectPath := filepath.Join(base, "projects", projectName)

	for _, dir := range []string{"src", "tests"} {
		if err := scaffold.CreateDirectory(filepath.Join(projectPath, dir)); err != nil {
			return nil, err
		}
	}

	readmeTemplate, ok := layout.ProjectReadmes[language]
	if !ok {
		readmeTemplate = layout.ProjectReadmes["default"]
	}
	readme, err := template.Render(readmeTemplate, template.Vars{"project_name": projectName}, false)
	if err != nil {
		return nil, fmt.Errorf("rendering project README: %w", err)
	}

	files := map[string]string{"README.md": readme}

	for filename, content := range layout.ProjectConfigFiles[language] {
		files[filename] = content
	}

	// Python sources live inside an importable package directory.
	mainDir := "src"
	if language == "python" {
		mainDir = filepath.Join("src", projectName)
	}
	for filename, content := range layout.ProjectMainFiles[language] {
		files[filepath.Join(mainDir, filename)] = content
	}

	for filename, content := range layout.ProjectTestFiles[language] {
		files[filepath.FromSlash(filename)] = content
	}

	raw, err := scaffold.WriteFiles(projectPath, files, nil, overwrite)
	if err != nil {
		return nil, err
	}

	created, _ := raw["created_files"].([]string)
	for i, rel := range created {
		created[i] = path.Join(projectRel, filepath.ToSlash(rel))
	}
	skipped, _ := raw["skipped_files"].([]string)
	for i, rel := range skipped {
		skipped[i] = path.Join(projectRel, filepath.ToSlash(rel))
	}

	raw["language"] = language
	raw["project_path"] = projectPath
	raw["count"] = len(created)

	output.Verbose(fmt.Sprintf("Created %s project scaffold with %d files", language, len(created)))
	return raw, nil
}
