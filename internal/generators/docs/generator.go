// Package docs generates the documentation tree: hand-written and
// auto-generated sections per language, shared assets, and the
// documentation-site configuration.
package docs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Ace1928/repo-forge/internal/identity"
	"github.com/Ace1928/repo-forge/internal/layout"
	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
	"github.com/Ace1928/repo-forge/internal/scaffold"
	"github.com/Ace1928/repo-forge/internal/template"
)

// DefaultLanguages is the documentation language set used when the caller
// supplies none. Documentation covers more languages than project
// scaffolds do, so readers find a slot even for languages added by hand.
var DefaultLanguages = []string{"python", "cpp", "rust", "go", "javascript"}

// Generator writes the documentation structure.
type Generator struct {
	identity identity.Info
}

// NewGenerator creates a docs generator.
func NewGenerator(info identity.Info) *Generator {
	return &Generator{identity: info}
}

// Generate creates docs/ under base: the manual and auto trees per
// language with their index files, the assets tree, the topic source tree,
// and the site configuration. Directories are created directly; only
// written files are reported.
func (g *Generator) Generate(base, repoName string, languages []string, overwrite bool) (report.Raw, error) {
	if languages == nil {
		languages = DefaultLanguages
	}

	docsPath := filepath.Join(base, "docs")
	for _, section := range layout.DocumentationStructure {
		if err := scaffold.CreateDirectory(filepath.Join(docsPath, section)); err != nil {
			return nil, err
		}
	}

	files := map[string]string{}

	for _, language := range languages {
		vars := template.Vars{"language_title": template.TitleCase(language)}

		for _, subdir := range layout.ManualDocStructure {
			if err := scaffold.CreateDirectory(filepath.Join(docsPath, "manual", language, subdir)); err != nil {
				return nil, err
			}
		}
		index, err := template.Render(layout.ManualDocIndexTemplate, vars, false)
		if err != nil {
			return nil, fmt.Errorf("rendering manual index for %s: %w", language, err)
		}
		files[filepath.Join("manual", language, "index.md")] = index

		for _, subdir := range layout.AutoDocStructure {
			if err := scaffold.CreateDirectory(filepath.Join(docsPath, "auto", language, subdir)); err != nil {
				return nil, err
			}
		}
		autoIndex, err := template.Render(layout.AutoDocIndexTemplate, vars, false)
		if err != nil {
			return nil, fmt.Errorf("rendering auto index for %s: %w", language, err)
		}
		files[filepath.Join("auto", language, "index.md")] = autoIndex
	}

	for _, subdir := range layout.AssetsStructure {
		if err := scaffold.CreateDirectory(filepath.Join(docsPath, "assets", subdir)); err != nil {
			return nil, err
		}
	}
	files[filepath.Join("assets", "README.md")] = layout.AssetsReadme

	files["index.md"] = rootIndex(languages)

	conf, err := template.Render(layout.SphinxConfTemplate, template.Vars{
		"repo_name":   repoName,
		"author_name": g.identity.AuthorName,
	}, false)
	if err != nil {
		return nil, fmt.Errorf("rendering docs site config: %w", err)
	}
	files["conf.py"] = conf
	files[".readthedocs.yaml"] = layout.ReadTheDocsConfig

	// Site-builder compatibility directories.
	for _, dir := range []string{"_static", "_templates"} {
		if err := scaffold.CreateDirectory(filepath.Join(docsPath, dir)); err != nil {
			return nil, err
		}
	}

	for _, section := range layout.SourceDocSections {
		if err := scaffold.CreateDirectory(filepath.Join(docsPath, "source", section)); err != nil {
			return nil, err
		}
	}
	files[filepath.Join("source", "index.md")] = layout.SourceDocIndex

	raw, err := scaffold.WriteFiles(docsPath, files, nil, overwrite)
	if err != nil {
		return nil, err
	}
	raw["base_path"] = base
	raw["languages"] = languages

	output.Verbose(fmt.Sprintf("Created documentation structure for %d languages", len(languages)))
	return raw, nil
}

// rootIndex builds the top-level docs index with one link per language.
func rootIndex(languages []string) string {
	var sb strings.Builder
	sb.WriteString(layout.DocsIndexHeader)
	for _, language := range languages {
		title := template.TitleCase(language)
		fmt.Fprintf(&sb, "- [%s](manual/%s/): %s documentation\n", title, language, title)
	}
	return sb.String()
}
