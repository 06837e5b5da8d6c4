// Package configfiles generates the repository-level configuration and
// community files: README, license, CI workflow, contribution docs, and the
// .forge.json metadata document.
package configfiles

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ace1928/repo-forge/internal/identity"
	"github.com/Ace1928/repo-forge/internal/layout"
	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
	"github.com/Ace1928/repo-forge/internal/scaffold"
	"github.com/Ace1928/repo-forge/internal/template"
)

// Generator writes repository configuration files.
type Generator struct {
	identity identity.Info
}

// NewGenerator creates a config-file generator stamped with the given
// identity.
func NewGenerator(info identity.Info) *Generator {
	return &Generator{identity: info}
}

// Generate writes the configuration file set under base.
func (g *Generator) Generate(base, repoName string, languages []string, overwrite bool) (report.Raw, error) {
	if languages == nil {
		languages = layout.DefaultLanguages
	}

	displayName := template.TitleCase(strings.ReplaceAll(repoName, "_", " "))
	vars := template.Vars{
		"repo_name":    displayName,
		"author_name":  g.identity.AuthorName,
		"author_email": g.identity.AuthorEmail,
		"org_name":     g.identity.OrgName,
		"github_user":  g.identity.GitHubUser,
	}

	files := map[string]string{}

	readme, err := template.Render(layout.ReadmeTemplate, vars, false)
	if err != nil {
		return nil, fmt.Errorf("rendering README: %w", err)
	}
	files["README.md"] = readme

	files[".gitignore"] = layout.GitignoreContent
	files[".editorconfig"] = layout.EditorconfigContent
	files["CODE_OF_CONDUCT.md"] = layout.CodeOfConductContent

	forgeConfig, err := template.Render(layout.ForgeConfigTemplate, template.Vars{
		"repo_name":    repoName,
		"author_name":  g.identity.AuthorName,
		"author_email": g.identity.AuthorEmail,
		"org_name":     g.identity.OrgName,
	}, false)
	if err != nil {
		return nil, fmt.Errorf("rendering forge.yml: %w", err)
	}
	files["forge.yml"] = forgeConfig

	// The workflow template contains ${{ }} expressions the renderer
	// treats as malformed, so it degrades to safe substitution and
	// leaves them for GitHub Actions.
	ci, err := template.Render(layout.CIConfigTemplate, template.Vars{"repo_name": repoName}, false)
	if err != nil {
		return nil, fmt.Errorf("rendering CI workflow: %w", err)
	}
	files[filepath.Join(".github", "workflows", "ci.yml")] = ci

	contributing, err := template.Render(layout.ContributingTemplate, vars, false)
	if err != nil {
		return nil, fmt.Errorf("rendering CONTRIBUTING: %w", err)
	}
	files["CONTRIBUTING.md"] = contributing

	license, err := template.Render(layout.LicenseTemplate, vars, false)
	if err != nil {
		return nil, fmt.Errorf("rendering LICENSE: %w", err)
	}
	files["LICENSE"] = license

	security, err := template.Render(layout.SecurityTemplate, template.Vars{
		"repo_name":    repoName,
		"author_email": g.identity.AuthorEmail,
	}, false)
	if err != nil {
		return nil, fmt.Errorf("rendering SECURITY: %w", err)
	}
	files["SECURITY.md"] = security

	changelog, err := template.Render(layout.ChangelogTemplate, template.Vars{"repo_name": repoName}, false)
	if err != nil {
		return nil, fmt.Errorf("rendering CHANGELOG: %w", err)
	}
	files["CHANGELOG.md"] = changelog

	raw, err := scaffold.WriteFiles(base, files, nil, overwrite)
	if err != nil {
		return nil, err
	}

	written, err := g.writeMetadata(base, repoName, languages)
	if err != nil {
		return nil, err
	}
	if written {
		raw["created_files"] = append(raw["created_files"].([]string), ".forge.json")
	}

	output.Verbose(fmt.Sprintf("Created %d configuration files", len(raw["created_files"].([]string))))
	return raw, nil
}

// metadata is the .forge.json document recording the design principles the
// generated structure applies and the languages it supports.
type metadata struct {
	Version    string               `json:"version"`
	Principles map[string]principle `json:"principles"`
	Metadata   metadataInfo         `json:"metadata"`
}

type principle struct {
	Active      bool   `json:"active"`
	Description string `json:"description"`
}

type metadataInfo struct {
	Creator            string   `json:"creator"`
	Created            string   `json:"created"`
	LastModified       string   `json:"lastModified"`
	Description        string   `json:"description"`
	LanguagesSupported []string `json:"languagesSupported"`
}

// writeMetadata writes .forge.json. It never overwrites an existing file;
// the returned bool reports whether a write happened.
func (g *Generator) writeMetadata(base, repoName string, languages []string) (bool, error) {
	now := time.Now().Format("2006-01-02T15:04:05Z")
	doc := metadata{
		Version: "1.0.0",
		Principles: map[string]principle{
			"structuralConsistency": {
				Active:      true,
				Description: "Every file has a fixed place in the structure",
			},
			"crossLanguageParity": {
				Active:      true,
				Description: "Each language project follows the same conventions",
			},
			"documentationFirst": {
				Active:      true,
				Description: "Manual and generated docs are separated and always present",
			},
			"automationReady": {
				Active:      true,
				Description: "Scripts and CI configuration ship with the structure",
			},
		},
		Metadata: metadataInfo{
			Creator:            "repo-forge",
			Created:            now,
			LastModified:       now,
			Description:        fmt.Sprintf("A universal %s monorepo", repoName),
			LanguagesSupported: languages,
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encoding .forge.json: %w", err)
	}

	return scaffold.WriteFile(filepath.Join(base, ".forge.json"), string(data)+"\n", false)
}
