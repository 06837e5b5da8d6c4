package layout

// ManualDocIndexTemplate is the index of docs/manual/<lang>/.
// Placeholders: $language_title.
const ManualDocIndexTemplate = `# $language_title Documentation

Welcome to the $language_title documentation for this project.

## Contents

- [Guides](guides/): Step-by-step tutorials
- [API Documentation](api/): Detailed API reference
- [Design](design/): Architecture and design documents
- [Examples](examples/): Code examples
- [Best Practices](best_practices/): Recommended patterns and practices
- [Troubleshooting](troubleshooting/): Common issues and solutions
- [Security](security/): Security guidelines and considerations
- [Changelog](changelog/): Version history
- [Contributing](contributing/): How to contribute
- [FAQ](faq/): Frequently Asked Questions
`

// AutoDocIndexTemplate is the index of docs/auto/<lang>/.
// Placeholders: $language_title.
const AutoDocIndexTemplate = `# Auto-Generated $language_title Documentation

This section contains automatically generated documentation for the
$language_title code.

## Contents

- [API Reference](api/): Auto-generated API documentation
- [Data Models](models/): Documentation for data models
- [Functions](functions/): Function-level documentation
- [Error Handling](error_handling/): Exception and error documentation
- [Benchmarks](benchmarks/): Performance benchmarks
- [Internal API](internal/): Documentation for internal APIs
- [Schemas](schemas/): Database and data structure schemas
- [Configuration](configuration/): Configuration options and reference
`

// AssetsReadme documents docs/assets/.
const AssetsReadme = `# Documentation Assets

This directory contains static assets used in the documentation:

- ` + "`images/`" + `: Screenshots, illustrations, and other images
- ` + "`diagrams/`" + `: Architecture diagrams, flowcharts, and UML diagrams
- ` + "`css/`" + `: Custom stylesheets for documentation
- ` + "`fonts/`" + `: Custom fonts used in documentation
`

// DocsIndexHeader opens the root docs index; per-language links are
// appended by the docs generator.
const DocsIndexHeader = `# Project Documentation

Welcome to the comprehensive documentation for this project.

## Structure

- [Manual Documentation](manual/): Hand-written documentation
- [Auto-Generated Documentation](auto/): Documentation generated from code
- [Assets](assets/): Images, diagrams, and other static assets

## Languages

`

// SphinxConfTemplate is the documentation-site configuration.
// Placeholders: $repo_name, $author_name, $current_year.
const SphinxConfTemplate = `# Configuration file for the Sphinx documentation builder

project = "$repo_name"
copyright = "$current_year, $author_name"
author = "$author_name"

extensions = [
    "sphinx.ext.autodoc",
    "sphinx.ext.viewcode",
    "sphinx.ext.napoleon",
    "myst_parser",
    "sphinx_rtd_theme",
]

templates_path = ["_templates"]
exclude_patterns = ["_build", "Thumbs.db", ".DS_Store"]

html_theme = "sphinx_rtd_theme"
html_static_path = ["_static"]
`

// ReadTheDocsConfig is the hosted-docs build configuration.
const ReadTheDocsConfig = `version: 2

build:
  os: ubuntu-22.04
  tools:
    python: "3.10"

sphinx:
  configuration: docs/conf.py

python:
  install:
    - method: pip
      path: .
      extra_requirements:
        - docs
`

// SourceDocIndex documents the docs/source/ topic tree.
const SourceDocIndex = `# Source Documentation

This directory contains documentation source files organized by topic:

- [Concepts](concepts/): Core concepts and principles
- [Examples](examples/): Example code and tutorials
- [Getting Started](getting_started/): Quickstart guides
- [Guides](guides/): In-depth guides
- [Reference](reference/): API reference documentation
- [Architecture](architecture/): Architectural overviews
`
