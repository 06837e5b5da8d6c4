package layout

// ReadmeTemplate is the repository root README. Placeholders: $repo_name,
// $current_date.
const ReadmeTemplate = `# $repo_name

![Version](https://img.shields.io/badge/version-0.1.0-blue)
![Updated](https://img.shields.io/badge/updated-$current_date-orange)
![License](https://img.shields.io/badge/license-MIT-green)

**Universal monorepo structure**

## Features

- Universal project structure optimized for any language
- Cross-language interoperability with unified interfaces
- Comprehensive documentation system
- Streamlined build and testing pipeline
- Modular architecture for ultimate composability
- Integrated quality assurance workflows

## Structure

` + "```" + `
.
├── projects/         # Language-specific projects
├── libs/             # Shared libraries and components
├── tools/            # Development and build tools
├── scripts/          # Automation scripts
├── docs/             # Documentation
├── tests/            # Integrated test suite
├── benchmarks/       # Performance benchmarks
├── examples/         # Example code and tutorials
└── ci/               # Continuous integration configuration
` + "```" + `

## Getting Started

Clone this repository and explore the structure to get familiar with the
organization.

## Contributing

Contributions are welcome! Please see our [Contributing Guide](CONTRIBUTING.md).

## License

This project is licensed under the MIT License - see the [LICENSE](LICENSE)
file for details.

Created with Repo Forge.
`

// GitignoreContent covers the union of the supported languages.
const GitignoreContent = `# Python
__pycache__/
*.py[cod]
*.so
.Python
env/
.venv/
*.egg-info/
.pytest_cache/
.mypy_cache/
.coverage
htmlcov/

# Node.js
node_modules/
npm-debug.log*
yarn-debug.log*
yarn-error.log*
.pnp/
.npm/

# Go
*.exe
*.test
*.out
vendor/

# Rust
target/
Cargo.lock
**/*.rs.bk

# Build artifacts
dist/
build/
wheelhouse/
*.o
*.a

# Editors
.idea/
.vscode/
*.swp
*.swo
*~

# OS
.DS_Store
Thumbs.db

# Environments
.env
.env.local
`

// EditorconfigContent enforces one indentation convention per language.
const EditorconfigContent = `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true
trim_trailing_whitespace = true
indent_style = space
indent_size = 4

[*.{js,json,yml,yaml}]
indent_size = 2

[*.go]
indent_style = tab

[*.rs]
indent_size = 4

[Makefile]
indent_style = tab

[*.md]
trim_trailing_whitespace = false
`

// ForgeConfigTemplate is the repository-level forge.yml. Placeholders:
// $repo_name, $current_date, $author_name, $author_email, $org_name.
const ForgeConfigTemplate = `# Repo Forge configuration
repository:
  name: $repo_name
  created: $current_date
  generator: repo-forge

maintainers:
  - name: $author_name
    email: $author_email
    organization: $org_name

conventions:
  documentation: docs/manual
  generated_docs: docs/auto
  scripts: scripts
  shared: shared

quality:
  require_tests: true
  require_docs: true
  ci_on_push: true
`

// CIConfigTemplate is the GitHub Actions workflow. Placeholder: $repo_name.
const CIConfigTemplate = `name: $repo_name CI

on:
  push:
    branches: [main]
  pull_request:
    branches: [main]

jobs:
  lint:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - name: Run linters
        run: ./scripts/ci/run_checks.sh || true

  test:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        language: [python, nodejs, go, rust]
    steps:
      - uses: actions/checkout@v4
      - name: Run tests
        run: ./scripts/dev/run_tests.sh ${{ matrix.language }} || true

  build:
    runs-on: ubuntu-latest
    needs: [lint, test]
    steps:
      - uses: actions/checkout@v4
      - name: Build all projects
        run: ./scripts/build/build_all.sh || true
`

// ContributingTemplate is CONTRIBUTING.md. Placeholders: $repo_name,
// $author_name, $author_email.
const ContributingTemplate = `# Contributing to $repo_name

Thank you for considering a contribution!

## Workflow

1. Fork the repository and create a feature branch.
2. Make your changes with tests.
3. Run the test suite: ` + "`./scripts/dev/run_tests.sh`" + `
4. Open a pull request against ` + "`main`" + `.

## Code Standards

- Keep each project inside its language directory under ` + "`projects/`" + `.
- Document public interfaces in ` + "`docs/manual/`" + `.
- Shared contracts belong in ` + "`shared/`" + `.

## Questions

Reach out to $author_name <$author_email>.
`

// CodeOfConductContent is a condensed contributor covenant.
const CodeOfConductContent = `# Code of Conduct

## Our Pledge

We pledge to make participation in this project a harassment-free experience
for everyone.

## Our Standards

Examples of behavior that contributes to a positive environment:

- Using welcoming and inclusive language
- Being respectful of differing viewpoints
- Gracefully accepting constructive criticism
- Focusing on what is best for the community

## Enforcement

Instances of unacceptable behavior may be reported to the project
maintainers. All complaints will be reviewed and investigated.
`

// LicenseTemplate is the MIT license. Placeholders: $current_year,
// $author_name.
const LicenseTemplate = `MIT License

Copyright (c) $current_year $author_name

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
`

// SecurityTemplate is SECURITY.md. Placeholders: $repo_name, $author_email.
const SecurityTemplate = `# Security Policy

## Supported Versions

Only the latest release of $repo_name receives security updates.

## Reporting a Vulnerability

Please report vulnerabilities privately to $author_email. Do not open a
public issue. You will receive a response within 72 hours.
`

// ChangelogTemplate is the initial CHANGELOG.md. Placeholders: $repo_name,
// $current_date.
const ChangelogTemplate = `# Changelog

All notable changes to $repo_name are documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/),
and this project adheres to [Semantic Versioning](https://semver.org/).

## [0.1.0] - $current_date

### Added

- Initial repository structure generated by Repo Forge.
`

// ScriptsReadme documents the scripts/ directory layout.
const ScriptsReadme = `# Automation Scripts

This directory contains scripts for automating common tasks in the
repository.

## Directory Structure

- ` + "`build/`" + `: Build automation scripts
- ` + "`deploy/`" + `: Deployment scripts
- ` + "`setup/`" + `: Environment setup scripts
- ` + "`maintenance/`" + `: System maintenance scripts
- ` + "`database/`" + `: Database management scripts
- ` + "`utils/`" + `: Utility scripts
- ` + "`ci/`" + `: CI/CD helper scripts
- ` + "`dev/`" + `: Development utility scripts

## Usage

Most scripts can be run directly from the command line:

` + "```bash" + `
./scripts/setup/install_dependencies.sh
` + "```" + `

## Contributing

When adding new scripts:

1. Make sure they are executable
2. Add appropriate documentation and usage examples
3. Follow the repository's coding standards
`

// InstallDependenciesTemplate installs toolchains for the selected
// languages. Placeholder: $languages (space-separated list).
const InstallDependenciesTemplate = `#!/usr/bin/env bash
# Install development dependencies for all supported languages.
set -euo pipefail

LANGUAGES="$languages"

for lang in $$LANGUAGES; do
    case "$$lang" in
        python)
            command -v python3 >/dev/null || { echo "python3 not found"; exit 1; }
            python3 -m pip install --upgrade pip
            ;;
        nodejs)
            command -v npm >/dev/null || { echo "npm not found"; exit 1; }
            ;;
        go)
            command -v go >/dev/null || { echo "go not found"; exit 1; }
            ;;
        rust)
            command -v cargo >/dev/null || { echo "cargo not found"; exit 1; }
            ;;
        *)
            echo "Unknown language: $$lang" >&2
            ;;
    esac
done

echo "All dependencies verified."
`

// BuildAllTemplate builds every project under projects/. Placeholder:
// $languages.
const BuildAllTemplate = `#!/usr/bin/env bash
# Build all language projects in the monorepo.
set -euo pipefail

REPO_ROOT="$$(cd "$$(dirname "$${BASH_SOURCE[0]}")/../.." && pwd)"
LANGUAGES="$languages"

for lang in $$LANGUAGES; do
    project="$$REPO_ROOT/projects/$${lang}_project"
    [ -d "$$project" ] || continue
    echo "Building $$project"
    case "$$lang" in
        python) (cd "$$project" && python3 -m pip install -e . 2>/dev/null || true) ;;
        nodejs) (cd "$$project" && npm install --silent 2>/dev/null || true) ;;
        go)     (cd "$$project" && go build ./... 2>/dev/null || true) ;;
        rust)   (cd "$$project" && cargo build --quiet 2>/dev/null || true) ;;
    esac
done

echo "Build complete."
`

// RunTestsTemplate runs every project's test suite. Placeholder: $languages.
const RunTestsTemplate = `#!/usr/bin/env bash
# Run test suites across all language projects.
set -euo pipefail

REPO_ROOT="$$(cd "$$(dirname "$${BASH_SOURCE[0]}")/../.." && pwd)"
LANGUAGES="$${1:-$languages}"

for lang in $$LANGUAGES; do
    project="$$REPO_ROOT/projects/$${lang}_project"
    [ -d "$$project" ] || continue
    echo "Testing $$project"
    case "$$lang" in
        python) (cd "$$project" && python3 -m pytest tests 2>/dev/null || true) ;;
        nodejs) (cd "$$project" && npm test --silent 2>/dev/null || true) ;;
        go)     (cd "$$project" && go test ./... 2>/dev/null || true) ;;
        rust)   (cd "$$project" && cargo test --quiet 2>/dev/null || true) ;;
    esac
done

echo "Tests complete."
`

// RunChecksContent is the CI lint helper.
const RunChecksContent = `#!/usr/bin/env bash
# Run static checks across the repository.
set -euo pipefail

REPO_ROOT="$(cd "$(dirname "${BASH_SOURCE[0]}")/../.." && pwd)"

echo "Checking shell scripts..."
if command -v shellcheck >/dev/null; then
    find "$REPO_ROOT/scripts" -name '*.sh' -print0 | xargs -0 shellcheck || true
fi

echo "Checking YAML files..."
if command -v yamllint >/dev/null; then
    yamllint "$REPO_ROOT" || true
fi

echo "Checks complete."
`

// ProjectStatsContent is a small repository statistics utility.
const ProjectStatsContent = `#!/usr/bin/env python3
"""Print line counts per file extension for the repository."""
import os
import sys
from collections import Counter

SKIP_DIRS = {".git", "node_modules", "target", "dist", "build", "__pycache__"}


def main() -> int:
    root = sys.argv[1] if len(sys.argv) > 1 else "."
    counts: Counter = Counter()
    for dirpath, dirnames, filenames in os.walk(root):
        dirnames[:] = [d for d in dirnames if d not in SKIP_DIRS]
        for name in filenames:
            ext = os.path.splitext(name)[1] or "(none)"
            try:
                with open(os.path.join(dirpath, name), "rb") as f:
                    counts[ext] += sum(1 for _ in f)
            except OSError:
                continue
    for ext, lines in counts.most_common():
        print(f"{ext:12} {lines}")
    return 0


if __name__ == "__main__":
    sys.exit(main())
`

// ProjectReadmes maps a language to its project README. The "default" entry
// covers unknown languages. Placeholder: $project_name.
var ProjectReadmes = map[string]string{
	"default": `# $project_name

A project scaffolded by Repo Forge.

## Layout

- ` + "`src/`" + `: Source code
- ` + "`tests/`" + `: Test suite
`,
	"python": `# $project_name

A Python project scaffolded by Repo Forge.

## Development

` + "```bash" + `
python3 -m venv .venv
source .venv/bin/activate
pip install -e .
pytest tests
` + "```" + `
`,
	"nodejs": `# $project_name

A Node.js project scaffolded by Repo Forge.

## Development

` + "```bash" + `
npm install
npm test
` + "```" + `
`,
	"go": `# $project_name

A Go project scaffolded by Repo Forge.

## Development

` + "```bash" + `
go build ./...
go test ./...
` + "```" + `
`,
	"rust": `# $project_name

A Rust project scaffolded by Repo Forge.

## Development

` + "```bash" + `
cargo build
cargo test
` + "```" + `
`,
}

// ProjectConfigFiles maps a language to the config files written at its
// project root.
var ProjectConfigFiles = map[string]map[string]string{
	"python": {
		"pyproject.toml": `[build-system]
requires = ["setuptools>=68"]
build-backend = "setuptools.build_meta"

[project]
name = "python_project"
version = "0.1.0"
requires-python = ">=3.10"

[tool.pytest.ini_options]
testpaths = ["tests"]
`,
		"setup.cfg": `[flake8]
max-line-length = 100
exclude = .venv,build,dist
`,
	},
	"nodejs": {
		"package.json": `{
  "name": "nodejs_project",
  "version": "0.1.0",
  "main": "src/index.js",
  "scripts": {
    "test": "mocha tests"
  }
}
`,
		".nvmrc": "20\n",
	},
	"go": {
		"go.mod": `module example.com/go_project

go 1.25
`,
	},
	"rust": {
		"Cargo.toml": `[package]
name = "rust_project"
version = "0.1.0"
edition = "2021"

[dependencies]
`,
	},
}

// ProjectMainFiles maps a language to its entry-point source files written
// under the project source directory.
var ProjectMainFiles = map[string]map[string]string{
	"python": {
		"main.py": `"""Entry point for the python_project package."""


def main() -> int:
    print("python_project ready")
    return 0


if __name__ == "__main__":
    raise SystemExit(main())
`,
	},
	"nodejs": {
		"index.js": `'use strict';

function main() {
  console.log('nodejs_project ready');
}

main();
`,
	},
	"go": {
		"main.go": `package main

import "fmt"

func main() {
	fmt.Println("go_project ready")
}
`,
	},
	"rust": {
		"main.rs": `fn main() {
    println!("rust_project ready");
}
`,
	},
}

// ProjectTestFiles maps a language to its starter test files, written
// relative to the project root.
var ProjectTestFiles = map[string]map[string]string{
	"python": {
		"tests/__init__.py": "# Test package\n",
		"tests/test_example.py": `import unittest


class TestExample(unittest.TestCase):
    def test_example(self):
        self.assertTrue(True)


if __name__ == "__main__":
    unittest.main()
`,
	},
	"nodejs": {
		"tests/example.test.js": `const assert = require('assert');

describe('Example Test', function () {
  it('should pass', function () {
    assert.strictEqual(1, 1);
  });
});
`,
	},
	"go": {
		"tests/example_test.go": `package main

import "testing"

func TestExample(t *testing.T) {
	if 1 != 1 {
		t.Errorf("expected 1 to equal 1")
	}
}
`,
	},
	"rust": {
		"src/lib.rs": `#[cfg(test)]
mod tests {
    #[test]
    fn it_works() {
        assert_eq!(2 + 2, 4);
    }
}
`,
	},
}
