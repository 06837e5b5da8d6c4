// Package layout holds the static path and content tables that define the
// generated repository: top-level directories, per-language project
// subtrees, documentation sections, and the boilerplate written into them.
// It is pure data; all file I/O lives in the scaffold and generator
// packages.
package layout

// CoreDirectories are the top-level directories every generated monorepo
// gets. Their creation is order-independent and runs in parallel.
var CoreDirectories = []string{
	"projects",   // Language-specific projects
	"libs",       // Shared libraries
	"tools",      // Development and build tools
	"scripts",    // Automation scripts
	"docs",       // Documentation
	"tests",      // Testing framework and shared tests
	"benchmarks", // Performance benchmarks
	"examples",   // Example code and usage examples
	"ci",         // CI/CD configuration
	".github",    // GitHub-specific configuration
	"config",     // Configuration files
	"shared",     // Shared cross-language artifacts
	"dist",       // Distribution artifacts
	"build",      // Build artifacts
	"wheelhouse", // Python wheel packages
}

// LanguageTree declares the source subtree of one language project:
// subdirectories to create under src/<project>/ and placeholder files to
// touch inside it.
type LanguageTree struct {
	Structure []string
	Files     []string
}

// LanguageDirectories maps each supported language to its project subtree.
var LanguageDirectories = map[string]LanguageTree{
	"python": {
		Structure: []string{"core", "utils", "models", "api", "services", "config"},
		Files: []string{
			"__init__.py",
			"core/__init__.py",
			"utils/__init__.py",
			"models/__init__.py",
			"api/__init__.py",
			"services/__init__.py",
			"config/__init__.py",
		},
	},
	"nodejs": {
		Structure: []string{"src", "config", "api", "services", "models", "utils"},
		Files: []string{
			"src/index.js",
			"config/index.js",
			"api/index.js",
			"services/index.js",
			"models/index.js",
			"utils/index.js",
		},
	},
	"go": {
		Structure: []string{"pkg", "cmd", "internal", "api", "config", "models"},
		Files: []string{
			"pkg/pkg.go",
			"cmd/main.go",
			"internal/internal.go",
			"api/api.go",
			"config/config.go",
			"models/models.go",
		},
	},
	"rust": {
		Structure: []string{"src/bin", "src/lib", "src/api", "src/models", "src/utils", "src/config"},
		Files: []string{
			"src/lib.rs",
			"src/bin/main.rs",
			"src/api/mod.rs",
			"src/models/mod.rs",
			"src/utils/mod.rs",
			"src/config/mod.rs",
		},
	},
}

// ScriptDirectories are the categories under scripts/.
var ScriptDirectories = []string{
	"build", "deploy", "setup", "maintenance", "database", "utils", "ci", "dev",
}

// TestDirectories are the categories under tests/.
var TestDirectories = []string{
	"unit", "integration", "e2e", "performance", "security", "fixtures", "mocks", "utils",
}

// BenchmarkDirectories are the categories under benchmarks/.
var BenchmarkDirectories = []string{
	"performance", "memory", "concurrency", "io", "network", "reports", "tools",
}

// ExampleDirectories are the categories under examples/.
var ExampleDirectories = []string{
	"tutorials", "quickstart", "advanced", "integrations", "snippets", "use-cases",
}

// CIDirectories are the per-provider directories under ci/.
var CIDirectories = []string{
	"github", "gitlab", "azure", "jenkins", "common",
}

// GitHubDirectories live under .github/.
var GitHubDirectories = []string{
	"workflows", "ISSUE_TEMPLATE", "PULL_REQUEST_TEMPLATE", "actions",
}

// DocumentationStructure is the top level of docs/.
var DocumentationStructure = []string{
	"manual", // Hand-written documentation
	"auto",   // Auto-generated documentation
	"assets", // Documentation assets (images, diagrams)
}

// ManualDocStructure is the per-language tree under docs/manual/<lang>/.
var ManualDocStructure = []string{
	"guides", "api", "design", "examples", "best_practices",
	"troubleshooting", "security", "changelog", "contributing", "faq",
}

// AutoDocStructure is the per-language tree under docs/auto/<lang>/.
var AutoDocStructure = []string{
	"api", "models", "functions", "error_handling",
	"benchmarks", "internal", "schemas", "configuration",
}

// AssetsStructure is the tree under docs/assets/.
var AssetsStructure = []string{
	"images", "diagrams", "css", "fonts",
}

// SourceDocSections is the topic tree under docs/source/.
var SourceDocSections = []string{
	"concepts", "examples", "getting_started", "guides", "reference", "architecture",
}

// SharedDirectories are the cross-language trees under shared/.
var SharedDirectories = []string{
	"interfaces", "protocols", "schemas", "types", "protos", "tools",
}

// ConfigDirectories are the per-environment trees under config/.
var ConfigDirectories = []string{
	"development", "staging", "production", "testing", "local",
}

// ToolDirectories are the categories under tools/.
var ToolDirectories = []string{
	"linters", "formatters", "analyzers", "generators", "converters",
}

// DefaultLanguages is the language set used when the caller supplies none.
var DefaultLanguages = []string{"python", "nodejs", "go", "rust"}
