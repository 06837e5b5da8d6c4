// Package repoforge generates universal monorepo structures: a fixed,
// opinionated directory tree populated with templated boilerplate for
// any combination of supported languages.
package repoforge

// Version is the current repo-forge release version.
const Version = "0.1.0"
