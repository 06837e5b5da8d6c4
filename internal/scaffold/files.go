// Package scaffold materializes the generated repository on disk: single
// and batch file writes with an overwrite-or-skip policy, and the
// declarative directory tree builder.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Ace1928/repo-forge/internal/output"
	"github.com/Ace1928/repo-forge/internal/report"
)

// WriteFile writes content to path, creating missing parent directories
// unconditionally. When the file already exists and overwrite is false the
// write is skipped and WriteFile returns false; in every other case the
// content is written verbatim (UTF-8) and WriteFile returns true.
func WriteFile(path, content string, overwrite bool) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("cannot create directory %s: %w", filepath.Dir(path), err)
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			output.Verbose("Skipping existing file: " + path)
			return false, nil
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("cannot write file %s: %w", path, err)
	}
	output.Verbose("Created file: " + path)
	return true, nil
}

// WriteFiles applies the WriteFile contract to every entry of files, keyed
// by path relative to base. Entries named in executable get their execute
// bits added for owner, group, and other; existing permissions are never
// narrowed. Entries are processed in sorted path order so created_files is
// deterministic.
func WriteFiles(base string, files map[string]string, executable map[string]bool, overwrite bool) (report.Raw, error) {
	relPaths := make([]string, 0, len(files))
	for relPath := range files {
		relPaths = append(relPaths, relPath)
	}
	sort.Strings(relPaths)

	createdFiles := []string{}
	skippedFiles := []string{}

	for _, relPath := range relPaths {
		path := filepath.Join(base, relPath)
		written, err := WriteFile(path, files[relPath], overwrite)
		if err != nil {
			return nil, err
		}
		if !written {
			skippedFiles = append(skippedFiles, relPath)
			continue
		}
		createdFiles = append(createdFiles, relPath)

		if executable[relPath] {
			if err := MakeExecutable(path); err != nil {
				return nil, err
			}
		}
	}

	return report.Raw{
		"success":       true,
		"created_files": createdFiles,
		"skipped_files": skippedFiles,
		"base_path":     base,
	}, nil
}

// MakeExecutable adds the execute bits to path's current permissions.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	if err := os.Chmod(path, info.Mode()|0o111); err != nil {
		return fmt.Errorf("cannot make %s executable: %w", path, err)
	}
	return nil
}
