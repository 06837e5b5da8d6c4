// Package report normalizes heterogeneous generator results into a single
// serializable record.
//
// Generators hand back a Raw map in interchange shape. Normalize validates
// it, coerces the count field to a primitive integer, verifies the whole
// structure round-trips through JSON, and, as a last resort, replaces a
// non-encodable result with an emergency-sanitized copy. A serialization
// defect never aborts the run; a failed generator always does.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Ace1928/repo-forge/internal/output"
)

// Raw is a generator result before normalization. Keys follow the
// interchange contract: success, count, created_files, base_path, error,
// plus any generator-specific extras.
type Raw map[string]any

// Result is the normalized, guaranteed-serializable record summarizing one
// generator phase.
type Result struct {
	Success      bool     `json:"success"`
	Count        int      `json:"count"`
	CreatedFiles []string `json:"created_files"`
	BasePath     string   `json:"base_path"`

	// Sanitized marks results rebuilt by the emergency path after a
	// serialization failure.
	Sanitized bool `json:"_sanitized,omitempty"`
}

// Normalize validates raw and produces the canonical Result for operation.
//
// A falsy or absent success field fails the whole operation and returns an
// error carrying raw's error message (or a generic placeholder). Everything
// else is recoverable: a bad count is recomputed from created_files, and a
// result that cannot be encoded to JSON is replaced with a sanitized copy
// and flagged, with the defect logged for operator visibility.
func Normalize(raw Raw, operation string) (*Result, error) {
	if success, _ := raw["success"].(bool); !success {
		return nil, fmt.Errorf("%s failed: %s", operation, errorMessage(raw))
	}

	createdFiles, filesListed := stringList(raw["created_files"])

	count := len(createdFiles)
	if value, ok := raw["count"]; ok {
		coerced, err := coerceInt(value)
		switch {
		case err != nil:
			output.Warn(fmt.Sprintf(
				"%s: count field %v is not numeric, recomputing from created_files", operation, value))
		case !filesListed:
			// No file list to check against; the supplied count stands.
			count = coerced
		case coerced != len(createdFiles):
			output.Warn(fmt.Sprintf(
				"%s: count %d disagrees with %d created files, using the file list",
				operation, coerced, len(createdFiles)))
		default:
			count = coerced
		}
	}

	result := &Result{
		Success:      true,
		Count:        count,
		CreatedFiles: createdFiles,
		BasePath:     stringOr(raw["base_path"], ""),
	}

	if _, err := json.Marshal(raw); err != nil {
		logEncodingDefect(raw, operation, err)
		result.Sanitized = true
	}
	return result, nil
}

// logEncodingDefect identifies each key/value pair that fails to encode and
// logs a diagnostic naming the key, the value's shape, and a value sample.
func logEncodingDefect(raw Raw, operation string, err error) {
	output.Error(fmt.Sprintf("%s: result is not JSON-serializable: %v", operation, err))
	for _, issue := range findIssues(raw) {
		output.Warn(fmt.Sprintf(
			"%s: key %q (%s) is not encodable: %s | shape: %s",
			operation, issue.Key, issue.Shape.Type, issue.Error, renderShape(issue.Shape)))
	}
	output.Info(fmt.Sprintf("%s: emergency sanitization applied, result is now serializable", operation))
}

// Issue pinpoints one non-encodable key/value pair in a raw result. Shape
// carries the bounded recursive description of the offending value.
type Issue struct {
	Key   string      `json:"key"`
	Shape ValueReport `json:"shape"`
	Error string      `json:"error"`
}

// findIssues tests every key/value pair of raw individually and describes
// the ones that fail to encode.
func findIssues(raw Raw) []Issue {
	var issues []Issue
	for key, value := range raw {
		if _, err := json.Marshal(map[string]any{key: value}); err != nil {
			issues = append(issues, Issue{
				Key:   key,
				Shape: Describe(value),
				Error: err.Error(),
			})
		}
	}
	return issues
}

// renderShape encodes a value report for a log line. ValueReport is plain
// data, so encoding cannot fail; the fallback covers it anyway.
func renderShape(shape ValueReport) string {
	data, err := json.Marshal(shape)
	if err != nil {
		return shape.Type
	}
	return string(data)
}

// errorMessage extracts raw's error field, falling back to a generic
// placeholder when the generator supplied none.
func errorMessage(raw Raw) string {
	if msg, ok := raw["error"]; ok && msg != nil {
		return fmt.Sprint(msg)
	}
	return "unknown error"
}

// stringList coerces a created_files value into a slice of plain strings.
// The second return reports whether the key held a recognizable sequence.
func stringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return []string{}, false
	case []string:
		return append([]string{}, v...), true
	case []any:
		files := make([]string, len(v))
		for i, item := range v {
			files[i] = fmt.Sprint(item)
		}
		return files, true
	default:
		return []string{}, false
	}
}

// coerceInt forces value to a primitive int. Numeric strings are accepted;
// fractional floats are truncated toward zero like an integer cast.
func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		return int(n), err
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			f, ferr := strconv.ParseFloat(v, 64)
			if ferr != nil {
				return 0, fmt.Errorf("cannot convert %q to int", v)
			}
			return int(f), nil
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", value)
	}
}

func stringOr(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	return fmt.Sprint(value)
}
