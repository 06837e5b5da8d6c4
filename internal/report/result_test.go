package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		raw           Raw
		wantCount     int
		wantFiles     []string
		wantSanitized bool
	}{
		{
			name: "count matches created_files",
			raw: Raw{
				"success":       true,
				"count":         2,
				"created_files": []string{"a.txt", "b.txt"},
				"base_path":     "/tmp/x",
			},
			wantCount: 2,
			wantFiles: []string{"a.txt", "b.txt"},
		},
		{
			name: "missing count is derived from created_files",
			raw: Raw{
				"success":       true,
				"created_files": []string{"a.txt", "b.txt", "c.txt"},
			},
			wantCount: 3,
			wantFiles: []string{"a.txt", "b.txt", "c.txt"},
		},
		{
			name: "non-numeric count falls back to file list length",
			raw: Raw{
				"success":       true,
				"count":         "not a number",
				"created_files": []string{"a.txt"},
			},
			wantCount: 1,
			wantFiles: []string{"a.txt"},
		},
		{
			name: "numeric string count is coerced",
			raw: Raw{
				"success": true,
				"count":   "7",
			},
			wantCount: 7,
			wantFiles: []string{},
		},
		{
			name: "float count is coerced to primitive int",
			raw: Raw{
				"success":       true,
				"count":         float64(2),
				"created_files": []string{"a.txt", "b.txt"},
			},
			wantCount: 2,
			wantFiles: []string{"a.txt", "b.txt"},
		},
		{
			name: "divergent count loses to the file list",
			raw: Raw{
				"success":       true,
				"count":         99,
				"created_files": []string{"a.txt", "b.txt"},
			},
			wantCount: 2,
			wantFiles: []string{"a.txt", "b.txt"},
		},
		{
			name: "no files and no count",
			raw: Raw{
				"success":   true,
				"base_path": "/tmp/x",
				"languages": []string{"go"},
			},
			wantCount: 0,
			wantFiles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(tt.raw, "test operation")
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.wantCount, result.Count)
			assert.Equal(t, tt.wantFiles, result.CreatedFiles)
			assert.Equal(t, tt.wantSanitized, result.Sanitized)
		})
	}
}

func TestNormalizeFailedResult(t *testing.T) {
	_, err := Normalize(Raw{"success": false, "error": "disk full"}, "script generation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script generation failed")
	assert.Contains(t, err.Error(), "disk full")

	_, err = Normalize(Raw{"success": false}, "docs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error")

	// An absent success field is treated as failure too.
	_, err = Normalize(Raw{"count": 3}, "docs")
	require.Error(t, err)
}

func TestNormalizeSanitizesNonEncodableResult(t *testing.T) {
	raw := Raw{
		"success":       true,
		"created_files": []any{"ok.txt", 42, func() {}},
		"base_path":     "/tmp/x",
		"callback":      make(chan int),
	}

	result, err := Normalize(raw, "project scaffolding")
	require.NoError(t, err)
	assert.True(t, result.Sanitized)
	assert.Equal(t, 3, result.Count)
	assert.Len(t, result.CreatedFiles, 3)
	for _, f := range result.CreatedFiles {
		assert.IsType(t, "", f)
	}
	assert.Equal(t, "ok.txt", result.CreatedFiles[0])
	assert.Equal(t, "42", result.CreatedFiles[1])

	// The sanitized record must round-trip through the interchange format.
	data, err := json.Marshal(result)
	require.NoError(t, err)

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, result.Count, back.Count)
	assert.Equal(t, result.CreatedFiles, back.CreatedFiles)
	assert.True(t, back.Sanitized)
}

func TestNormalizeCleanResultIsNotFlagged(t *testing.T) {
	result, err := Normalize(Raw{
		"success":       true,
		"created_files": []string{"a.txt"},
		"base_path":     "/tmp/x",
	}, "configuration files")
	require.NoError(t, err)
	assert.False(t, result.Sanitized)

	_, err = json.Marshal(result)
	require.NoError(t, err)
}

func TestFindIssues(t *testing.T) {
	raw := Raw{
		"fine":    "string value",
		"broken":  func() {},
		"channel": make(chan int),
	}

	issues := findIssues(raw)
	require.Len(t, issues, 2)

	keys := map[string]bool{}
	for _, issue := range issues {
		keys[issue.Key] = true
		assert.NotEmpty(t, issue.Shape.Type)
		assert.False(t, issue.Shape.Encodable)
		assert.NotEmpty(t, issue.Error)
	}
	assert.True(t, keys["broken"])
	assert.True(t, keys["channel"])
}

func TestFindIssuesDescribesNestedValues(t *testing.T) {
	raw := Raw{
		"created_files": []any{"ok.txt", func() {}},
	}

	issues := findIssues(raw)
	require.Len(t, issues, 1)

	shape := issues[0].Shape
	assert.Equal(t, "sequence", shape.Type)
	assert.False(t, shape.Encodable)
	require.Len(t, shape.Items, 2)
	assert.True(t, shape.Items[0].Encodable)
	assert.False(t, shape.Items[1].Encodable)

	// The shape itself must encode for the diagnostic log line.
	assert.NotEqual(t, shape.Type, renderShape(shape))
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{name: "int", value: 5, want: 5},
		{name: "int64", value: int64(9), want: 9},
		{name: "uint", value: uint(3), want: 3},
		{name: "float", value: 2.9, want: 2},
		{name: "numeric string", value: "12", want: 12},
		{name: "float string", value: "3.5", want: 3},
		{name: "json number", value: json.Number("8"), want: 8},
		{name: "garbage string", value: "twelve", wantErr: true},
		{name: "nil", value: nil, wantErr: true},
		{name: "slice", value: []int{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
