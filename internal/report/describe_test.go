package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribePrimitives(t *testing.T) {
	r := Describe("hello")
	assert.Equal(t, "string", r.Type)
	assert.True(t, r.Encodable)
	assert.Equal(t, "hello", r.Sample)
	assert.Equal(t, 5, r.Length)

	r = Describe(42)
	assert.Equal(t, "int", r.Type)
	assert.True(t, r.Encodable)

	r = Describe(3.14)
	assert.Equal(t, "float", r.Type)

	r = Describe(nil)
	assert.Equal(t, "nil", r.Type)
	assert.True(t, r.Encodable)
}

func TestDescribeSequence(t *testing.T) {
	r := Describe([]any{"a", 1, true})
	assert.Equal(t, "sequence", r.Type)
	assert.True(t, r.Encodable)
	assert.Equal(t, 3, r.Length)
	assert.Len(t, r.Items, 3)

	// A non-encodable element poisons the sequence report.
	r = Describe([]any{"a", func() {}})
	assert.False(t, r.Encodable)

	// Long sequences are sampled, not fully expanded.
	long := make([]any, 20)
	for i := range long {
		long[i] = i
	}
	r = Describe(long)
	assert.True(t, r.Truncated)
	assert.Len(t, r.Items, maxDescribeItems)
	assert.Equal(t, 20, r.Length)
}

func TestDescribeMapping(t *testing.T) {
	r := Describe(Raw{
		"files": []string{"a.txt"},
		"bad":   make(chan int),
	})
	assert.Equal(t, "mapping", r.Type)
	assert.False(t, r.Encodable)
	assert.True(t, r.Keys["files"].Encodable)
	assert.False(t, r.Keys["bad"].Encodable)
	assert.Contains(t, r.Keys["bad"].Type, "chan")
}

func TestDescribeDepthBound(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{
					"d": map[string]any{"e": 1},
				},
			},
		},
	}
	r := Describe(nested)

	depth := 0
	for cur := r; len(cur.Keys) > 0; depth++ {
		var next ValueReport
		for _, v := range cur.Keys {
			next = v
		}
		cur = next
		if cur.Truncated {
			break
		}
	}
	assert.LessOrEqual(t, depth, maxDescribeDepth+1)
}

func TestSampleTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	s := sample(long)
	assert.Len(t, s, maxSampleLen+3)
	assert.True(t, strings.HasSuffix(s, "..."))
}
