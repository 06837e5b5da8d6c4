package report

import (
	"encoding/json"
	"fmt"
)

const (
	maxDescribeDepth = 3
	maxDescribeItems = 5
	maxSampleLen     = 50
)

// ValueReport describes the shape of a value for serialization diagnostics.
// It covers a closed set of interchange shapes: primitives, ordered
// sequences, and key-value mappings. Anything outside that set is reported
// as non-encodable. Recursion is bounded by maxDescribeDepth.
type ValueReport struct {
	Type      string                 `json:"type"`
	Encodable bool                   `json:"encodable"`
	Sample    string                 `json:"sample,omitempty"`
	Length    int                    `json:"length,omitempty"`
	Items     []ValueReport          `json:"items,omitempty"`
	Keys      map[string]ValueReport `json:"keys,omitempty"`
	Truncated bool                   `json:"truncated,omitempty"`
}

// Describe builds a recursive shape report for value.
func Describe(value any) ValueReport {
	return describe(value, 0)
}

func describe(value any, depth int) ValueReport {
	if depth > maxDescribeDepth {
		return ValueReport{Type: fmt.Sprintf("%T", value), Encodable: encodable(value), Truncated: true}
	}

	switch v := value.(type) {
	case nil:
		return ValueReport{Type: "nil", Encodable: true}
	case bool:
		return ValueReport{Type: "bool", Encodable: true, Sample: fmt.Sprint(v)}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ValueReport{Type: "int", Encodable: true, Sample: fmt.Sprint(v)}
	case float32, float64:
		return ValueReport{Type: "float", Encodable: true, Sample: fmt.Sprint(v)}
	case string:
		return ValueReport{Type: "string", Encodable: true, Sample: truncate(v), Length: len(v)}
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return describeSequence(items, depth)
	case []any:
		return describeSequence(v, depth)
	case Raw:
		return describeMapping(v, depth)
	case map[string]any:
		return describeMapping(v, depth)
	default:
		return ValueReport{
			Type:      fmt.Sprintf("%T", value),
			Encodable: encodable(value),
			Sample:    sample(value),
		}
	}
}

func describeSequence(items []any, depth int) ValueReport {
	r := ValueReport{Type: "sequence", Encodable: true, Length: len(items)}
	limit := len(items)
	if limit > maxDescribeItems {
		limit = maxDescribeItems
		r.Truncated = true
	}
	for _, item := range items[:limit] {
		child := describe(item, depth+1)
		if !child.Encodable {
			r.Encodable = false
		}
		r.Items = append(r.Items, child)
	}
	return r
}

func describeMapping(m map[string]any, depth int) ValueReport {
	r := ValueReport{
		Type:      "mapping",
		Encodable: true,
		Length:    len(m),
		Keys:      make(map[string]ValueReport, len(m)),
	}
	for key, value := range m {
		child := describe(value, depth+1)
		if !child.Encodable {
			r.Encodable = false
		}
		r.Keys[key] = child
	}
	return r
}

func encodable(value any) bool {
	_, err := json.Marshal(value)
	return err == nil
}

// sample renders a bounded string preview of any value.
func sample(value any) string {
	return truncate(fmt.Sprint(value))
}

func truncate(s string) string {
	if len(s) > maxSampleLen {
		return s[:maxSampleLen] + "..."
	}
	return s
}
