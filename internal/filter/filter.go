// Package filter provides JQ-compatible filtering for JSON output.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// Apply applies a JQ filter expression to the input data. Structs and
// time.Time values are first converted to their JSON shape so the
// expression sees the same fields the unfiltered output would have.
func Apply(data any, expression string) (any, error) {
	if expression == "" {
		return data, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	input, err := normalize(data)
	if err != nil {
		return nil, err
	}

	iter := query.Run(input)

	var results []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("filter error: %w", err)
		}
		results = append(results, v)
	}

	// Return single result unwrapped, multiple as array
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

// normalize turns v into the map/slice/scalar tree gojq operates on.
func normalize(v any) (any, error) {
	switch v.(type) {
	case nil, bool, string, float64, int, map[string]any, []any:
		return v, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode filter input: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode filter input: %w", err)
	}
	return out, nil
}
