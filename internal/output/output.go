// Package output renders API records for the terminal, as ASCII tables or
// JSON.
package output

import (
	"encoding/json"
	"fmt"
)

// Format selects the rendering style.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a --output flag value.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// JSON renders any value as indented JSON.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
