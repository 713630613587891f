package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/unify/include"
)

// JSONFormatter formats include graphs as JSON.
type JSONFormatter struct{}

// Format converts the include graph to JSON format.
// The opts parameter is accepted for interface compatibility but not used.
func (f *JSONFormatter) Format(g include.Graph, opts FormatOptions) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
