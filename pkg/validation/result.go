package validation

import "fmt"

// PropertyResult records the outcome of checking one testable property
// against a generated artifact.
type PropertyResult struct {
	Name      string `json:"name"`
	Satisfied bool   `json:"satisfied"`
	Details   string `json:"details"`
}

func newResult(name string, satisfied bool, format string, args ...any) PropertyResult {
	return PropertyResult{Name: name, Satisfied: satisfied, Details: fmt.Sprintf(format, args...)}
}
