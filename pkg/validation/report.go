package validation

import (
	"fmt"
	"strings"
)

// Report is the aggregate outcome of running every applicable property
// check against a single generation attempt.
type Report struct {
	Passed  bool             `json:"passed"`
	Results []PropertyResult `json:"results"`
}

// NewReport returns an empty, passing report.
func NewReport() *Report {
	return &Report{Passed: true}
}

func (r *Report) add(res PropertyResult) {
	if !res.Satisfied {
		r.Passed = false
	}
	r.Results = append(r.Results, res)
}

// Failures returns every unsatisfied property result, in check order.
func (r *Report) Failures() []PropertyResult {
	var out []PropertyResult
	for _, res := range r.Results {
		if !res.Satisfied {
			out = append(out, res)
		}
	}
	return out
}

// Summary renders a human-readable report, one line per property.
func Summary(r *Report) string {
	var b strings.Builder

	status := "PASSED"
	if !r.Passed {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "=== Validation Report: %s ===\n", status)

	for _, res := range r.Results {
		mark := "PASS"
		if !res.Satisfied {
			mark = "FAIL"
		}
		fmt.Fprintf(&b, "  [%s] %-18s %s\n", mark, res.Name, res.Details)
	}

	return b.String()
}
