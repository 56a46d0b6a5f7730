package validation

import (
	"fmt"
	"strings"
)

// Violation represents a single failed rule with the field it applies to,
// a stable machine-readable rule identifier, and a human-readable message.
type Violation struct {
	FieldPath string `json:"field_path"`
	RuleID    string `json:"rule_id"`
	Message   string `json:"message"`
}

// Result accumulates violations in detection order. A nil-safe zero value is
// not provided; use NewResult. Validation succeeds only when the result is
// empty: every applicable rule runs and every failure is collected, so a
// caller sees the complete picture in one pass.
type Result struct {
	violations []Violation
}

// NewResult creates an empty validation result.
func NewResult() *Result {
	return &Result{}
}

// Add records a violation for the given field path and rule identifier.
func (r *Result) Add(fieldPath, ruleID, message string) {
	r.violations = append(r.violations, Violation{
		FieldPath: fieldPath,
		RuleID:    ruleID,
		Message:   message,
	})
}

// Addf records a violation with a formatted message.
func (r *Result) Addf(fieldPath, ruleID, format string, args ...interface{}) {
	r.Add(fieldPath, ruleID, fmt.Sprintf(format, args...))
}

// Merge appends all violations from other, preserving their order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.violations = append(r.violations, other.violations...)
}

// MergeAt appends all violations from other with their field paths nested
// under prefix (e.g. "terms_and_conditions" + "jurisdiction" becomes
// "terms_and_conditions.jurisdiction").
func (r *Result) MergeAt(prefix string, other *Result) {
	if other == nil {
		return
	}
	for _, v := range other.violations {
		path := prefix
		if v.FieldPath != "" {
			path = prefix + "." + v.FieldPath
		}
		r.violations = append(r.violations, Violation{
			FieldPath: path,
			RuleID:    v.RuleID,
			Message:   v.Message,
		})
	}
}

// OK reports whether no violations were recorded.
func (r *Result) OK() bool {
	return len(r.violations) == 0
}

// Violations returns the recorded violations in detection order.
func (r *Result) Violations() []Violation {
	return r.violations
}

// Err returns a *ValidationError wrapping the recorded violations, or nil
// when the result is empty.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Violations: r.violations}
}

// ValidationError carries the full violation list across an error boundary so
// the caller can surface every failure at once instead of one at a time.
type ValidationError struct {
	Violations []Violation
}

// Error formats all violations into a single message.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s (%s): %s", v.FieldPath, v.RuleID, v.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	ve, ok := err.(*ValidationError)
	return ve, ok
}

// IndexedPath builds a field path for a list element, e.g.
// IndexedPath("supporting_documents", 2) -> "supporting_documents[2]".
func IndexedPath(fieldPath string, index int) string {
	return fmt.Sprintf("%s[%d]", fieldPath, index)
}
