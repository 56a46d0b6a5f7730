package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultStartsEmpty(t *testing.T) {
	result := NewResult()

	assert.True(t, result.OK(), "New result should have no violations")
	assert.NoError(t, result.Err(), "Empty result should not produce an error")
	assert.Empty(t, result.Violations())
}

func TestResultPreservesDetectionOrder(t *testing.T) {
	result := NewResult()
	result.Add("serial_number", RuleSerialFormat, "bad serial")
	result.Add("owner_id", RuleIdentifierFormat, "bad owner")
	result.Addf("premium_amount", RuleMonetaryPrecision, "too many decimals: %v", 10.123)

	violations := result.Violations()
	assert.Len(t, violations, 3)
	assert.Equal(t, "serial_number", violations[0].FieldPath)
	assert.Equal(t, "owner_id", violations[1].FieldPath)
	assert.Equal(t, "premium_amount", violations[2].FieldPath)
	assert.Equal(t, "too many decimals: 10.123", violations[2].Message)
}

func TestResultMergeAppendsInOrder(t *testing.T) {
	first := NewResult()
	first.Add("a", RuleRequired, "missing")

	second := NewResult()
	second.Add("b", RuleRequired, "missing")
	second.Add("c", RuleRequired, "missing")

	first.Merge(second)
	first.Merge(nil)

	violations := first.Violations()
	assert.Len(t, violations, 3)
	assert.Equal(t, "a", violations[0].FieldPath)
	assert.Equal(t, "b", violations[1].FieldPath)
	assert.Equal(t, "c", violations[2].FieldPath)
}

func TestResultMergeAtPrefixesFieldPaths(t *testing.T) {
	nested := NewResult()
	nested.Add("jurisdiction", RuleJurisdiction, "bad code")
	nested.Add("coverage_details[1].deductible", RuleMonetaryNegative, "negative")

	outer := NewResult()
	outer.MergeAt("terms_and_conditions", nested)

	violations := outer.Violations()
	assert.Len(t, violations, 2)
	assert.Equal(t, "terms_and_conditions.jurisdiction", violations[0].FieldPath)
	assert.Equal(t, "terms_and_conditions.coverage_details[1].deductible", violations[1].FieldPath)
	assert.Equal(t, RuleJurisdiction, violations[0].RuleID)
}

func TestValidationErrorCarriesAllViolations(t *testing.T) {
	result := NewResult()
	result.Add("deductible_amount", "deductible_ratio", "too high")
	result.Add("premium_amount", "premium_floor", "too low")

	err := result.Err()
	assert.Error(t, err)

	ve, ok := AsValidationError(err)
	assert.True(t, ok, "Err should return a *ValidationError")
	assert.Len(t, ve.Violations, 2)
	assert.Contains(t, err.Error(), "deductible_amount (deductible_ratio): too high")
	assert.Contains(t, err.Error(), "premium_amount (premium_floor): too low")
}

func TestIndexedPath(t *testing.T) {
	assert.Equal(t, "supporting_documents[0]", IndexedPath("supporting_documents", 0))
	assert.Equal(t, "coverage_details[12]", IndexedPath("coverage_details", 12))
}
