package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierRule(t *testing.T) {
	validIDs := []string{"CUST-001", "adj_42", "OWNER-2024-x"}
	for _, id := range validIDs {
		assert.NoError(t, IdentifierRule.Validator(id), "Valid identifier should pass: %s", id)
	}

	invalidIDs := []string{"cust 001", "adj@42", "owner/1", ""}
	for _, id := range invalidIDs {
		assert.Error(t, IdentifierRule.Validator(id), "Invalid identifier should fail: %s", id)
	}
}

func TestSerialNumberNormalizationRoundTrip(t *testing.T) {
	// Mixed-case input names the same unit as its normalized form.
	normalized := NormalizeSerialNumber("hx1-2024-001")
	assert.Equal(t, "HX1-2024-001", normalized)
	assert.NoError(t, SerialNumberRule.Validator(normalized))

	again := NormalizeSerialNumber(normalized)
	assert.Equal(t, normalized, again, "Normalization should be idempotent")
}

func TestSerialNumberRuleRejectsUnsafeCharacters(t *testing.T) {
	invalid := []string{"HX1_2024", "HX1 2024", "HX1/2024", ""}
	for _, serial := range invalid {
		assert.Error(t, SerialNumberRule.Validator(serial), "Invalid serial should fail: %s", serial)
	}
}

func TestIPRatingRule(t *testing.T) {
	valid := []string{"IP54", "IPX7", "IP6X", "IPXX"}
	for _, rating := range valid {
		assert.NoError(t, IPRatingRule.Validator(rating), "Valid IP rating should pass: %s", rating)
	}

	invalid := []string{"IP5", "ip54", "IP545", "54"}
	for _, rating := range invalid {
		assert.Error(t, IPRatingRule.Validator(rating), "Invalid IP rating should fail: %s", rating)
	}
}

func TestJurisdictionRule(t *testing.T) {
	valid := []string{"US", "CA", "EU-DE", "USA", "EUR-DEU"}
	for _, code := range valid {
		assert.NoError(t, JurisdictionRule.Validator(code), "Valid jurisdiction should pass: %s", code)
	}

	invalid := []string{"us", "U", "EU-", "EU_DE", "ABCD"}
	for _, code := range invalid {
		assert.Error(t, JurisdictionRule.Validator(code), "Invalid jurisdiction should fail: %s", code)
	}

	assert.Equal(t, "EU-DE", NormalizeJurisdiction("  eu-de "))
}

func TestFilenameRuleRejectsPathTraversal(t *testing.T) {
	valid := []string{"incident report.pdf", "photo_01.jpg", "est-2024.xlsx"}
	for _, name := range valid {
		assert.NoError(t, FilenameRule.Validator(name), "Valid filename should pass: %s", name)
	}

	invalid := []string{"../etc/passwd", ".hidden", "a/b.txt", "report?.pdf"}
	for _, name := range invalid {
		assert.Error(t, FilenameRule.Validator(name), "Invalid filename should fail: %s", name)
	}
}

func TestMonetaryRules(t *testing.T) {
	assert.NoError(t, MonetaryRule.Validator(100.50))
	assert.Error(t, MonetaryRule.Validator(-0.01), "Negative amount should fail")

	assert.NoError(t, MonetaryPrecisionRule.Validator(4500.00))
	assert.NoError(t, MonetaryPrecisionRule.Validator(99.99))
	assert.Error(t, MonetaryPrecisionRule.Validator(10.123), "Three decimal places should fail")

	ceiling := CreateMonetaryCeilingRule(10000000)
	assert.NoError(t, ceiling.Validator(10000000.00))
	assert.Error(t, ceiling.Validator(10000000.01), "Amount above ceiling should fail")
}

func TestCheckMonetaryCollectsEveryFailure(t *testing.T) {
	result := NewResult()
	CheckMonetary(result, "estimated_damage_amount", 10000000.123, 10000000)

	violations := result.Violations()
	assert.Len(t, violations, 2, "Precision and ceiling failures should both be reported")
	assert.Equal(t, RuleMonetaryPrecision, violations[0].RuleID)
	assert.Equal(t, RuleMonetaryCeiling, violations[1].RuleID)
}

func TestCreateRangeRule(t *testing.T) {
	rule := CreateRangeRule(0, 100)

	assert.NoError(t, rule.Validator(0.0))
	assert.NoError(t, rule.Validator(100.0))
	assert.NoError(t, rule.Validator(55))
	assert.Error(t, rule.Validator(-0.5), "Value below range should fail")
	assert.Error(t, rule.Validator(100.5), "Value above range should fail")
	assert.Error(t, rule.Validator("fast"), "Non-numeric value should fail")
}

func TestLengthRules(t *testing.T) {
	minRule := CreateMinLengthRule(10)
	assert.NoError(t, minRule.Validator("a note that is long enough"))
	assert.Error(t, minRule.Validator("short"), "Short note should fail")
	assert.Error(t, minRule.Validator("         x         "), "Length is measured after trimming")

	maxRule := CreateMaxLengthRule(5)
	assert.NoError(t, maxRule.Validator("12345"))
	assert.Error(t, maxRule.Validator("123456"))
}

func TestCheckRequiredTextTrimsAndReports(t *testing.T) {
	result := NewResult()
	trimmed := CheckRequiredText(result, "incident_description", "  damaged gripper  ")
	assert.Equal(t, "damaged gripper", trimmed)
	assert.True(t, result.OK())

	CheckRequiredText(result, "model", "   ")
	assert.False(t, result.OK())
	assert.Equal(t, RuleTextEmpty, result.Violations()[0].RuleID)
}

func TestCheckStringListFlagsEmptyItems(t *testing.T) {
	result := NewResult()
	CheckStringList(result, "certifications", []string{"ISO 10218", "  ", "IEC 61508"})

	violations := result.Violations()
	assert.Len(t, violations, 1)
	assert.Equal(t, "certifications[1]", violations[0].FieldPath)
	assert.Equal(t, RuleListItemEmpty, violations[0].RuleID)
}

func TestFieldRuleApplyRecordsRuleName(t *testing.T) {
	result := NewResult()
	SerialNumberRule.Apply(result, "serial_number", "bad serial")

	violations := result.Violations()
	assert.Len(t, violations, 1)
	assert.Equal(t, RuleSerialFormat, violations[0].RuleID)
	assert.Equal(t, "serial_number", violations[0].FieldPath)
}
