package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Stable rule identifiers shared across entities. Domain packages define
// additional identifiers for their cross-field rules.
const (
	RuleRequired          = "required"
	RuleIdentifierFormat  = "identifier_format"
	RuleSerialFormat      = "serial_number_format"
	RuleMonetaryNegative  = "monetary_negative"
	RuleMonetaryPrecision = "monetary_precision"
	RuleMonetaryCeiling   = "monetary_ceiling"
	RuleTextEmpty         = "text_empty"
	RuleMinLength         = "min_length"
	RuleMaxLength         = "max_length"
	RuleValueRange        = "value_range"
	RuleInvalidEnum       = "invalid_enum"
	RuleListItemEmpty     = "list_item_empty"
	RulePatternMismatch   = "pattern_mismatch"
	RuleIPRatingFormat    = "ip_rating_format"
	RuleJurisdiction      = "jurisdiction_format"
	RuleFilenameFormat    = "filename_format"
	RuleFileSize          = "file_size_limit"
)

var (
	identifierRegex   = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
	serialNumberRegex = regexp.MustCompile(`^[A-Z0-9\-]+$`)
	ipRatingRegex     = regexp.MustCompile(`^IP[0-9X][0-9X]$`)
	jurisdictionRegex = regexp.MustCompile(`^[A-Z]{2,3}(-[A-Z]{2,3})?$`)
	filenameRegex     = regexp.MustCompile(`^[A-Za-z0-9\-_\.\s]+$`)
)

// FieldRule represents a named validation rule for a single field. The Name
// doubles as the stable rule identifier reported in violations.
type FieldRule struct {
	Name        string
	Description string
	Validator   func(value interface{}) error
}

// Apply runs the rule against value and records a violation on failure.
func (fr FieldRule) Apply(result *Result, fieldPath string, value interface{}) {
	if err := fr.Validator(value); err != nil {
		result.Add(fieldPath, fr.Name, err.Error())
	}
}

// Common field validation rules
var (
	RequiredRule = FieldRule{
		Name:        RuleRequired,
		Description: "Field is required and cannot be empty",
		Validator: func(value interface{}) error {
			if value == nil {
				return fmt.Errorf("field is required")
			}
			if str, ok := value.(string); ok && strings.TrimSpace(str) == "" {
				return fmt.Errorf("field is required")
			}
			return nil
		},
	}

	// IdentifierRule covers customer, adjuster, manufacturer and owner ids.
	IdentifierRule = FieldRule{
		Name:        RuleIdentifierFormat,
		Description: "Field must contain only alphanumeric characters, hyphens, and underscores",
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("identifier must be a string")
			}
			if !identifierRegex.MatchString(str) {
				return fmt.Errorf("must contain only alphanumeric characters, hyphens, and underscores")
			}
			return nil
		},
	}

	// SerialNumberRule validates an already-normalized (uppercased) serial.
	SerialNumberRule = FieldRule{
		Name:        RuleSerialFormat,
		Description: "Serial number must contain only alphanumeric characters and hyphens",
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("serial number must be a string")
			}
			if !serialNumberRegex.MatchString(str) {
				return fmt.Errorf("must contain only alphanumeric characters and hyphens")
			}
			return nil
		},
	}

	IPRatingRule = FieldRule{
		Name:        RuleIPRatingFormat,
		Description: "IP rating must match IP[0-9X][0-9X]",
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("IP rating must be a string")
			}
			if !ipRatingRegex.MatchString(str) {
				return fmt.Errorf("must match pattern IP[0-9X][0-9X], e.g. IP54 or IPX7")
			}
			return nil
		},
	}

	// JurisdictionRule validates an already-normalized (uppercased) code.
	JurisdictionRule = FieldRule{
		Name:        RuleJurisdiction,
		Description: "Jurisdiction must be a code like US, CA or EU-DE",
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("jurisdiction must be a string")
			}
			if !jurisdictionRegex.MatchString(str) {
				return fmt.Errorf("must be a jurisdiction code like \"US\", \"CA\", \"EU-DE\"")
			}
			return nil
		},
	}

	// FilenameRule rejects path traversal and unsafe characters.
	FilenameRule = FieldRule{
		Name:        RuleFilenameFormat,
		Description: "Filename must be free of path separators and unsafe characters",
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("filename must be a string")
			}
			if !filenameRegex.MatchString(str) {
				return fmt.Errorf("contains invalid characters")
			}
			if strings.Contains(str, "..") || strings.HasPrefix(str, ".") {
				return fmt.Errorf("invalid filename format")
			}
			return nil
		},
	}

	// MonetaryRule validates that a currency amount is non-negative.
	MonetaryRule = FieldRule{
		Name:        RuleMonetaryNegative,
		Description: "Monetary amount must be non-negative",
		Validator: func(value interface{}) error {
			amount, ok := toFloat(value)
			if !ok {
				return fmt.Errorf("must be a number")
			}
			if amount < 0 {
				return fmt.Errorf("monetary amounts must be non-negative")
			}
			return nil
		},
	}

	// MonetaryPrecisionRule rejects amounts with more than two decimal places.
	MonetaryPrecisionRule = FieldRule{
		Name:        RuleMonetaryPrecision,
		Description: "Monetary amount cannot have more than 2 decimal places",
		Validator: func(value interface{}) error {
			amount, ok := toFloat(value)
			if !ok {
				return fmt.Errorf("must be a number")
			}
			if !HasCurrencyPrecision(amount) {
				return fmt.Errorf("cannot have more than 2 decimal places")
			}
			return nil
		},
	}
)

// CreateMonetaryCeilingRule creates a rule rejecting amounts above max.
func CreateMonetaryCeilingRule(max float64) FieldRule {
	return FieldRule{
		Name:        RuleMonetaryCeiling,
		Description: fmt.Sprintf("Monetary amount cannot exceed %.2f", max),
		Validator: func(value interface{}) error {
			amount, ok := toFloat(value)
			if !ok {
				return fmt.Errorf("must be a number")
			}
			if amount > max {
				return fmt.Errorf("exceeds maximum allowed amount of %.2f", max)
			}
			return nil
		},
	}
}

// CreateRangeRule creates a rule for an inclusive numeric range. Violations
// report the supplied value together with the allowed range.
func CreateRangeRule(min, max float64) FieldRule {
	return FieldRule{
		Name:        RuleValueRange,
		Description: fmt.Sprintf("Field must be between %v and %v", min, max),
		Validator: func(value interface{}) error {
			num, ok := toFloat(value)
			if !ok {
				return fmt.Errorf("must be a number")
			}
			if num < min || num > max {
				return fmt.Errorf("value %v outside allowed range [%v, %v]", num, min, max)
			}
			return nil
		},
	}
}

// CreateMinLengthRule creates a rule for minimum trimmed string length.
func CreateMinLengthRule(minLength int) FieldRule {
	return FieldRule{
		Name:        RuleMinLength,
		Description: fmt.Sprintf("Field must be at least %d characters long", minLength),
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("value must be a string")
			}
			if len(strings.TrimSpace(str)) < minLength {
				return fmt.Errorf("must be at least %d characters long", minLength)
			}
			return nil
		},
	}
}

// CreateMaxLengthRule creates a rule for maximum string length.
func CreateMaxLengthRule(maxLength int) FieldRule {
	return FieldRule{
		Name:        RuleMaxLength,
		Description: fmt.Sprintf("Field must be at most %d characters long", maxLength),
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("value must be a string")
			}
			if len(str) > maxLength {
				return fmt.Errorf("must be at most %d characters long", maxLength)
			}
			return nil
		},
	}
}

// CreateRegexRule creates a rule for regex pattern validation.
func CreateRegexRule(pattern, description string) FieldRule {
	regex := regexp.MustCompile(pattern)
	return FieldRule{
		Name:        RulePatternMismatch,
		Description: description,
		Validator: func(value interface{}) error {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("value must be a string")
			}
			if !regex.MatchString(str) {
				return fmt.Errorf("does not match required pattern: %s", description)
			}
			return nil
		},
	}
}

// CheckRequiredText trims value and records a violation when the trimmed
// result is empty. It returns the trimmed text, which is the normalized form
// callers should keep.
func CheckRequiredText(result *Result, fieldPath, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		result.Add(fieldPath, RuleTextEmpty, "cannot be empty")
	}
	return trimmed
}

// CheckStringList records a violation for each empty-after-trim list item.
func CheckStringList(result *Result, fieldPath string, items []string) {
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			result.Add(IndexedPath(fieldPath, i), RuleListItemEmpty, "list items must be non-empty strings")
		}
	}
}

// CheckMonetary applies the full monetary rule set (non-negative, 2-decimal
// precision, ceiling) to a single amount. A ceiling of 0 means no ceiling.
func CheckMonetary(result *Result, fieldPath string, amount, ceiling float64) {
	MonetaryRule.Apply(result, fieldPath, amount)
	MonetaryPrecisionRule.Apply(result, fieldPath, amount)
	if ceiling > 0 {
		CreateMonetaryCeilingRule(ceiling).Apply(result, fieldPath, amount)
	}
}

// NormalizeSerialNumber uppercases and trims a serial number. Validation runs
// against the normalized form, so "hx1-2024-001" and "HX1-2024-001" name the
// same unit.
func NormalizeSerialNumber(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

// NormalizeJurisdiction uppercases and trims a jurisdiction code.
func NormalizeJurisdiction(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// HasCurrencyPrecision reports whether amount has at most two decimal places.
func HasCurrencyPrecision(amount float64) bool {
	scaled := amount * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
