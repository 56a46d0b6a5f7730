package domain

import (
	"time"

	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/utils"
	"github.com/robosure-platform/fabric-chaincode/shared/validation"
)

// Rule identifiers for policy cross-field rules
const (
	RuleDuplicateCoverage      = "duplicate_coverage_type"
	RuleComprehensiveExclusive = "comprehensive_exclusive"
	RuleDateFormat             = "date_format"
	RuleDateOrder              = "date_order"
	RuleTermLength             = "policy_term_length"
	RuleDeductibleRatio        = "deductible_ratio"
	RulePremiumRatio           = "premium_ratio"
	RulePremiumFloor           = "premium_floor"
)

// Rules holds the tunable validation configuration for policies. Values are
// fixed at construction; a Validator never mutates them.
type Rules struct {
	MinTermDays        int
	MaxTermDays        int
	MaxDeductibleRatio float64
	MaxPremiumRatio    float64
	PremiumFloors      map[RiskLevel]float64
}

// DefaultRules returns the standard policy validation configuration.
func DefaultRules() Rules {
	return Rules{
		MinTermDays:        config.MinPolicyTermDays,
		MaxTermDays:        config.MaxPolicyTermDays,
		MaxDeductibleRatio: config.MaxDeductibleRatio,
		MaxPremiumRatio:    config.MaxPremiumRatio,
		PremiumFloors: map[RiskLevel]float64{
			RiskLow:      100,
			RiskMedium:   250,
			RiskHigh:     500,
			RiskCritical: 1000,
		},
	}
}

// Validator validates policy creation and update requests.
type Validator struct {
	rules Rules
}

// NewValidator creates a policy validator with the given rule configuration.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// ValidateCreate validates a policy creation request, normalizing trimmed
// text and the jurisdiction code in place. Cross-field rules run only once
// every referenced field passes its own checks.
func (v *Validator) ValidateCreate(request *PolicyCreateRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "robot_id", request.RobotID)
	v.checkIdentifier(result, "customer_id", request.CustomerID)

	v.checkCoverageTypeSet(result, "coverage_types", request.CoverageTypes)

	v.checkPositiveAmount(result, "premium_amount", request.PremiumAmount)
	validation.CheckMonetary(result, "deductible_amount", request.DeductibleAmount, 0)
	v.checkPositiveAmount(result, "coverage_limit", request.CoverageLimit)

	effective, effectiveOK := v.checkDate(result, "effective_date", request.EffectiveDate)
	expiration, expirationOK := v.checkDate(result, "expiration_date", request.ExpirationDate)

	if !request.RiskLevel.IsValid() {
		result.Addf("risk_level", validation.RuleInvalidEnum, "unknown risk level %q", request.RiskLevel)
	}

	if request.PaymentFrequency == "" {
		request.PaymentFrequency = PaymentAnnual
	} else if !request.PaymentFrequency.IsValid() {
		result.Addf("payment_frequency", validation.RuleInvalidEnum, "unknown payment frequency %q", request.PaymentFrequency)
	}

	if request.UnderwriterNotes != "" {
		validation.CreateMaxLengthRule(config.MaxNoteLength).Apply(result, "underwriter_notes", request.UnderwriterNotes)
	}

	// Terms are part of every policy at creation; updates may omit them to
	// leave the stored terms untouched.
	if request.TermsAndConditions == nil {
		validation.RequiredRule.Apply(result, "terms_and_conditions", nil)
	} else {
		result.MergeAt("terms_and_conditions", v.ValidateTerms(request.TermsAndConditions))
	}

	if result.OK() && effectiveOK && expirationOK {
		result.Merge(v.validateAmountRules(request.PremiumAmount, request.DeductibleAmount, request.CoverageLimit, request.RiskLevel))
		result.Merge(v.validateTermDates(effective, expiration))
	}

	return result
}

// ValidateUpdate validates an update request. Only supplied fields are
// validated here; callers re-run ValidatePolicy against the merged policy so
// cross-field rules see the complete value.
func (v *Validator) ValidateUpdate(request *PolicyUpdateRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "policy_id", request.PolicyID)

	if request.Status != nil && !request.Status.IsValid() {
		result.Addf("status", validation.RuleInvalidEnum, "unknown policy status %q", *request.Status)
	}
	if request.PremiumAmount != nil {
		v.checkPositiveAmount(result, "premium_amount", *request.PremiumAmount)
	}
	if request.DeductibleAmount != nil {
		validation.CheckMonetary(result, "deductible_amount", *request.DeductibleAmount, 0)
	}
	if request.CoverageLimit != nil {
		v.checkPositiveAmount(result, "coverage_limit", *request.CoverageLimit)
	}
	if request.PaymentFrequency != nil && !request.PaymentFrequency.IsValid() {
		result.Addf("payment_frequency", validation.RuleInvalidEnum, "unknown payment frequency %q", *request.PaymentFrequency)
	}
	if request.UnderwriterNotes != nil {
		notes := validation.CheckRequiredText(result, "underwriter_notes", *request.UnderwriterNotes)
		validation.CreateMaxLengthRule(config.MaxNoteLength).Apply(result, "underwriter_notes", notes)
		*request.UnderwriterNotes = notes
	}
	if request.TermsAndConditions != nil {
		result.MergeAt("terms_and_conditions", v.ValidateTerms(request.TermsAndConditions))
	}

	return result
}

// ValidatePolicy runs the entity-wide cross-field rules against a complete
// policy, typically after an update has been merged into the stored value.
func (v *Validator) ValidatePolicy(policy *Policy) *validation.Result {
	result := validation.NewResult()

	effective, effectiveOK := v.checkDate(result, "effective_date", policy.EffectiveDate)
	expiration, expirationOK := v.checkDate(result, "expiration_date", policy.ExpirationDate)

	result.Merge(v.validateAmountRules(policy.PremiumAmount, policy.DeductibleAmount, policy.CoverageLimit, policy.RiskLevel))
	if effectiveOK && expirationOK {
		result.Merge(v.validateTermDates(effective, expiration))
	}

	return result
}

// ValidateTerms validates a policy terms value. Field paths in the returned
// result are relative to the terms object. The jurisdiction code is
// normalized in place.
func (v *Validator) ValidateTerms(terms *PolicyTerms) *validation.Result {
	result := validation.NewResult()

	if len(terms.CoverageDetails) == 0 {
		result.Add("coverage_details", validation.RuleRequired, "at least one coverage detail entry is required")
	}

	seen := make(map[CoverageType]bool)
	for i, detail := range terms.CoverageDetails {
		entryPath := validation.IndexedPath("coverage_details", i)

		if !detail.CoverageType.IsValid() {
			result.Addf(entryPath+".coverage_type", validation.RuleInvalidEnum, "unknown coverage type %q", detail.CoverageType)
		} else if seen[detail.CoverageType] {
			result.Addf(entryPath+".coverage_type", RuleDuplicateCoverage, "duplicate coverage type %q", detail.CoverageType)
		}
		seen[detail.CoverageType] = true

		if detail.CoverageType == CoverageComprehensive && len(terms.CoverageDetails) > 1 {
			result.Add(entryPath+".coverage_type", RuleComprehensiveExclusive,
				"comprehensive coverage cannot be combined with other coverage types")
		}

		v.checkPositiveAmount(result, entryPath+".coverage_limit", detail.CoverageLimit)
		validation.CheckMonetary(result, entryPath+".deductible", detail.Deductible, 0)
		v.checkPositiveAmount(result, entryPath+".premium_portion", detail.PremiumPortion)

		validation.CheckStringList(result, entryPath+".exclusions", detail.Exclusions)
		validation.CheckStringList(result, entryPath+".conditions", detail.Conditions)
	}

	validation.CheckStringList(result, "policy_conditions", terms.PolicyConditions)
	validation.CheckStringList(result, "exclusions", terms.Exclusions)
	validation.CheckStringList(result, "claim_procedures", terms.ClaimProcedures)

	validation.CreateMinLengthRule(config.MinNoteLength).Apply(result, "cancellation_terms", terms.CancellationTerms)
	validation.CreateMinLengthRule(config.MinNoteLength).Apply(result, "renewal_terms", terms.RenewalTerms)

	terms.Jurisdiction = validation.NormalizeJurisdiction(terms.Jurisdiction)
	validation.JurisdictionRule.Apply(result, "jurisdiction", terms.Jurisdiction)

	return result
}

// checkCoverageTypeSet validates the top-level coverage type list: non-empty,
// known values, no duplicates, and comprehensive stands alone.
func (v *Validator) checkCoverageTypeSet(result *validation.Result, fieldPath string, types []CoverageType) {
	if len(types) == 0 {
		result.Add(fieldPath, validation.RuleRequired, "at least one coverage type is required")
		return
	}

	seen := make(map[CoverageType]bool)
	for i, ct := range types {
		entryPath := validation.IndexedPath(fieldPath, i)
		if !ct.IsValid() {
			result.Addf(entryPath, validation.RuleInvalidEnum, "unknown coverage type %q", ct)
			continue
		}
		if seen[ct] {
			result.Addf(entryPath, RuleDuplicateCoverage, "duplicate coverage type %q", ct)
		}
		seen[ct] = true

		if ct == CoverageComprehensive && len(types) > 1 {
			result.Add(entryPath, RuleComprehensiveExclusive,
				"comprehensive coverage cannot be combined with other coverage types")
		}
	}
}

func (v *Validator) validateAmountRules(premium, deductible, limit float64, risk RiskLevel) *validation.Result {
	result := validation.NewResult()

	if deductible > v.rules.MaxDeductibleRatio*limit {
		result.Addf("deductible_amount", RuleDeductibleRatio,
			"deductible %.2f exceeds %.0f%% of coverage limit %.2f",
			deductible, v.rules.MaxDeductibleRatio*100, limit)
	}
	if premium > v.rules.MaxPremiumRatio*limit {
		result.Addf("premium_amount", RulePremiumRatio,
			"premium %.2f exceeds %.0f%% of coverage limit %.2f",
			premium, v.rules.MaxPremiumRatio*100, limit)
	}
	if floor, ok := v.rules.PremiumFloors[risk]; ok && premium < floor {
		result.Addf("premium_amount", RulePremiumFloor,
			"premium %.2f is below the %.2f minimum for %s risk", premium, floor, risk)
	}

	return result
}

func (v *Validator) validateTermDates(effective, expiration time.Time) *validation.Result {
	result := validation.NewResult()

	if !expiration.After(effective) {
		result.Add("expiration_date", RuleDateOrder, "expiration date must be after effective date")
		return result
	}

	days := utils.DaysBetween(effective, expiration)
	if days < v.rules.MinTermDays || days > v.rules.MaxTermDays {
		result.Addf("expiration_date", RuleTermLength,
			"policy term of %d days outside allowed range [%d, %d]", days, v.rules.MinTermDays, v.rules.MaxTermDays)
	}

	return result
}

func (v *Validator) checkDate(result *validation.Result, fieldPath, value string) (time.Time, bool) {
	if value == "" {
		result.Add(fieldPath, validation.RuleRequired, fieldPath+" is required")
		return time.Time{}, false
	}
	parsed, err := time.Parse(utils.DateFormat, value)
	if err != nil {
		result.Addf(fieldPath, RuleDateFormat, "must be a date in %s format", utils.DateFormat)
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) checkPositiveAmount(result *validation.Result, fieldPath string, amount float64) {
	if amount <= 0 {
		result.Addf(fieldPath, validation.RuleValueRange, "must be greater than 0, got %v", amount)
	}
	validation.MonetaryPrecisionRule.Apply(result, fieldPath, amount)
}

func (v *Validator) checkIdentifier(result *validation.Result, fieldPath, value string) {
	if value == "" {
		result.Add(fieldPath, validation.RuleRequired, fieldPath+" is required")
		return
	}
	validation.IdentifierRule.Apply(result, fieldPath, value)
	validation.CreateMaxLengthRule(config.MaxIdentifierLength).Apply(result, fieldPath, value)
}
