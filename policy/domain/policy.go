package domain

// CoverageType categorizes what a policy covers
type CoverageType string

const (
	CoveragePhysicalDamage       CoverageType = "physical_damage"
	CoverageLiability            CoverageType = "liability"
	CoverageCyberSecurity        CoverageType = "cyber_security"
	CoverageBusinessInterruption CoverageType = "business_interruption"
	CoverageProductRecall        CoverageType = "product_recall"
	CoverageComprehensive        CoverageType = "comprehensive"
)

// IsValid checks if the coverage type is a known value
func (ct CoverageType) IsValid() bool {
	switch ct {
	case CoveragePhysicalDamage, CoverageLiability, CoverageCyberSecurity,
		CoverageBusinessInterruption, CoverageProductRecall, CoverageComprehensive:
		return true
	}
	return false
}

// PolicyStatus represents the lifecycle status of a policy
type PolicyStatus string

const (
	PolicyStatusDraft          PolicyStatus = "draft"
	PolicyStatusActive         PolicyStatus = "active"
	PolicyStatusSuspended      PolicyStatus = "suspended"
	PolicyStatusCancelled      PolicyStatus = "cancelled"
	PolicyStatusExpired        PolicyStatus = "expired"
	PolicyStatusPendingRenewal PolicyStatus = "pending_renewal"
)

// IsValid checks if the policy status is a known value
func (ps PolicyStatus) IsValid() bool {
	switch ps {
	case PolicyStatusDraft, PolicyStatusActive, PolicyStatusSuspended,
		PolicyStatusCancelled, PolicyStatusExpired, PolicyStatusPendingRenewal:
		return true
	}
	return false
}

// PaymentFrequency represents how often premium payments are due
type PaymentFrequency string

const (
	PaymentMonthly    PaymentFrequency = "monthly"
	PaymentQuarterly  PaymentFrequency = "quarterly"
	PaymentSemiAnnual PaymentFrequency = "semi_annual"
	PaymentAnnual     PaymentFrequency = "annual"
)

// IsValid checks if the payment frequency is a known value
func (pf PaymentFrequency) IsValid() bool {
	switch pf {
	case PaymentMonthly, PaymentQuarterly, PaymentSemiAnnual, PaymentAnnual:
		return true
	}
	return false
}

// RiskLevel classifies the underwriting risk of the insured robot
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsValid checks if the risk level is a known value
func (rl RiskLevel) IsValid() bool {
	switch rl {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// CoverageDetails itemizes one coverage type within the policy terms
type CoverageDetails struct {
	CoverageType   CoverageType `json:"coverage_type"`
	CoverageLimit  float64      `json:"coverage_limit"`
	Deductible     float64      `json:"deductible"`
	PremiumPortion float64      `json:"premium_portion"`
	Exclusions     []string     `json:"exclusions,omitempty"`
	Conditions     []string     `json:"conditions,omitempty"`
}

// PolicyTerms holds the full terms and conditions of a policy
type PolicyTerms struct {
	CoverageDetails      []CoverageDetails `json:"coverage_details"`
	PolicyConditions     []string          `json:"policy_conditions,omitempty"`
	Exclusions           []string          `json:"exclusions,omitempty"`
	ClaimProcedures      []string          `json:"claim_procedures,omitempty"`
	CancellationTerms    string            `json:"cancellation_terms"`
	RenewalTerms         string            `json:"renewal_terms"`
	Jurisdiction         string            `json:"jurisdiction"`
	RegulatoryCompliance map[string]string `json:"regulatory_compliance,omitempty"`
}

// Policy represents an insurance policy on the ledger
type Policy struct {
	PolicyID           string           `json:"policy_id"`
	RobotID            string           `json:"robot_id"`
	CustomerID         string           `json:"customer_id"`
	CoverageTypes      []CoverageType   `json:"coverage_types"`
	PremiumAmount      float64          `json:"premium_amount"`
	DeductibleAmount   float64          `json:"deductible_amount"`
	CoverageLimit      float64          `json:"coverage_limit"`
	EffectiveDate      string           `json:"effective_date"`
	ExpirationDate     string           `json:"expiration_date"`
	Status             PolicyStatus     `json:"status"`
	RiskLevel          RiskLevel        `json:"risk_level"`
	PaymentFrequency   PaymentFrequency `json:"payment_frequency"`
	AutoRenewal        bool             `json:"auto_renewal"`
	TermsAndConditions *PolicyTerms     `json:"terms_and_conditions,omitempty"`
	UnderwriterNotes   string           `json:"underwriter_notes,omitempty"`
	CreatedDate        string           `json:"created_date"`
	LastModified       string           `json:"last_modified"`
}

// PolicyCreateRequest represents a request to create a new policy
type PolicyCreateRequest struct {
	RobotID            string           `json:"robot_id"`
	CustomerID         string           `json:"customer_id"`
	CoverageTypes      []CoverageType   `json:"coverage_types"`
	PremiumAmount      float64          `json:"premium_amount"`
	DeductibleAmount   float64          `json:"deductible_amount"`
	CoverageLimit      float64          `json:"coverage_limit"`
	EffectiveDate      string           `json:"effective_date"`
	ExpirationDate     string           `json:"expiration_date"`
	RiskLevel          RiskLevel        `json:"risk_level"`
	PaymentFrequency   PaymentFrequency `json:"payment_frequency,omitempty"`
	AutoRenewal        bool             `json:"auto_renewal,omitempty"`
	TermsAndConditions *PolicyTerms     `json:"terms_and_conditions,omitempty"`
	UnderwriterNotes   string           `json:"underwriter_notes,omitempty"`
}

// PolicyUpdateRequest represents a request to update an existing policy.
// Nil fields are left unchanged.
type PolicyUpdateRequest struct {
	PolicyID           string            `json:"policy_id"`
	Status             *PolicyStatus     `json:"status,omitempty"`
	PremiumAmount      *float64          `json:"premium_amount,omitempty"`
	DeductibleAmount   *float64          `json:"deductible_amount,omitempty"`
	CoverageLimit      *float64          `json:"coverage_limit,omitempty"`
	PaymentFrequency   *PaymentFrequency `json:"payment_frequency,omitempty"`
	TermsAndConditions *PolicyTerms      `json:"terms_and_conditions,omitempty"`
	UnderwriterNotes   *string           `json:"underwriter_notes,omitempty"`
	AutoRenewal        *bool             `json:"auto_renewal,omitempty"`
}
