package domain

// IncidentType categorizes what happened to the robot
type IncidentType string

const (
	IncidentPhysicalDamage      IncidentType = "physical_damage"
	IncidentMalfunction         IncidentType = "malfunction"
	IncidentThirdPartyLiability IncidentType = "third_party_liability"
	IncidentCyberSecurityBreach IncidentType = "cyber_security_breach"
	IncidentTheft               IncidentType = "theft"
	IncidentFireDamage          IncidentType = "fire_damage"
	IncidentWaterDamage         IncidentType = "water_damage"
	IncidentElectricalDamage    IncidentType = "electrical_damage"
	IncidentSoftwareFailure     IncidentType = "software_failure"
	IncidentOperatorError       IncidentType = "operator_error"
)

// IsValid checks if the incident type is a known value
func (it IncidentType) IsValid() bool {
	switch it {
	case IncidentPhysicalDamage, IncidentMalfunction, IncidentThirdPartyLiability,
		IncidentCyberSecurityBreach, IncidentTheft, IncidentFireDamage,
		IncidentWaterDamage, IncidentElectricalDamage, IncidentSoftwareFailure,
		IncidentOperatorError:
		return true
	}
	return false
}

// ClaimStatus represents the workflow status of a claim
type ClaimStatus string

const (
	ClaimStatusDraft                ClaimStatus = "draft"
	ClaimStatusSubmitted            ClaimStatus = "submitted"
	ClaimStatusUnderReview          ClaimStatus = "under_review"
	ClaimStatusInvestigating        ClaimStatus = "investigating"
	ClaimStatusPendingDocumentation ClaimStatus = "pending_documentation"
	ClaimStatusApproved             ClaimStatus = "approved"
	ClaimStatusDenied               ClaimStatus = "denied"
	ClaimStatusSettled              ClaimStatus = "settled"
	ClaimStatusClosed               ClaimStatus = "closed"
	ClaimStatusReopened             ClaimStatus = "reopened"
)

// IsValid checks if the claim status is a known value
func (cs ClaimStatus) IsValid() bool {
	switch cs {
	case ClaimStatusDraft, ClaimStatusSubmitted, ClaimStatusUnderReview,
		ClaimStatusInvestigating, ClaimStatusPendingDocumentation,
		ClaimStatusApproved, ClaimStatusDenied, ClaimStatusSettled,
		ClaimStatusClosed, ClaimStatusReopened:
		return true
	}
	return false
}

// ClaimPriority represents the processing priority of a claim
type ClaimPriority string

const (
	PriorityLow    ClaimPriority = "low"
	PriorityMedium ClaimPriority = "medium"
	PriorityHigh   ClaimPriority = "high"
	PriorityUrgent ClaimPriority = "urgent"
)

// IsValid checks if the claim priority is a known value
func (cp ClaimPriority) IsValid() bool {
	switch cp {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// DamageAssessment classifies the severity of the damage
type DamageAssessment string

const (
	DamageMinor     DamageAssessment = "minor"
	DamageModerate  DamageAssessment = "moderate"
	DamageMajor     DamageAssessment = "major"
	DamageTotalLoss DamageAssessment = "total_loss"
)

// IsValid checks if the damage assessment is a known value
func (da DamageAssessment) IsValid() bool {
	switch da {
	case DamageMinor, DamageModerate, DamageMajor, DamageTotalLoss:
		return true
	}
	return false
}

// DocumentType categorizes a supporting document
type DocumentType string

const (
	DocumentIncidentReport   DocumentType = "incident_report"
	DocumentPhotos           DocumentType = "photos"
	DocumentDiagnosticData   DocumentType = "diagnostic_data"
	DocumentRepairEstimate   DocumentType = "repair_estimate"
	DocumentPoliceReport     DocumentType = "police_report"
	DocumentWitnessStatement DocumentType = "witness_statement"
	DocumentMedicalReport    DocumentType = "medical_report"
	DocumentInvoice          DocumentType = "invoice"
	DocumentReceipt          DocumentType = "receipt"
	DocumentOther            DocumentType = "other"
)

// IsValid checks if the document type is a known value
func (dt DocumentType) IsValid() bool {
	switch dt {
	case DocumentIncidentReport, DocumentPhotos, DocumentDiagnosticData,
		DocumentRepairEstimate, DocumentPoliceReport, DocumentWitnessStatement,
		DocumentMedicalReport, DocumentInvoice, DocumentReceipt, DocumentOther:
		return true
	}
	return false
}

// AdjusterNote is a timestamped note added by an adjuster
type AdjusterNote struct {
	Timestamp  string `json:"timestamp"`
	AdjusterID string `json:"adjuster_id"`
	Note       string `json:"note"`
	NoteType   string `json:"note_type,omitempty"`
}

// SupportingDocument is a reference to an uploaded claim document
type SupportingDocument struct {
	DocumentID   string       `json:"document_id"`
	DocumentType DocumentType `json:"document_type"`
	Filename     string       `json:"filename"`
	FileSize     int64        `json:"file_size"`
	UploadDate   string       `json:"upload_date"`
	UploadedBy   string       `json:"uploaded_by"`
	Description  string       `json:"description,omitempty"`
}

// ThirdPartyDetails describes another party involved in the incident
type ThirdPartyDetails struct {
	PartyType          string   `json:"party_type"`
	ContactName        string   `json:"contact_name,omitempty"`
	ContactPhone       string   `json:"contact_phone,omitempty"`
	ContactEmail       string   `json:"contact_email,omitempty"`
	InsuranceCompany   string   `json:"insurance_company,omitempty"`
	PolicyNumber       string   `json:"policy_number,omitempty"`
	DamageDescription  string   `json:"damage_description,omitempty"`
	EstimatedLiability *float64 `json:"estimated_liability,omitempty"`
}

// ClaimAssessment records an adjuster's damage assessment
type ClaimAssessment struct {
	AssessmentID      string           `json:"assessment_id"`
	AdjusterID        string           `json:"adjuster_id"`
	DamageAssessment  DamageAssessment `json:"damage_assessment"`
	AssessmentNotes   string           `json:"assessment_notes"`
	RepairEstimate    *float64         `json:"repair_estimate,omitempty"`
	ReplacementCost   *float64         `json:"replacement_cost,omitempty"`
	RecommendedAction string           `json:"recommended_action"`
	AssessedDate      string           `json:"assessed_date"`
}

// Claim represents an insurance claim on the ledger
type Claim struct {
	ClaimID               string               `json:"claim_id"`
	PolicyID              string               `json:"policy_id"`
	RobotID               string               `json:"robot_id"`
	CustomerID            string               `json:"customer_id"`
	IncidentType          IncidentType         `json:"incident_type"`
	IncidentDate          string               `json:"incident_date"`
	IncidentDescription   string               `json:"incident_description"`
	IncidentLocation      string               `json:"incident_location,omitempty"`
	Status                ClaimStatus          `json:"status"`
	Priority              ClaimPriority        `json:"priority"`
	DamageAssessment      *DamageAssessment    `json:"damage_assessment,omitempty"`
	EstimatedDamageAmount *float64             `json:"estimated_damage_amount,omitempty"`
	SettlementAmount      *float64             `json:"settlement_amount,omitempty"`
	DeductibleAmount      *float64             `json:"deductible_amount,omitempty"`
	AdjusterID            string               `json:"adjuster_id,omitempty"`
	AdjusterNotes         []AdjusterNote       `json:"adjuster_notes,omitempty"`
	SupportingDocuments   []SupportingDocument `json:"supporting_documents,omitempty"`
	ThirdPartyInvolved    bool                 `json:"third_party_involved"`
	ThirdPartyDetails     *ThirdPartyDetails   `json:"third_party_details,omitempty"`
	ReportedDate          string               `json:"reported_date"`
	CreatedDate           string               `json:"created_date"`
	LastModified          string               `json:"last_modified"`
}

// ClaimCreateRequest represents a request to file a new claim
type ClaimCreateRequest struct {
	PolicyID              string               `json:"policy_id"`
	RobotID               string               `json:"robot_id"`
	CustomerID            string               `json:"customer_id"`
	IncidentType          IncidentType         `json:"incident_type"`
	IncidentDate          string               `json:"incident_date"`
	IncidentDescription   string               `json:"incident_description"`
	IncidentLocation      string               `json:"incident_location,omitempty"`
	Priority              ClaimPriority        `json:"priority,omitempty"`
	EstimatedDamageAmount *float64             `json:"estimated_damage_amount,omitempty"`
	SupportingDocuments   []SupportingDocument `json:"supporting_documents,omitempty"`
	ThirdPartyInvolved    bool                 `json:"third_party_involved"`
	ThirdPartyDetails     *ThirdPartyDetails   `json:"third_party_details,omitempty"`
}

// ClaimUpdateRequest represents a request to update claim fields. Status
// changes go through UpdateClaimStatus, never through this request. Nil
// fields are left unchanged.
type ClaimUpdateRequest struct {
	ClaimID               string               `json:"claim_id"`
	Priority              *ClaimPriority       `json:"priority,omitempty"`
	IncidentDescription   *string              `json:"incident_description,omitempty"`
	IncidentLocation      *string              `json:"incident_location,omitempty"`
	EstimatedDamageAmount *float64             `json:"estimated_damage_amount,omitempty"`
	DeductibleAmount      *float64             `json:"deductible_amount,omitempty"`
	AdjusterID            *string              `json:"adjuster_id,omitempty"`
	SupportingDocuments   []SupportingDocument `json:"supporting_documents,omitempty"`
	ThirdPartyInvolved    *bool                `json:"third_party_involved,omitempty"`
	ThirdPartyDetails     *ThirdPartyDetails   `json:"third_party_details,omitempty"`
}

// ClaimStatusUpdateRequest represents a request to transition a claim's
// workflow status
type ClaimStatusUpdateRequest struct {
	ClaimID          string      `json:"claim_id"`
	NewStatus        ClaimStatus `json:"new_status"`
	AdjusterID       string      `json:"adjuster_id"`
	Notes            string      `json:"notes"`
	SettlementAmount *float64    `json:"settlement_amount,omitempty"`
}

// ClaimAssessmentRequest represents an adjuster's damage assessment submission
type ClaimAssessmentRequest struct {
	ClaimID           string           `json:"claim_id"`
	AdjusterID        string           `json:"adjuster_id"`
	DamageAssessment  DamageAssessment `json:"damage_assessment"`
	AssessmentNotes   string           `json:"assessment_notes"`
	RepairEstimate    *float64         `json:"repair_estimate,omitempty"`
	ReplacementCost   *float64         `json:"replacement_cost,omitempty"`
	RecommendedAction string           `json:"recommended_action"`
}
