package domain

import (
	"time"

	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/utils"
	"github.com/robosure-platform/fabric-chaincode/shared/validation"
)

// Rule identifiers for claim cross-field and transition rules
const (
	RuleDateFormat            = "date_format"
	RuleFutureIncidentDate    = "incident_date_future"
	RuleThirdPartyConsistency = "third_party_consistency"
	RuleSettlementPairing     = "settlement_status_pairing"
	RuleDuplicateDocument     = "duplicate_document_id"
	RuleDocumentLimit         = "document_limit"
	RuleTotalLossAssessment   = "total_loss_assessment"
)

// Rules holds the tunable validation configuration for claims. Values are
// fixed at construction; a Validator never mutates them.
type Rules struct {
	MaxDocuments         int
	MaxDocumentSizeBytes int64
	MaxClaimAmount       float64
	MinDescriptionLength int
	MaxDescriptionLength int
	MinNoteLength        int
	MaxNoteLength        int
}

// DefaultRules returns the standard claim validation configuration.
func DefaultRules() Rules {
	return Rules{
		MaxDocuments:         config.MaxSupportingDocuments,
		MaxDocumentSizeBytes: config.MaxDocumentSizeBytes,
		MaxClaimAmount:       config.MaxMonetaryAmount,
		MinDescriptionLength: config.MinDescriptionLength,
		MaxDescriptionLength: config.MaxDescriptionLength,
		MinNoteLength:        config.MinNoteLength,
		MaxNoteLength:        config.MaxNoteLength,
	}
}

// Validator validates claim filing, update, status transition and assessment
// requests.
type Validator struct {
	rules     Rules
	phoneRule validation.FieldRule
	emailRule validation.FieldRule
}

// NewValidator creates a claim validator with the given rule configuration.
func NewValidator(rules Rules) *Validator {
	return &Validator{
		rules:     rules,
		phoneRule: validation.CreateRegexRule(`^[\+\d\s\-\(\)\.]+$`, "phone number with digits, spaces, and punctuation"),
		emailRule: validation.CreateRegexRule(`^[A-Za-z0-9\.\-_]+@[A-Za-z0-9\.\-_]+\.[A-Za-z]{2,}$`, "email address"),
	}
}

// ValidateCreate validates a claim filing request, normalizing trimmed text
// in place.
func (v *Validator) ValidateCreate(request *ClaimCreateRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "policy_id", request.PolicyID)
	v.checkIdentifier(result, "robot_id", request.RobotID)
	v.checkIdentifier(result, "customer_id", request.CustomerID)

	if !request.IncidentType.IsValid() {
		result.Addf("incident_type", validation.RuleInvalidEnum, "unknown incident type %q", request.IncidentType)
	}

	v.checkIncidentDate(result, request.IncidentDate)
	request.IncidentDescription = v.checkDescription(result, "incident_description", request.IncidentDescription)

	if request.IncidentLocation != "" {
		validation.CreateMaxLengthRule(config.MaxLocationLength).Apply(result, "incident_location", request.IncidentLocation)
	}

	if request.Priority == "" {
		request.Priority = PriorityMedium
	} else if !request.Priority.IsValid() {
		result.Addf("priority", validation.RuleInvalidEnum, "unknown claim priority %q", request.Priority)
	}

	if request.EstimatedDamageAmount != nil {
		validation.CheckMonetary(result, "estimated_damage_amount", *request.EstimatedDamageAmount, v.rules.MaxClaimAmount)
	}

	result.Merge(v.ValidateDocuments(request.SupportingDocuments))

	result.Merge(v.checkThirdPartyConsistency(request.ThirdPartyInvolved, request.ThirdPartyDetails))
	if request.ThirdPartyDetails != nil {
		result.MergeAt("third_party_details", v.ValidateThirdParty(request.ThirdPartyDetails))
	}

	return result
}

// ValidateUpdate validates an update request. Only supplied fields are
// validated; the third-party consistency check runs against the merged claim
// in the handler once both sides of the pairing are known.
func (v *Validator) ValidateUpdate(request *ClaimUpdateRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "claim_id", request.ClaimID)

	if request.Priority != nil && !request.Priority.IsValid() {
		result.Addf("priority", validation.RuleInvalidEnum, "unknown claim priority %q", *request.Priority)
	}
	if request.IncidentDescription != nil {
		*request.IncidentDescription = v.checkDescription(result, "incident_description", *request.IncidentDescription)
	}
	if request.IncidentLocation != nil {
		validation.CreateMaxLengthRule(config.MaxLocationLength).Apply(result, "incident_location", *request.IncidentLocation)
	}
	if request.EstimatedDamageAmount != nil {
		validation.CheckMonetary(result, "estimated_damage_amount", *request.EstimatedDamageAmount, v.rules.MaxClaimAmount)
	}
	if request.DeductibleAmount != nil {
		validation.CheckMonetary(result, "deductible_amount", *request.DeductibleAmount, v.rules.MaxClaimAmount)
	}
	if request.AdjusterID != nil {
		v.checkIdentifier(result, "adjuster_id", *request.AdjusterID)
	}
	if request.SupportingDocuments != nil {
		result.Merge(v.ValidateDocuments(request.SupportingDocuments))
	}
	if request.ThirdPartyDetails != nil {
		result.MergeAt("third_party_details", v.ValidateThirdParty(request.ThirdPartyDetails))
	}

	return result
}

// ValidateStatusUpdate validates a status transition request, enforcing the
// settlement-amount pairing for the target status. The note text is trimmed
// in place.
func (v *Validator) ValidateStatusUpdate(request *ClaimStatusUpdateRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "claim_id", request.ClaimID)

	if !request.NewStatus.IsValid() {
		result.Addf("new_status", validation.RuleInvalidEnum, "unknown claim status %q", request.NewStatus)
	}

	v.checkIdentifier(result, "adjuster_id", request.AdjusterID)

	request.Notes = validation.CheckRequiredText(result, "notes", request.Notes)
	validation.CreateMinLengthRule(v.rules.MinNoteLength).Apply(result, "notes", request.Notes)
	validation.CreateMaxLengthRule(v.rules.MaxNoteLength).Apply(result, "notes", request.Notes)

	if request.SettlementAmount != nil {
		validation.CheckMonetary(result, "settlement_amount", *request.SettlementAmount, v.rules.MaxClaimAmount)
	}

	// Settlement amount travels with the settled status and only with it.
	if request.NewStatus == ClaimStatusSettled && request.SettlementAmount == nil {
		result.Add("settlement_amount", RuleSettlementPairing,
			"settlement amount is required when status is set to settled")
	}
	if request.NewStatus != ClaimStatusSettled && request.SettlementAmount != nil {
		result.Add("settlement_amount", RuleSettlementPairing,
			"settlement amount can only be provided when status is set to settled")
	}

	return result
}

// ValidateAssessment validates a damage assessment submission. Text fields
// are trimmed in place.
func (v *Validator) ValidateAssessment(request *ClaimAssessmentRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "claim_id", request.ClaimID)
	v.checkIdentifier(result, "adjuster_id", request.AdjusterID)

	if !request.DamageAssessment.IsValid() {
		result.Addf("damage_assessment", validation.RuleInvalidEnum, "unknown damage assessment %q", request.DamageAssessment)
	}

	request.AssessmentNotes = validation.CheckRequiredText(result, "assessment_notes", request.AssessmentNotes)
	validation.CreateMinLengthRule(v.rules.MinDescriptionLength).Apply(result, "assessment_notes", request.AssessmentNotes)
	validation.CreateMaxLengthRule(v.rules.MaxNoteLength).Apply(result, "assessment_notes", request.AssessmentNotes)

	if request.RepairEstimate != nil {
		validation.CheckMonetary(result, "repair_estimate", *request.RepairEstimate, v.rules.MaxClaimAmount)
	}
	if request.ReplacementCost != nil {
		validation.CheckMonetary(result, "replacement_cost", *request.ReplacementCost, v.rules.MaxClaimAmount)
	}

	request.RecommendedAction = validation.CheckRequiredText(result, "recommended_action", request.RecommendedAction)
	validation.CreateMinLengthRule(v.rules.MinNoteLength).Apply(result, "recommended_action", request.RecommendedAction)
	validation.CreateMaxLengthRule(1000).Apply(result, "recommended_action", request.RecommendedAction)

	// A total loss is beyond repair: no repair estimate, replacement cost
	// required.
	if request.DamageAssessment == DamageTotalLoss {
		if request.RepairEstimate != nil {
			result.Add("repair_estimate", RuleTotalLossAssessment,
				"repair estimate cannot be provided for a total loss assessment")
		}
		if request.ReplacementCost == nil {
			result.Add("replacement_cost", RuleTotalLossAssessment,
				"replacement cost is required for a total loss assessment")
		}
	}

	return result
}

// ValidateDocuments validates the supporting document list: size limit,
// unique document ids, and each entry's fields.
func (v *Validator) ValidateDocuments(documents []SupportingDocument) *validation.Result {
	result := validation.NewResult()

	if len(documents) > v.rules.MaxDocuments {
		result.Addf("supporting_documents", RuleDocumentLimit,
			"cannot attach more than %d supporting documents, got %d", v.rules.MaxDocuments, len(documents))
	}

	seen := make(map[string]bool)
	for i := range documents {
		doc := &documents[i]
		entryPath := validation.IndexedPath("supporting_documents", i)

		if seen[doc.DocumentID] {
			result.Addf(entryPath+".document_id", RuleDuplicateDocument, "duplicate document ID %q", doc.DocumentID)
		}
		seen[doc.DocumentID] = true

		result.MergeAt(entryPath, v.validateDocument(doc))
	}

	return result
}

// ValidateThirdParty validates a third-party details value. Field paths in
// the returned result are relative to the details object.
func (v *Validator) ValidateThirdParty(details *ThirdPartyDetails) *validation.Result {
	result := validation.NewResult()

	details.PartyType = validation.CheckRequiredText(result, "party_type", details.PartyType)

	if details.ContactPhone != "" {
		v.phoneRule.Apply(result, "contact_phone", details.ContactPhone)
	}
	if details.ContactEmail != "" {
		v.emailRule.Apply(result, "contact_email", details.ContactEmail)
	}
	if details.DamageDescription != "" {
		validation.CreateMaxLengthRule(1000).Apply(result, "damage_description", details.DamageDescription)
	}
	if details.EstimatedLiability != nil {
		validation.CheckMonetary(result, "estimated_liability", *details.EstimatedLiability, v.rules.MaxClaimAmount)
	}

	return result
}

// ValidateClaimConsistency re-runs the whole-entity third-party pairing
// check, typically after an update has been merged into the stored claim.
func (v *Validator) ValidateClaimConsistency(claim *Claim) *validation.Result {
	return v.checkThirdPartyConsistency(claim.ThirdPartyInvolved, claim.ThirdPartyDetails)
}

// ValidateNote validates a single adjuster note, trimming the text in place.
func (v *Validator) ValidateNote(note *AdjusterNote) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "adjuster_id", note.AdjusterID)
	note.Note = validation.CheckRequiredText(result, "note", note.Note)
	validation.CreateMinLengthRule(v.rules.MinNoteLength).Apply(result, "note", note.Note)
	validation.CreateMaxLengthRule(v.rules.MaxNoteLength).Apply(result, "note", note.Note)

	return result
}

func (v *Validator) validateDocument(doc *SupportingDocument) *validation.Result {
	result := validation.NewResult()

	doc.DocumentID = validation.CheckRequiredText(result, "document_id", doc.DocumentID)

	if !doc.DocumentType.IsValid() {
		result.Addf("document_type", validation.RuleInvalidEnum, "unknown document type %q", doc.DocumentType)
	}

	if doc.Filename == "" {
		result.Add("filename", validation.RuleRequired, "filename is required")
	} else {
		validation.FilenameRule.Apply(result, "filename", doc.Filename)
	}

	if doc.FileSize <= 0 {
		result.Addf("file_size", validation.RuleFileSize, "file size must be greater than 0, got %d", doc.FileSize)
	} else if doc.FileSize > v.rules.MaxDocumentSizeBytes {
		result.Addf("file_size", validation.RuleFileSize, "file size %d exceeds the %d byte limit", doc.FileSize, v.rules.MaxDocumentSizeBytes)
	}

	v.checkIdentifier(result, "uploaded_by", doc.UploadedBy)

	if doc.Description != "" {
		validation.CreateMaxLengthRule(500).Apply(result, "description", doc.Description)
	}

	return result
}

// checkThirdPartyConsistency enforces the presence pairing in both
// directions: details exactly when involvement is flagged.
func (v *Validator) checkThirdPartyConsistency(involved bool, details *ThirdPartyDetails) *validation.Result {
	result := validation.NewResult()

	if involved && details == nil {
		result.Add("third_party_details", RuleThirdPartyConsistency,
			"third party details must be provided when a third party is involved")
	}
	if !involved && details != nil {
		result.Add("third_party_details", RuleThirdPartyConsistency,
			"third party details cannot be provided when no third party is involved")
	}

	return result
}

func (v *Validator) checkIncidentDate(result *validation.Result, value string) {
	if value == "" {
		result.Add("incident_date", validation.RuleRequired, "incident_date is required")
		return
	}
	parsed, err := time.Parse(utils.DateFormat, value)
	if err != nil {
		result.Addf("incident_date", RuleDateFormat, "must be a date in %s format", utils.DateFormat)
		return
	}
	if utils.IsFutureDate(parsed) {
		result.Add("incident_date", RuleFutureIncidentDate, "incident date cannot be in the future")
	}
}

func (v *Validator) checkDescription(result *validation.Result, fieldPath, value string) string {
	trimmed := validation.CheckRequiredText(result, fieldPath, value)
	validation.CreateMinLengthRule(v.rules.MinDescriptionLength).Apply(result, fieldPath, trimmed)
	validation.CreateMaxLengthRule(v.rules.MaxDescriptionLength).Apply(result, fieldPath, trimmed)
	return trimmed
}

func (v *Validator) checkIdentifier(result *validation.Result, fieldPath, value string) {
	if value == "" {
		result.Add(fieldPath, validation.RuleRequired, fieldPath+" is required")
		return
	}
	validation.IdentifierRule.Apply(result, fieldPath, value)
	validation.CreateMaxLengthRule(config.MaxIdentifierLength).Apply(result, fieldPath, value)
}
