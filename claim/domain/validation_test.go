package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robosure-platform/fabric-chaincode/shared/validation"
)

func validCreateRequest() ClaimCreateRequest {
	return ClaimCreateRequest{
		PolicyID:            "POL_1_abc",
		RobotID:             "ROBOT_1_abc",
		CustomerID:          "CUST-001",
		IncidentType:        IncidentPhysicalDamage,
		IncidentDate:        "2026-08-01",
		IncidentDescription: "Robot arm collided with warehouse shelving and damaged the gripper assembly",
	}
}

func validDocument(id string) SupportingDocument {
	return SupportingDocument{
		DocumentID:   id,
		DocumentType: DocumentPhotos,
		Filename:     "damage_photo.jpg",
		FileSize:     1024,
		UploadDate:   "2026-08-02T10:00:00Z",
		UploadedBy:   "CUST-001",
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	validator := NewValidator(DefaultRules())
	request := validCreateRequest()

	result := validator.ValidateCreate(&request)
	assert.True(t, result.OK(), "Valid claim should pass: %v", result.Violations())
	assert.Equal(t, PriorityMedium, request.Priority, "Priority should default to medium")
}

func TestValidateCreate_TrimsDescription(t *testing.T) {
	validator := NewValidator(DefaultRules())
	request := validCreateRequest()
	request.IncidentDescription = "  " + request.IncidentDescription + "  "

	result := validator.ValidateCreate(&request)
	assert.True(t, result.OK())
	assert.NotContains(t, request.IncidentDescription[:1], " ", "Description should be trimmed in place")

	// A second pass over the normalized request reports the same outcome.
	again := validator.ValidateCreate(&request)
	assert.True(t, again.OK())
}

func TestValidateCreate_ShortDescriptionRejected(t *testing.T) {
	validator := NewValidator(DefaultRules())
	request := validCreateRequest()
	request.IncidentDescription = "broke down"

	result := validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, validation.RuleMinLength, result.Violations()[0].RuleID)
	assert.Equal(t, "incident_description", result.Violations()[0].FieldPath)
}

func TestIncidentDateCannotBeFuture(t *testing.T) {
	validator := NewValidator(DefaultRules())
	request := validCreateRequest()
	request.IncidentDate = "2035-01-01"

	result := validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleFutureIncidentDate, result.Violations()[0].RuleID)

	request.IncidentDate = "not-a-date"
	result = validator.ValidateCreate(&request)
	assert.Equal(t, RuleDateFormat, result.Violations()[0].RuleID)
}

func TestThirdPartyConsistencyBothDirections(t *testing.T) {
	validator := NewValidator(DefaultRules())

	// Involved without details.
	request := validCreateRequest()
	request.ThirdPartyInvolved = true
	result := validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleThirdPartyConsistency, result.Violations()[0].RuleID)

	// Details without involvement.
	request = validCreateRequest()
	request.ThirdPartyDetails = &ThirdPartyDetails{PartyType: "vehicle"}
	result = validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleThirdPartyConsistency, result.Violations()[0].RuleID)

	// Both present agrees.
	request = validCreateRequest()
	request.ThirdPartyInvolved = true
	request.ThirdPartyDetails = &ThirdPartyDetails{PartyType: "vehicle"}
	result = validator.ValidateCreate(&request)
	assert.True(t, result.OK(), "Matching flag and details should pass: %v", result.Violations())
}

func TestValidateThirdParty_ContactFormats(t *testing.T) {
	validator := NewValidator(DefaultRules())

	details := &ThirdPartyDetails{
		PartyType:    "person",
		ContactPhone: "+1 (555) 123-4567",
		ContactEmail: "jane.doe@example.com",
	}
	assert.True(t, validator.ValidateThirdParty(details).OK())

	details.ContactPhone = "call me"
	details.ContactEmail = "not-an-email"
	result := validator.ValidateThirdParty(details)

	paths := map[string]bool{}
	for _, v := range result.Violations() {
		paths[v.FieldPath] = true
	}
	assert.True(t, paths["contact_phone"])
	assert.True(t, paths["contact_email"])
}

func TestDocumentLimitBoundary(t *testing.T) {
	validator := NewValidator(DefaultRules())

	request := validCreateRequest()
	for i := 0; i < 20; i++ {
		request.SupportingDocuments = append(request.SupportingDocuments, validDocument(fmt.Sprintf("DOC-%02d", i)))
	}
	result := validator.ValidateCreate(&request)
	assert.True(t, result.OK(), "20 documents should be accepted: %v", result.Violations())

	request.SupportingDocuments = append(request.SupportingDocuments, validDocument("DOC-20"))
	result = validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleDocumentLimit, result.Violations()[0].RuleID)
}

func TestDuplicateDocumentIDsRejected(t *testing.T) {
	validator := NewValidator(DefaultRules())

	request := validCreateRequest()
	request.SupportingDocuments = []SupportingDocument{validDocument("DOC-1"), validDocument("DOC-1")}

	result := validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleDuplicateDocument, result.Violations()[0].RuleID)
	assert.Equal(t, "supporting_documents[1].document_id", result.Violations()[0].FieldPath)
}

func TestDocumentFieldRules(t *testing.T) {
	validator := NewValidator(DefaultRules())

	doc := validDocument("DOC-1")
	doc.Filename = "../../etc/passwd"
	doc.FileSize = 51 * 1024 * 1024
	doc.DocumentType = "blueprint"

	result := validator.ValidateDocuments([]SupportingDocument{doc})
	paths := map[string]string{}
	for _, v := range result.Violations() {
		paths[v.FieldPath] = v.RuleID
	}
	assert.Equal(t, validation.RuleFilenameFormat, paths["supporting_documents[0].filename"])
	assert.Equal(t, validation.RuleFileSize, paths["supporting_documents[0].file_size"])
	assert.Equal(t, validation.RuleInvalidEnum, paths["supporting_documents[0].document_type"])
}

func TestStatusUpdateSettlementPairing(t *testing.T) {
	validator := NewValidator(DefaultRules())

	// Settled requires a settlement amount.
	request := ClaimStatusUpdateRequest{
		ClaimID:    "CLM_1_abc",
		NewStatus:  ClaimStatusSettled,
		AdjusterID: "ADJ-007",
		Notes:      "Settlement agreed with customer after repair quotes",
	}
	result := validator.ValidateStatusUpdate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleSettlementPairing, result.Violations()[0].RuleID)

	settlement := 4500.00
	request.SettlementAmount = &settlement
	result = validator.ValidateStatusUpdate(&request)
	assert.True(t, result.OK(), "Settled with amount should pass: %v", result.Violations())

	// Any other target status must not carry one.
	request.NewStatus = ClaimStatusApproved
	result = validator.ValidateStatusUpdate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, RuleSettlementPairing, result.Violations()[0].RuleID)

	request.SettlementAmount = nil
	result = validator.ValidateStatusUpdate(&request)
	assert.True(t, result.OK(), "Non-settled without amount should pass: %v", result.Violations())
}

func TestStatusUpdateRequiresAdjusterAndNote(t *testing.T) {
	validator := NewValidator(DefaultRules())

	request := ClaimStatusUpdateRequest{
		ClaimID:    "CLM_1_abc",
		NewStatus:  ClaimStatusUnderReview,
		AdjusterID: "adjuster 7",
		Notes:      "too short",
	}

	result := validator.ValidateStatusUpdate(&request)
	paths := map[string]bool{}
	for _, v := range result.Violations() {
		paths[v.FieldPath] = true
	}
	assert.True(t, paths["adjuster_id"], "Adjuster ID with spaces should fail")
	assert.True(t, paths["notes"], "Nine-character note should fail the minimum")
}

func TestStatusUpdateRejectsUnknownStatus(t *testing.T) {
	validator := NewValidator(DefaultRules())

	request := ClaimStatusUpdateRequest{
		ClaimID:    "CLM_1_abc",
		NewStatus:  "escalated",
		AdjusterID: "ADJ-007",
		Notes:      "Escalating this claim for supervisor review",
	}

	result := validator.ValidateStatusUpdate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, validation.RuleInvalidEnum, result.Violations()[0].RuleID)
}

func TestAssessmentTotalLossRules(t *testing.T) {
	validator := NewValidator(DefaultRules())

	replacement := 85000.00
	request := ClaimAssessmentRequest{
		ClaimID:           "CLM_1_abc",
		AdjusterID:        "ADJ-007",
		DamageAssessment:  DamageTotalLoss,
		AssessmentNotes:   "Chassis deformation beyond economical repair threshold",
		ReplacementCost:   &replacement,
		RecommendedAction: "Write off the unit and settle at replacement cost",
	}
	result := validator.ValidateAssessment(&request)
	assert.True(t, result.OK(), "Valid total loss assessment should pass: %v", result.Violations())

	repair := 12000.00
	request.RepairEstimate = &repair
	result = validator.ValidateAssessment(&request)
	assert.False(t, result.OK())
	assert.Equal(t, "repair_estimate", result.Violations()[0].FieldPath)
	assert.Equal(t, RuleTotalLossAssessment, result.Violations()[0].RuleID)

	request.RepairEstimate = nil
	request.ReplacementCost = nil
	result = validator.ValidateAssessment(&request)
	assert.False(t, result.OK())
	assert.Equal(t, "replacement_cost", result.Violations()[0].FieldPath)
}

func TestAssessmentNonTotalLossAllowsRepairEstimate(t *testing.T) {
	validator := NewValidator(DefaultRules())

	repair := 3200.00
	request := ClaimAssessmentRequest{
		ClaimID:           "CLM_1_abc",
		AdjusterID:        "ADJ-007",
		DamageAssessment:  DamageModerate,
		AssessmentNotes:   "Gripper assembly and two actuators need replacement",
		RepairEstimate:    &repair,
		RecommendedAction: "Approve repair at the quoted estimate",
	}

	result := validator.ValidateAssessment(&request)
	assert.True(t, result.OK(), "Moderate damage with repair estimate should pass: %v", result.Violations())
}

func TestMonetaryCeilingOnClaimAmounts(t *testing.T) {
	validator := NewValidator(DefaultRules())

	request := validCreateRequest()
	over := 10000000.01
	request.EstimatedDamageAmount = &over

	result := validator.ValidateCreate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, validation.RuleMonetaryCeiling, result.Violations()[0].RuleID)

	atCeiling := 10000000.00
	request.EstimatedDamageAmount = &atCeiling
	result = validator.ValidateCreate(&request)
	assert.True(t, result.OK(), "Amount at the ceiling should pass: %v", result.Violations())
}

func TestValidateUpdate_SuppliedFieldsOnly(t *testing.T) {
	validator := NewValidator(DefaultRules())

	request := ClaimUpdateRequest{ClaimID: "CLM_1_abc"}
	assert.True(t, validator.ValidateUpdate(&request).OK(), "Empty update validates nothing but the ID")

	badPriority := ClaimPriority("extreme")
	request.Priority = &badPriority
	result := validator.ValidateUpdate(&request)
	assert.False(t, result.OK())
	assert.Equal(t, "priority", result.Violations()[0].FieldPath)
}

func TestValidateClaimConsistencyAfterMerge(t *testing.T) {
	validator := NewValidator(DefaultRules())

	claim := Claim{
		ClaimID:            "CLM_1_abc",
		ThirdPartyInvolved: true,
	}
	result := validator.ValidateClaimConsistency(&claim)
	assert.False(t, result.OK())

	claim.ThirdPartyDetails = &ThirdPartyDetails{PartyType: "property"}
	assert.True(t, validator.ValidateClaimConsistency(&claim).OK())
}

func TestValidateNote(t *testing.T) {
	validator := NewValidator(DefaultRules())

	note := AdjusterNote{
		Timestamp:  "2026-08-02T10:00:00Z",
		AdjusterID: "ADJ-007",
		Note:       "  Spoke with the customer about repair timelines  ",
	}
	result := validator.ValidateNote(&note)
	assert.True(t, result.OK(), "Valid note should pass: %v", result.Violations())
	assert.Equal(t, "Spoke with the customer about repair timelines", note.Note)

	note.Note = "ok"
	result = validator.ValidateNote(&note)
	assert.False(t, result.OK())
	assert.Equal(t, validation.RuleMinLength, result.Violations()[0].RuleID)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, IncidentCyberSecurityBreach.IsValid())
	assert.False(t, IncidentType("earthquake").IsValid())
	assert.True(t, ClaimStatusPendingDocumentation.IsValid())
	assert.False(t, ClaimStatus("archived").IsValid())
	assert.True(t, DamageTotalLoss.IsValid())
	assert.False(t, DamageAssessment("cosmetic").IsValid())
	assert.True(t, DocumentWitnessStatement.IsValid())
	assert.False(t, DocumentType("blueprint").IsValid())
	assert.True(t, PriorityUrgent.IsValid())
	assert.False(t, ClaimPriority("extreme").IsValid())
}
