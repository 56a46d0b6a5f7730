package handlers

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/claim/domain"
	claimservices "github.com/robosure-platform/fabric-chaincode/claim/services"
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/services"
	"github.com/robosure-platform/fabric-chaincode/shared/utils"
)

// Composite key object types for claim indexes
const (
	policyClaimIndex     = "policy~claim"
	customerClaimIndex   = "customer~claim"
	claimAssessmentIndex = "claim~assessment"
)

// ClaimHandler handles insurance claim operations
type ClaimHandler struct {
	persistenceService *services.PersistenceService
	eventService       *claimservices.ClaimEventService
	validator          *domain.Validator
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler() *ClaimHandler {
	return &ClaimHandler{
		persistenceService: services.NewPersistenceService(),
		eventService:       claimservices.NewClaimEventService(),
		validator:          domain.NewValidator(domain.DefaultRules()),
	}
}

// FileClaim files a new claim in draft status
func (h *ClaimHandler) FileClaim(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (claim filing JSON), got %d", len(args))
	}

	var request domain.ClaimCreateRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse claim filing request: %v", err)
	}

	if result := h.validator.ValidateCreate(&request); !result.OK() {
		return nil, result.Err()
	}

	now := utils.GetCurrentTimeString()
	claim := domain.Claim{
		ClaimID:               utils.GenerateID(config.ClaimPrefix),
		PolicyID:              request.PolicyID,
		RobotID:               request.RobotID,
		CustomerID:            request.CustomerID,
		IncidentType:          request.IncidentType,
		IncidentDate:          request.IncidentDate,
		IncidentDescription:   request.IncidentDescription,
		IncidentLocation:      request.IncidentLocation,
		Status:                domain.ClaimStatusDraft,
		Priority:              request.Priority,
		EstimatedDamageAmount: request.EstimatedDamageAmount,
		SupportingDocuments:   request.SupportingDocuments,
		ThirdPartyInvolved:    request.ThirdPartyInvolved,
		ThirdPartyDetails:     request.ThirdPartyDetails,
		ReportedDate:          now,
		CreatedDate:           now,
		LastModified:          now,
	}

	if err := h.persistenceService.Put(stub, claim.ClaimID, claim); err != nil {
		return nil, err
	}

	if err := h.createIndex(stub, policyClaimIndex, []string{claim.PolicyID, claim.ClaimID}); err != nil {
		return nil, err
	}
	if err := h.createIndex(stub, customerClaimIndex, []string{claim.CustomerID, claim.ClaimID}); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitClaimFiled(stub, &claim); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(claim)
}

// UpdateClaim applies a partial update to an existing claim. The document
// list is replaced wholesale, never merged. Status changes are rejected
// here; they go through UpdateClaimStatus.
func (h *ClaimHandler) UpdateClaim(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (claim update JSON), got %d", len(args))
	}

	var request domain.ClaimUpdateRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse claim update request: %v", err)
	}

	if result := h.validator.ValidateUpdate(&request); !result.OK() {
		return nil, result.Err()
	}

	var claim domain.Claim
	if err := h.persistenceService.Get(stub, request.ClaimID, &claim); err != nil {
		return nil, fmt.Errorf("claim %s not found: %v", request.ClaimID, err)
	}

	if claim.Status == domain.ClaimStatusClosed {
		return nil, fmt.Errorf("claim %s is closed; reopen it before updating", claim.ClaimID)
	}

	if request.Priority != nil {
		claim.Priority = *request.Priority
	}
	if request.IncidentDescription != nil {
		claim.IncidentDescription = *request.IncidentDescription
	}
	if request.IncidentLocation != nil {
		claim.IncidentLocation = *request.IncidentLocation
	}
	if request.EstimatedDamageAmount != nil {
		claim.EstimatedDamageAmount = request.EstimatedDamageAmount
	}
	if request.DeductibleAmount != nil {
		claim.DeductibleAmount = request.DeductibleAmount
	}
	if request.AdjusterID != nil {
		claim.AdjusterID = *request.AdjusterID
	}
	if request.SupportingDocuments != nil {
		claim.SupportingDocuments = request.SupportingDocuments
	}
	if request.ThirdPartyInvolved != nil {
		claim.ThirdPartyInvolved = *request.ThirdPartyInvolved
	}
	if request.ThirdPartyDetails != nil {
		claim.ThirdPartyDetails = request.ThirdPartyDetails
	}

	// The involvement flag and the details must agree on the merged claim.
	if result := h.validator.ValidateClaimConsistency(&claim); !result.OK() {
		return nil, result.Err()
	}

	claim.LastModified = utils.GetCurrentTimeString()

	if err := h.persistenceService.Put(stub, claim.ClaimID, claim); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitClaimUpdated(stub, &claim); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(claim)
}

// UpdateClaimStatus transitions a claim to a new workflow status. The
// transition carries an adjuster note and, for settled claims only, a
// settlement amount. No state is changed when validation fails.
func (h *ClaimHandler) UpdateClaimStatus(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (status update JSON), got %d", len(args))
	}

	var request domain.ClaimStatusUpdateRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse claim status update request: %v", err)
	}

	if result := h.validator.ValidateStatusUpdate(&request); !result.OK() {
		return nil, result.Err()
	}

	var claim domain.Claim
	if err := h.persistenceService.Get(stub, request.ClaimID, &claim); err != nil {
		return nil, fmt.Errorf("claim %s not found: %v", request.ClaimID, err)
	}

	previousStatus := claim.Status
	claim.Status = request.NewStatus
	claim.AdjusterID = request.AdjusterID
	if request.NewStatus == domain.ClaimStatusSettled {
		claim.SettlementAmount = request.SettlementAmount
	}

	claim.AdjusterNotes = append(claim.AdjusterNotes, domain.AdjusterNote{
		Timestamp:  utils.GetCurrentTimeString(),
		AdjusterID: request.AdjusterID,
		Note:       request.Notes,
		NoteType:   "decision",
	})

	claim.LastModified = utils.GetCurrentTimeString()

	if err := h.persistenceService.Put(stub, claim.ClaimID, claim); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitClaimStatusChanged(stub, &claim, previousStatus, request.AdjusterID); err != nil {
		return nil, err
	}
	if claim.Status == domain.ClaimStatusSettled {
		if err := h.eventService.EmitClaimSettled(stub, &claim, request.AdjusterID); err != nil {
			return nil, err
		}
	}

	return utils.MarshalJSON(claim)
}

// AssessClaim records an adjuster's damage assessment against a claim
func (h *ClaimHandler) AssessClaim(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (assessment JSON), got %d", len(args))
	}

	var request domain.ClaimAssessmentRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse claim assessment request: %v", err)
	}

	if result := h.validator.ValidateAssessment(&request); !result.OK() {
		return nil, result.Err()
	}

	var claim domain.Claim
	if err := h.persistenceService.Get(stub, request.ClaimID, &claim); err != nil {
		return nil, fmt.Errorf("claim %s not found: %v", request.ClaimID, err)
	}

	now := utils.GetCurrentTimeString()
	assessment := domain.ClaimAssessment{
		AssessmentID:      utils.GenerateID(config.AssessmentPrefix),
		AdjusterID:        request.AdjusterID,
		DamageAssessment:  request.DamageAssessment,
		AssessmentNotes:   request.AssessmentNotes,
		RepairEstimate:    request.RepairEstimate,
		ReplacementCost:   request.ReplacementCost,
		RecommendedAction: request.RecommendedAction,
		AssessedDate:      now,
	}

	assessmentKey, err := stub.CreateCompositeKey(claimAssessmentIndex, []string{claim.ClaimID, assessment.AssessmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment key: %v", err)
	}
	if err := h.persistenceService.Put(stub, assessmentKey, assessment); err != nil {
		return nil, err
	}

	claim.DamageAssessment = &request.DamageAssessment
	claim.AdjusterID = request.AdjusterID
	claim.AdjusterNotes = append(claim.AdjusterNotes, domain.AdjusterNote{
		Timestamp:  now,
		AdjusterID: request.AdjusterID,
		Note:       request.AssessmentNotes,
		NoteType:   "assessment",
	})
	claim.LastModified = now

	if err := h.persistenceService.Put(stub, claim.ClaimID, claim); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitClaimAssessed(stub, &claim, &assessment); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(assessment)
}

// GetClaim retrieves a claim by ID
func (h *ClaimHandler) GetClaim(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (claim ID), got %d", len(args))
	}

	var claim domain.Claim
	if err := h.persistenceService.Get(stub, args[0], &claim); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(claim)
}

// GetClaimAssessments retrieves all assessments recorded against a claim
func (h *ClaimHandler) GetClaimAssessments(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (claim ID), got %d", len(args))
	}

	assessments, err := h.persistenceService.GetByPartialCompositeKey(stub, claimAssessmentIndex, []string{args[0]})
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(assessments)
}

// QueryClaimsByPolicy retrieves all claims filed against a policy
func (h *ClaimHandler) QueryClaimsByPolicy(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (policy ID), got %d", len(args))
	}
	return h.queryClaims(stub, policyClaimIndex, args[0])
}

// QueryClaimsByCustomer retrieves all claims filed by a customer
func (h *ClaimHandler) QueryClaimsByCustomer(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (customer ID), got %d", len(args))
	}
	return h.queryClaims(stub, customerClaimIndex, args[0])
}

// GetClaimHistory retrieves the modification history of a claim
func (h *ClaimHandler) GetClaimHistory(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (claim ID), got %d", len(args))
	}

	history, err := h.persistenceService.GetHistory(stub, args[0])
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(history)
}

func (h *ClaimHandler) queryClaims(stub shim.ChaincodeStubInterface, objectType, attribute string) ([]byte, error) {
	claimIDs, err := h.resolveIndex(stub, objectType, []string{attribute})
	if err != nil {
		return nil, err
	}

	claims := []domain.Claim{}
	for _, claimID := range claimIDs {
		var claim domain.Claim
		if err := h.persistenceService.Get(stub, claimID, &claim); err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}

	return utils.MarshalJSON(claims)
}

func (h *ClaimHandler) createIndex(stub shim.ChaincodeStubInterface, objectType string, attributes []string) error {
	key, err := stub.CreateCompositeKey(objectType, attributes)
	if err != nil {
		return fmt.Errorf("failed to create composite key %s: %v", objectType, err)
	}
	if err := stub.PutState(key, []byte{0x00}); err != nil {
		return fmt.Errorf("failed to store index %s: %v", objectType, err)
	}
	return nil
}

func (h *ClaimHandler) resolveIndex(stub shim.ChaincodeStubInterface, objectType string, attributes []string) ([]string, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(objectType, attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to query index %s: %v", objectType, err)
	}
	defer iterator.Close()

	var ids []string
	for iterator.HasNext() {
		response, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate index %s: %v", objectType, err)
		}

		_, parts, err := stub.SplitCompositeKey(response.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to split composite key: %v", err)
		}
		ids = append(ids, parts[len(parts)-1])
	}

	return ids, nil
}
