package services

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/claim/domain"
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/services"
)

const entityTypeClaim = "claim"

// ClaimEventService emits claim lifecycle events
type ClaimEventService struct {
	*services.BaseEventService
}

// NewClaimEventService creates a new claim event service
func NewClaimEventService() *ClaimEventService {
	return &ClaimEventService{BaseEventService: services.NewBaseEventService()}
}

// EmitClaimFiled emits an event when a claim is filed
func (es *ClaimEventService) EmitClaimFiled(stub shim.ChaincodeStubInterface, claim *domain.Claim) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventClaimFiled, claim.ClaimID, entityTypeClaim, claim.CustomerID, claim,
		map[string]string{"policy_id": claim.PolicyID, "robot_id": claim.RobotID})
	return es.EmitEvent(stub, config.EventClaimFiled, payload)
}

// EmitClaimUpdated emits an event when claim fields are updated
func (es *ClaimEventService) EmitClaimUpdated(stub shim.ChaincodeStubInterface, claim *domain.Claim) error {
	payload := es.CreateEventPayload(config.EventClaimUpdated, claim.ClaimID, entityTypeClaim, claim.CustomerID, claim)
	return es.EmitEvent(stub, config.EventClaimUpdated, payload)
}

// EmitClaimStatusChanged emits an event when a claim transitions status
func (es *ClaimEventService) EmitClaimStatusChanged(stub shim.ChaincodeStubInterface, claim *domain.Claim, previousStatus domain.ClaimStatus, adjusterID string) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventClaimStatusChanged, claim.ClaimID, entityTypeClaim, adjusterID, claim,
		map[string]string{
			"previous_status": string(previousStatus),
			"new_status":      string(claim.Status),
		})
	return es.EmitEvent(stub, config.EventClaimStatusChanged, payload)
}

// EmitClaimSettled emits an event when a claim is settled
func (es *ClaimEventService) EmitClaimSettled(stub shim.ChaincodeStubInterface, claim *domain.Claim, adjusterID string) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventClaimSettled, claim.ClaimID, entityTypeClaim, adjusterID, claim,
		map[string]string{"policy_id": claim.PolicyID})
	return es.EmitEvent(stub, config.EventClaimSettled, payload)
}

// EmitClaimAssessed emits an event when an adjuster assessment is recorded
func (es *ClaimEventService) EmitClaimAssessed(stub shim.ChaincodeStubInterface, claim *domain.Claim, assessment *domain.ClaimAssessment) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventClaimAssessed, claim.ClaimID, entityTypeClaim, assessment.AdjusterID, assessment,
		map[string]string{"damage_assessment": string(assessment.DamageAssessment)})
	return es.EmitEvent(stub, config.EventClaimAssessed, payload)
}
