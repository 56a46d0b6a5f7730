package services

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/policy/domain"
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/services"
)

const entityTypePolicy = "policy"

// PolicyEventService emits policy lifecycle events
type PolicyEventService struct {
	*services.BaseEventService
}

// NewPolicyEventService creates a new policy event service
func NewPolicyEventService() *PolicyEventService {
	return &PolicyEventService{BaseEventService: services.NewBaseEventService()}
}

// EmitPolicyCreated emits an event when a policy is created
func (es *PolicyEventService) EmitPolicyCreated(stub shim.ChaincodeStubInterface, policy *domain.Policy) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventPolicyCreated, policy.PolicyID, entityTypePolicy, policy.CustomerID, policy,
		map[string]string{"robot_id": policy.RobotID})
	return es.EmitEvent(stub, config.EventPolicyCreated, payload)
}

// EmitPolicyUpdated emits an event when a policy is updated
func (es *PolicyEventService) EmitPolicyUpdated(stub shim.ChaincodeStubInterface, policy *domain.Policy) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventPolicyUpdated, policy.PolicyID, entityTypePolicy, policy.CustomerID, policy,
		map[string]string{"status": string(policy.Status)})
	return es.EmitEvent(stub, config.EventPolicyUpdated, payload)
}
