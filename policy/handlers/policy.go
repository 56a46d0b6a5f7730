package handlers

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/policy/domain"
	policyservices "github.com/robosure-platform/fabric-chaincode/policy/services"
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/services"
	"github.com/robosure-platform/fabric-chaincode/shared/utils"
)

// Composite key object types for policy indexes
const (
	customerPolicyIndex = "customer~policy"
	robotPolicyIndex    = "robot~policy"
)

// PolicyHandler handles insurance policy operations
type PolicyHandler struct {
	persistenceService *services.PersistenceService
	eventService       *policyservices.PolicyEventService
	validator          *domain.Validator
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{
		persistenceService: services.NewPersistenceService(),
		eventService:       policyservices.NewPolicyEventService(),
		validator:          domain.NewValidator(domain.DefaultRules()),
	}
}

// CreatePolicy creates a new policy in draft status
func (h *PolicyHandler) CreatePolicy(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (policy creation JSON), got %d", len(args))
	}

	var request domain.PolicyCreateRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse policy creation request: %v", err)
	}

	if result := h.validator.ValidateCreate(&request); !result.OK() {
		return nil, result.Err()
	}

	now := utils.GetCurrentTimeString()
	policy := domain.Policy{
		PolicyID:           utils.GenerateID(config.PolicyPrefix),
		RobotID:            request.RobotID,
		CustomerID:         request.CustomerID,
		CoverageTypes:      request.CoverageTypes,
		PremiumAmount:      request.PremiumAmount,
		DeductibleAmount:   request.DeductibleAmount,
		CoverageLimit:      request.CoverageLimit,
		EffectiveDate:      request.EffectiveDate,
		ExpirationDate:     request.ExpirationDate,
		Status:             domain.PolicyStatusDraft,
		RiskLevel:          request.RiskLevel,
		PaymentFrequency:   request.PaymentFrequency,
		AutoRenewal:        request.AutoRenewal,
		TermsAndConditions: request.TermsAndConditions,
		UnderwriterNotes:   request.UnderwriterNotes,
		CreatedDate:        now,
		LastModified:       now,
	}

	if err := h.persistenceService.Put(stub, policy.PolicyID, policy); err != nil {
		return nil, err
	}

	if err := h.createIndex(stub, customerPolicyIndex, []string{policy.CustomerID, policy.PolicyID}); err != nil {
		return nil, err
	}
	if err := h.createIndex(stub, robotPolicyIndex, []string{policy.RobotID, policy.PolicyID}); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitPolicyCreated(stub, &policy); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(policy)
}

// UpdatePolicy applies a partial update to an existing policy. Amounts are
// re-checked against the merged policy so ratio and floor rules always see
// the complete value.
func (h *PolicyHandler) UpdatePolicy(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (policy update JSON), got %d", len(args))
	}

	var request domain.PolicyUpdateRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse policy update request: %v", err)
	}

	if result := h.validator.ValidateUpdate(&request); !result.OK() {
		return nil, result.Err()
	}

	var policy domain.Policy
	if err := h.persistenceService.Get(stub, request.PolicyID, &policy); err != nil {
		return nil, fmt.Errorf("policy %s not found: %v", request.PolicyID, err)
	}

	if policy.Status == domain.PolicyStatusCancelled || policy.Status == domain.PolicyStatusExpired {
		return nil, fmt.Errorf("policy %s is %s and cannot be updated", policy.PolicyID, policy.Status)
	}

	if request.Status != nil {
		policy.Status = *request.Status
	}
	if request.PremiumAmount != nil {
		policy.PremiumAmount = *request.PremiumAmount
	}
	if request.DeductibleAmount != nil {
		policy.DeductibleAmount = *request.DeductibleAmount
	}
	if request.CoverageLimit != nil {
		policy.CoverageLimit = *request.CoverageLimit
	}
	if request.PaymentFrequency != nil {
		policy.PaymentFrequency = *request.PaymentFrequency
	}
	if request.TermsAndConditions != nil {
		// Terms are replaced wholesale, never merged entry by entry.
		policy.TermsAndConditions = request.TermsAndConditions
	}
	if request.UnderwriterNotes != nil {
		policy.UnderwriterNotes = *request.UnderwriterNotes
	}
	if request.AutoRenewal != nil {
		policy.AutoRenewal = *request.AutoRenewal
	}

	if result := h.validator.ValidatePolicy(&policy); !result.OK() {
		return nil, result.Err()
	}

	policy.LastModified = utils.GetCurrentTimeString()

	if err := h.persistenceService.Put(stub, policy.PolicyID, policy); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitPolicyUpdated(stub, &policy); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(policy)
}

// GetPolicy retrieves a policy by ID
func (h *PolicyHandler) GetPolicy(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (policy ID), got %d", len(args))
	}

	var policy domain.Policy
	if err := h.persistenceService.Get(stub, args[0], &policy); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(policy)
}

// QueryPoliciesByCustomer retrieves all policies held by a customer
func (h *PolicyHandler) QueryPoliciesByCustomer(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (customer ID), got %d", len(args))
	}
	return h.queryPolicies(stub, customerPolicyIndex, args[0])
}

// QueryPoliciesByRobot retrieves all policies covering a robot
func (h *PolicyHandler) QueryPoliciesByRobot(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (robot ID), got %d", len(args))
	}
	return h.queryPolicies(stub, robotPolicyIndex, args[0])
}

// GetPolicyHistory retrieves the modification history of a policy
func (h *PolicyHandler) GetPolicyHistory(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (policy ID), got %d", len(args))
	}

	history, err := h.persistenceService.GetHistory(stub, args[0])
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(history)
}

func (h *PolicyHandler) queryPolicies(stub shim.ChaincodeStubInterface, objectType, attribute string) ([]byte, error) {
	policyIDs, err := h.resolveIndex(stub, objectType, []string{attribute})
	if err != nil {
		return nil, err
	}

	policies := []domain.Policy{}
	for _, policyID := range policyIDs {
		var policy domain.Policy
		if err := h.persistenceService.Get(stub, policyID, &policy); err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}

	return utils.MarshalJSON(policies)
}

func (h *PolicyHandler) createIndex(stub shim.ChaincodeStubInterface, objectType string, attributes []string) error {
	key, err := stub.CreateCompositeKey(objectType, attributes)
	if err != nil {
		return fmt.Errorf("failed to create composite key %s: %v", objectType, err)
	}
	if err := stub.PutState(key, []byte{0x00}); err != nil {
		return fmt.Errorf("failed to store index %s: %v", objectType, err)
	}
	return nil
}

func (h *PolicyHandler) resolveIndex(stub shim.ChaincodeStubInterface, objectType string, attributes []string) ([]string, error) {
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
