package chaincode

import (
	"encoding/json"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"

	"github.com/robosure-platform/fabric-chaincode/policy/domain"
)

func newPolicyStub(t *testing.T) *shimtest.MockStub {
	t.Helper()
	return shimtest.NewMockStub("policy", NewPolicyContract())
}

func standardTerms() *domain.PolicyTerms {
	return &domain.PolicyTerms{
		CoverageDetails: []domain.CoverageDetails{
			{
				CoverageType:   domain.CoveragePhysicalDamage,
				CoverageLimit:  100000.00,
				Deductible:     500.00,
				PremiumPortion: 1200.00,
			},
		},
		CancellationTerms: "30 days written notice required",
		RenewalTerms:      "automatic renewal unless cancelled",
		Jurisdiction:      "US",
	}
}

func creationPayload(customer string) []byte {
	request := domain.PolicyCreateRequest{
		RobotID:            "ROBOT_1_abc",
		CustomerID:         customer,
		CoverageTypes:      []domain.CoverageType{domain.CoveragePhysicalDamage},
		PremiumAmount:      1200.00,
		DeductibleAmount:   500.00,
		CoverageLimit:      100000.00,
		EffectiveDate:      "2026-01-01",
		ExpirationDate:     "2026-12-31",
		RiskLevel:          domain.RiskMedium,
		TermsAndConditions: standardTerms(),
	}
	payload, _ := json.Marshal(request)
	return payload
}

func TestPolicyContract_Init(t *testing.T) {
	stub := newPolicyStub(t)

	response := stub.MockInit("1", nil)
	assert.Equal(t, int32(shim.OK), response.Status, "Init failed: %s", response.Message)
}

func TestCreatePolicy(t *testing.T) {
	stub := newPolicyStub(t)

	response := stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})
	assert.Equal(t, int32(shim.OK), response.Status, "CreatePolicy failed: %s", response.Message)

	var policy domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &policy))
	assert.Equal(t, domain.PolicyStatusDraft, policy.Status)
	assert.Equal(t, domain.PaymentAnnual, policy.PaymentFrequency)
	assert.Contains(t, policy.PolicyID, "POL_")
}

func TestCreatePolicy_RatioViolationRejected(t *testing.T) {
	stub := newPolicyStub(t)

	request := domain.PolicyCreateRequest{
		RobotID:            "ROBOT_1_abc",
		CustomerID:         "CUST-001",
		CoverageTypes:      []domain.CoverageType{domain.CoveragePhysicalDamage},
		PremiumAmount:      1200.00,
		DeductibleAmount:   60000.00, // over 50% of the limit
		CoverageLimit:      100000.00,
		EffectiveDate:      "2026-01-01",
		ExpirationDate:     "2026-12-31",
		RiskLevel:          domain.RiskMedium,
		TermsAndConditions: standardTerms(),
	}
	payload, _ := json.Marshal(request)

	response := stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), payload})
	assert.Equal(t, int32(shim.ERROR), response.Status)
	assert.Contains(t, response.Message, "deductible_ratio")
}

func TestUpdatePolicy(t *testing.T) {
	stub := newPolicyStub(t)

	response := stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})
	var policy domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &policy))

	status := domain.PolicyStatusActive
	premium := 1500.00
	update := domain.PolicyUpdateRequest{
		PolicyID:      policy.PolicyID,
		Status:        &status,
		PremiumAmount: &premium,
	}
	payload, _ := json.Marshal(update)

	response = stub.MockInvoke("2", [][]byte{[]byte("UpdatePolicy"), payload})
	assert.Equal(t, int32(shim.OK), response.Status, "UpdatePolicy failed: %s", response.Message)

	var updated domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &updated))
	assert.Equal(t, domain.PolicyStatusActive, updated.Status)
	assert.Equal(t, 1500.00, updated.PremiumAmount)
}

func TestUpdatePolicy_MergedCrossFieldRulesApply(t *testing.T) {
	stub := newPolicyStub(t)

	response := stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})
	var policy domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &policy))

	// Shrinking the limit makes the existing deductible violate the ratio.
	limit := 900.00
	update := domain.PolicyUpdateRequest{
		PolicyID:      policy.PolicyID,
		CoverageLimit: &limit,
	}
	payload, _ := json.Marshal(update)

	response = stub.MockInvoke("2", [][]byte{[]byte("UpdatePolicy"), payload})
	assert.Equal(t, int32(shim.ERROR), response.Status)
	assert.Contains(t, response.Message, "deductible_ratio")

	// No partial state change: the stored policy still has the old limit.
	response = stub.MockInvoke("3", [][]byte{[]byte("GetPolicy"), []byte(policy.PolicyID)})
	assert.Equal(t, int32(shim.OK), response.Status)
	var stored domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &stored))
	assert.Equal(t, 100000.00, stored.CoverageLimit)
}

func TestUpdatePolicy_CancelledIsImmutable(t *testing.T) {
	stub := newPolicyStub(t)

	response := stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})
	var policy domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &policy))

	cancelled := domain.PolicyStatusCancelled
	update := domain.PolicyUpdateRequest{PolicyID: policy.PolicyID, Status: &cancelled}
	payload, _ := json.Marshal(update)
	response = stub.MockInvoke("2", [][]byte{[]byte("UpdatePolicy"), payload})
	assert.Equal(t, int32(shim.OK), response.Status)

	active := domain.PolicyStatusActive
	update.Status = &active
	payload, _ = json.Marshal(update)
	response = stub.MockInvoke("3", [][]byte{[]byte("UpdatePolicy"), payload})
	assert.Equal(t, int32(shim.ERROR), response.Status)
	assert.Contains(t, response.Message, "cancelled")
}

func TestQueryPoliciesByCustomer(t *testing.T) {
	stub := newPolicyStub(t)

	stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})
	stub.MockInvoke("2", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})
	stub.MockInvoke("3", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-002")})

	response := stub.MockInvoke("4", [][]byte{[]byte("QueryPoliciesByCustomer"), []byte("CUST-001")})
	assert.Equal(t, int32(shim.OK), response.Status, "QueryPoliciesByCustomer failed: %s", response.Message)

	var policies []domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &policies))
	assert.Len(t, policies, 2)
}

func TestQueryPoliciesByRobot(t *testing.T) {
	stub := newPolicyStub(t)

	stub.MockInvoke("1", [][]byte{[]byte("CreatePolicy"), creationPayload("CUST-001")})

	response := stub.MockInvoke("2", [][]byte{[]byte("QueryPoliciesByRobot"), []byte("ROBOT_1_abc")})
	assert.Equal(t, int32(shim.OK), response.Status)

	var policies []domain.Policy
	assert.NoError(t, json.Unmarshal(response.Payload, &policies))
	assert.Len(t, policies, 1)
	assert.Equal(t, "ROBOT_1_abc", policies[0].RobotID)
}
