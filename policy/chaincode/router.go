package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/policy/handlers"
)

// Router handles function routing for the policy chaincode
type Router struct {
	handlers map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error)
}

// NewRouter creates a new router with all handler mappings
func NewRouter() *Router {
	policyHandler := handlers.NewPolicyHandler()

	return &Router{
		handlers: map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error){
			"CreatePolicy":            policyHandler.CreatePolicy,
			"UpdatePolicy":            policyHandler.UpdatePolicy,
			"GetPolicy":               policyHandler.GetPolicy,
			"GetPolicyHistory":        policyHandler.GetPolicyHistory,
			"QueryPoliciesByCustomer": policyHandler.QueryPoliciesByCustomer,
			"QueryPoliciesByRobot":    policyHandler.QueryPoliciesByRobot,
		},
	}
}

// Route routes the function call to the appropriate handler
func (r *Router) Route(stub shim.ChaincodeStubInterface, function string, args []string) ([]byte, error) {
	handler, exists := r.handlers[function]
	if !exists {
		return nil, fmt.Errorf("function %s not found", function)
	}

	return handler(stub, args)
}
