package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/claim/handlers"
)

// Router handles function routing for the claim chaincode
type Router struct {
	handlers map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error)
}

// NewRouter creates a new router with all handler mappings
func NewRouter() *Router {
	claimHandler := handlers.NewClaimHandler()

	return &Router{
		handlers: map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error){
			"FileClaim":             claimHandler.FileClaim,
			"UpdateClaim":           claimHandler.UpdateClaim,
			"UpdateClaimStatus":     claimHandler.UpdateClaimStatus,
			"AssessClaim":           claimHandler.AssessClaim,
			"GetClaim":              claimHandler.GetClaim,
			"GetClaimAssessments":   claimHandler.GetClaimAssessments,
			"GetClaimHistory":       claimHandler.GetClaimHistory,
			"QueryClaimsByPolicy":   claimHandler.QueryClaimsByPolicy,
			"QueryClaimsByCustomer": claimHandler.QueryClaimsByCustomer,
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
