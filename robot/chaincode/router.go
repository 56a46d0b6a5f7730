package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/robot/handlers"
)

// Router handles function routing for the robot chaincode
type Router struct {
	handlers map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error)
}

// NewRouter creates a new router with all handler mappings
func NewRouter() *Router {
	robotHandler := handlers.NewRobotHandler()

	return &Router{
		handlers: map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error){
			"RegisterRobot":      robotHandler.RegisterRobot,
			"UpdateRobot":        robotHandler.UpdateRobot,
			"GetRobot":           robotHandler.GetRobot,
			"GetRobotHistory":    robotHandler.GetRobotHistory,
			"QueryRobotsByOwner": robotHandler.QueryRobotsByOwner,
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
