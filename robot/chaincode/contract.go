package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"github.com/robosure-platform/fabric-chaincode/shared/chaincode"
)

// RobotContract implements the chaincode interface
type RobotContract struct {
	chaincode.BaseContract
}

// NewRobotContract creates a new robot contract
func NewRobotContract() *RobotContract {
	return &RobotContract{
		BaseContract: chaincode.BaseContract{Name: "robot"},
	}
}

// Invoke handles chaincode invocations
func (cc *RobotContract) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	router := NewRouter()
	return cc.InvokeWithRouter(stub, router)
}
