package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"github.com/robosure-platform/fabric-chaincode/shared/chaincode"
)

// PolicyContract implements the chaincode interface
type PolicyContract struct {
	chaincode.BaseContract
}

// NewPolicyContract creates a new policy contract
func NewPolicyContract() *PolicyContract {
	return &PolicyContract{
		BaseContract: chaincode.BaseContract{Name: "policy"},
	}
}

// Invoke handles chaincode invocations
func (cc *PolicyContract) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	router := NewRouter()
	return cc.InvokeWithRouter(stub, router)
}
