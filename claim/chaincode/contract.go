package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"github.com/robosure-platform/fabric-chaincode/shared/chaincode"
)

// ClaimContract implements the chaincode interface
type ClaimContract struct {
	chaincode.BaseContract
}

// NewClaimContract creates a new claim contract
func NewClaimContract() *ClaimContract {
	return &ClaimContract{
		BaseContract: chaincode.BaseContract{Name: "claim"},
	}
}

// Invoke handles chaincode invocations
func (cc *ClaimContract) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	router := NewRouter()
	return cc.InvokeWithRouter(stub, router)
}
