package main

import (
	"log"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/policy/chaincode"
)

func main() {
	policyChaincode := chaincode.NewPolicyContract()

	if err := shim.Start(policyChaincode); err != nil {
		log.Fatalf("Error starting Policy chaincode: %v", err)
	}
}
