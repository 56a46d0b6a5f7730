package main

import (
	"log"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/claim/chaincode"
)

func main() {
	claimChaincode := chaincode.NewClaimContract()

	if err := shim.Start(claimChaincode); err != nil {
		log.Fatalf("Error starting Claim chaincode: %v", err)
	}
}
