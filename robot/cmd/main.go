package main

import (
	"log"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/robot/chaincode"
)

func main() {
	robotChaincode := chaincode.NewRobotContract()

	if err := shim.Start(robotChaincode); err != nil {
		log.Fatalf("Error starting Robot chaincode: %v", err)
	}
}
