package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// PersistenceService defines common persistence operations over the ledger
type PersistenceService interface {
	// Basic CRUD operations
	Get(stub shim.ChaincodeStubInterface, key string, result interface{}) error
	Put(stub shim.ChaincodeStubInterface, key string, value interface{}) error
	Delete(stub shim.ChaincodeStubInterface, key string) error
	Exists(stub shim.ChaincodeStubInterface, key string) (bool, error)

	// Query operations
	GetByPartialCompositeKey(stub shim.ChaincodeStubInterface, objectType string, attributes []string) ([]interface{}, error)

	// History operations
	GetHistory(stub shim.ChaincodeStubInterface, key string) ([]HistoryEntry, error)
}
