package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// EventPayload represents the structure of an event payload
type EventPayload struct {
	EventType  string            `json:"event_type"`
	EntityID   string            `json:"entity_id"`
	EntityType string            `json:"entity_type"`
	ActorID    string            `json:"actor_id"`
	Timestamp  string            `json:"timestamp"`
	Data       interface{}       `json:"data"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// EventEmitter defines the interface for emitting blockchain events
type EventEmitter interface {
	// Emit a single event
	EmitEvent(stub shim.ChaincodeStubInterface, eventName string, payload EventPayload) error

	// Create standardized event payload
	CreateEventPayload(eventType, entityID, entityType, actorID string, data interface{}) EventPayload
}
