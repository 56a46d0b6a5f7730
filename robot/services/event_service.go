package services

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/robot/domain"
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/services"
)

const entityTypeRobot = "robot"

// RobotEventService emits robot lifecycle events
type RobotEventService struct {
	*services.BaseEventService
}

// NewRobotEventService creates a new robot event service
func NewRobotEventService() *RobotEventService {
	return &RobotEventService{BaseEventService: services.NewBaseEventService()}
}

// EmitRobotRegistered emits an event when a robot is registered
func (es *RobotEventService) EmitRobotRegistered(stub shim.ChaincodeStubInterface, robot *domain.Robot) error {
	payload := es.CreateEventPayload(config.EventRobotRegistered, robot.RobotID, entityTypeRobot, robot.OwnerID, robot)
	return es.EmitEvent(stub, config.EventRobotRegistered, payload)
}

// EmitRobotUpdated emits an event when a robot is updated
func (es *RobotEventService) EmitRobotUpdated(stub shim.ChaincodeStubInterface, robot *domain.Robot) error {
	payload := es.CreateEventPayload(config.EventRobotUpdated, robot.RobotID, entityTypeRobot, robot.OwnerID, robot)
	return es.EmitEvent(stub, config.EventRobotUpdated, payload)
}

// EmitRobotDecommissioned emits an event when a robot is decommissioned
func (es *RobotEventService) EmitRobotDecommissioned(stub shim.ChaincodeStubInterface, robot *domain.Robot) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventRobotDecommissioned, robot.RobotID, entityTypeRobot, robot.OwnerID, robot,
		map[string]string{"serial_number": robot.SerialNumber})
	return es.EmitEvent(stub, config.EventRobotDecommissioned, payload)
}

// EmitDiagnosticRecorded emits an event when a diagnostic snapshot is recorded
func (es *RobotEventService) EmitDiagnosticRecorded(stub shim.ChaincodeStubInterface, robot *domain.Robot, diagnosticID string) error {
	payload := es.CreateEventPayloadWithMetadata(config.EventDiagnosticRecorded, robot.RobotID, entityTypeRobot, robot.OwnerID,
		robot.DiagnosticData, map[string]string{"diagnostic_id": diagnosticID})
	return es.EmitEvent(stub, config.EventDiagnosticRecorded, payload)
}
