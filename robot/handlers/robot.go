package handlers

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/robosure-platform/fabric-chaincode/robot/domain"
	robotservices "github.com/robosure-platform/fabric-chaincode/robot/services"
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/services"
	"github.com/robosure-platform/fabric-chaincode/shared/utils"
)

// Composite key object types for robot indexes
const (
	ownerRobotIndex  = "owner~robot"
	serialRobotIndex = "serial~robot"
	robotDiagIndex   = "robot~diagnostic"
)

// RobotHandler handles robot registry operations
type RobotHandler struct {
	persistenceService *services.PersistenceService
	eventService       *robotservices.RobotEventService
	validator          *domain.Validator
}

// NewRobotHandler creates a new robot handler
func NewRobotHandler() *RobotHandler {
	return &RobotHandler{
		persistenceService: services.NewPersistenceService(),
		eventService:       robotservices.NewRobotEventService(),
		validator:          domain.NewValidator(domain.DefaultRules()),
	}
}

// RegisterRobot registers a new robot on the ledger
func (h *RobotHandler) RegisterRobot(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (robot registration JSON), got %d", len(args))
	}

	var request domain.RobotRegistrationRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse robot registration request: %v", err)
	}

	if result := h.validator.ValidateRegistration(&request); !result.OK() {
		return nil, result.Err()
	}

	// Serial numbers identify physical units, so a duplicate means the robot
	// is already registered.
	if err := h.checkSerialNotRegistered(stub, request.SerialNumber); err != nil {
		return nil, err
	}

	now := utils.GetCurrentTimeString()
	robot := domain.Robot{
		RobotID:        utils.GenerateID(config.RobotPrefix),
		SerialNumber:   request.SerialNumber,
		ManufacturerID: request.ManufacturerID,
		OwnerID:        request.OwnerID,
		RobotType:      request.RobotType,
		Model:          request.Model,
		Status:         domain.RobotStatusActive,
		UsageScenario:  request.UsageScenario,
		Specifications: request.Specifications,
		Location:       request.Location,
		CreatedDate:    now,
		LastModified:   now,
	}

	if err := h.persistenceService.Put(stub, robot.RobotID, robot); err != nil {
		return nil, err
	}

	if err := h.createIndex(stub, ownerRobotIndex, []string{robot.OwnerID, robot.RobotID}); err != nil {
		return nil, err
	}
	if err := h.createIndex(stub, serialRobotIndex, []string{robot.SerialNumber, robot.RobotID}); err != nil {
		return nil, err
	}

	if err := h.eventService.EmitRobotRegistered(stub, &robot); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(robot)
}

// UpdateRobot applies a partial update to an existing robot. Diagnostic data
// is replaced wholesale, never merged field by field.
func (h *RobotHandler) UpdateRobot(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (robot update JSON), got %d", len(args))
	}

	var request domain.RobotUpdateRequest
	if err := utils.UnmarshalJSONString(args[0], &request); err != nil {
		return nil, fmt.Errorf("failed to parse robot update request: %v", err)
	}

	if result := h.validator.ValidateUpdate(&request); !result.OK() {
		return nil, result.Err()
	}

	var robot domain.Robot
	if err := h.persistenceService.Get(stub, request.RobotID, &robot); err != nil {
		return nil, fmt.Errorf("robot %s not found: %v", request.RobotID, err)
	}

	if robot.Status == domain.RobotStatusDecommissioned {
		return nil, fmt.Errorf("robot %s is decommissioned and cannot be updated", robot.RobotID)
	}

	decommissioning := false
	if request.Status != nil {
		decommissioning = *request.Status == domain.RobotStatusDecommissioned
		robot.Status = *request.Status
	}
	if request.UsageScenario != nil {
		robot.UsageScenario = *request.UsageScenario
	}
	if request.Specifications != nil {
		robot.Specifications = request.Specifications
	}
	if request.Location != nil {
		robot.Location = *request.Location
	}

	// Configuration rules are re-checked against the merged robot once type,
	// usage and specifications are all known.
	if robot.Specifications != nil {
		if result := h.validator.ValidateConfiguration(robot.RobotType, robot.UsageScenario, robot.Specifications); !result.OK() {
			return nil, result.Err()
		}
	}

	diagnosticID := ""
	if request.DiagnosticData != nil {
		robot.DiagnosticData = request.DiagnosticData
		robot.LastDiagnosticDate = utils.GetCurrentTimeString()
		diagnosticID = utils.GenerateID(config.DiagnosticPrefix)
		if err := h.recordDiagnosticSnapshot(stub, robot.RobotID, diagnosticID, request.DiagnosticData); err != nil {
			return nil, err
		}
	}

	robot.LastModified = utils.GetCurrentTimeString()

	if err := h.persistenceService.Put(stub, robot.RobotID, robot); err != nil {
		return nil, err
	}

	if diagnosticID != "" {
		if err := h.eventService.EmitDiagnosticRecorded(stub, &robot, diagnosticID); err != nil {
			return nil, err
		}
	}

	if decommissioning {
		if err := h.eventService.EmitRobotDecommissioned(stub, &robot); err != nil {
			return nil, err
		}
	} else {
		if err := h.eventService.EmitRobotUpdated(stub, &robot); err != nil {
			return nil, err
		}
	}

	return utils.MarshalJSON(robot)
}

// GetRobot retrieves a robot by ID
func (h *RobotHandler) GetRobot(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (robot ID), got %d", len(args))
	}

	var robot domain.Robot
	if err := h.persistenceService.Get(stub, args[0], &robot); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(robot)
}

// QueryRobotsByOwner retrieves all robots registered to an owner
func (h *RobotHandler) QueryRobotsByOwner(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (owner ID), got %d", len(args))
	}

	robotIDs, err := h.resolveIndex(stub, ownerRobotIndex, []string{args[0]})
	if err != nil {
		return nil, err
	}

	robots := []domain.Robot{}
	for _, robotID := range robotIDs {
		var robot domain.Robot
		if err := h.persistenceService.Get(stub, robotID, &robot); err != nil {
			return nil, err
		}
		robots = append(robots, robot)
	}

	return utils.MarshalJSON(robots)
}

// GetRobotHistory retrieves the modification history of a robot
func (h *RobotHandler) GetRobotHistory(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (robot ID), got %d", len(args))
	}

	history, err := h.persistenceService.GetHistory(stub, args[0])
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(history)
}

func (h *RobotHandler) checkSerialNotRegistered(stub shim.ChaincodeStubInterface, serialNumber string) error {
	existing, err := h.resolveIndex(stub, serialRobotIndex, []string{serialNumber})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("robot with serial number %s is already registered as %s", serialNumber, existing[0])
	}
	return nil
}

func (h *RobotHandler) recordDiagnosticSnapshot(stub shim.ChaincodeStubInterface, robotID, diagnosticID string, diag *domain.DiagnosticData) error {
	key, err := stub.CreateCompositeKey(robotDiagIndex, []string{robotID, diagnosticID})
	if err != nil {
		return fmt.Errorf("failed to create diagnostic key: %v", err)
	}
	return h.persistenceService.Put(stub, key, diag)
}

func (h *RobotHandler) createIndex(stub shim.ChaincodeStubInterface, objectType string, attributes []string) error {
	key, err := stub.CreateCompositeKey(objectType, attributes)
	if err != nil {
		return fmt.Errorf("failed to create composite key %s: %v", objectType, err)
	}
	if err := stub.PutState(key, []byte{0x00}); err != nil {
		return fmt.Errorf("failed to store index %s: %v", objectType, err)
	}
	return nil
}

// resolveIndex returns the last composite key attribute (the entity ID) for
// every index entry under the given partial key.
func (h *RobotHandler) resolveIndex(stub shim.ChaincodeStubInterface, objectType string, attributes []string) ([]string, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(objectType, attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to query index %s: %v", objectType, err)
	}
	defer iterator.Close()

	var ids []string
	for iterator.HasNext() {
		response, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate index %s: %v", objectType, err)
		}

		_, parts, err := stub.SplitCompositeKey(response.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to split composite key: %v", err)
		}
		ids = append(ids, parts[len(parts)-1])
	}

	return ids, nil
}
