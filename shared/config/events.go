package config

// Event names for cross-chaincode communication
const (
	// Robot events
	EventRobotRegistered     = "RobotRegistered"
	EventRobotUpdated        = "RobotUpdated"
	EventRobotDecommissioned = "RobotDecommissioned"
	EventDiagnosticRecorded  = "DiagnosticRecorded"

	// Policy events
	EventPolicyCreated = "PolicyCreated"
	EventPolicyUpdated = "PolicyUpdated"

	// Claim events
	EventClaimFiled         = "ClaimFiled"
	EventClaimUpdated       = "ClaimUpdated"
	EventClaimStatusChanged = "ClaimStatusChanged"
	EventClaimSettled       = "ClaimSettled"
	EventClaimAssessed      = "ClaimAssessed"
)
