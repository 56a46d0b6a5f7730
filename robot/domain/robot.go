package domain

// RobotType categorizes the robot platform
type RobotType string

const (
	RobotTypeHumanoid   RobotType = "humanoid"
	RobotTypeIndustrial RobotType = "industrial"
	RobotTypeService    RobotType = "service"
	RobotTypeCompanion  RobotType = "companion"
	RobotTypeMedical    RobotType = "medical"
)

// IsValid checks if the robot type is a known value
func (rt RobotType) IsValid() bool {
	switch rt {
	case RobotTypeHumanoid, RobotTypeIndustrial, RobotTypeService, RobotTypeCompanion, RobotTypeMedical:
		return true
	}
	return false
}

// RobotStatus represents the operational status of a robot
type RobotStatus string

const (
	RobotStatusActive         RobotStatus = "active"
	RobotStatusInactive       RobotStatus = "inactive"
	RobotStatusMaintenance    RobotStatus = "maintenance"
	RobotStatusDecommissioned RobotStatus = "decommissioned"
)

// IsValid checks if the robot status is a known value
func (rs RobotStatus) IsValid() bool {
	switch rs {
	case RobotStatusActive, RobotStatusInactive, RobotStatusMaintenance, RobotStatusDecommissioned:
		return true
	}
	return false
}

// UsageScenario describes the environment the robot operates in
type UsageScenario string

const (
	UsageScenarioDomestic   UsageScenario = "domestic"
	UsageScenarioCommercial UsageScenario = "commercial"
	UsageScenarioIndustrial UsageScenario = "industrial"
	UsageScenarioHealthcare UsageScenario = "healthcare"
	UsageScenarioEducation  UsageScenario = "education"
	UsageScenarioResearch   UsageScenario = "research"
)

// IsValid checks if the usage scenario is a known value
func (us UsageScenario) IsValid() bool {
	switch us {
	case UsageScenarioDomestic, UsageScenarioCommercial, UsageScenarioIndustrial,
		UsageScenarioHealthcare, UsageScenarioEducation, UsageScenarioResearch:
		return true
	}
	return false
}

// RobotSpecifications holds the technical specification sheet of a robot
type RobotSpecifications struct {
	HeightCM                float64  `json:"height_cm"`
	WeightKG                float64  `json:"weight_kg"`
	MaxSpeedKMH             float64  `json:"max_speed_kmh"`
	BatteryCapacityKWH      float64  `json:"battery_capacity_kwh"`
	OperatingTemperatureMin float64  `json:"operating_temperature_min"`
	OperatingTemperatureMax float64  `json:"operating_temperature_max"`
	IPRating                string   `json:"ip_rating"`
	Certifications          []string `json:"certifications,omitempty"`
	Sensors                 []string `json:"sensors,omitempty"`
	Actuators               []string `json:"actuators,omitempty"`
	AICapabilities          []string `json:"ai_capabilities,omitempty"`
	Connectivity            []string `json:"connectivity,omitempty"`
}

// DiagnosticData captures a telemetry snapshot reported by a robot
type DiagnosticData struct {
	Timestamp          string             `json:"timestamp"`
	BatteryLevel       float64            `json:"battery_level"`
	Temperature        float64            `json:"temperature"`
	ErrorCodes         []string           `json:"error_codes,omitempty"`
	PerformanceMetrics map[string]float64 `json:"performance_metrics,omitempty"`
	SensorReadings     map[string]float64 `json:"sensor_readings,omitempty"`
	OperationalHours   float64            `json:"operational_hours"`
	MaintenanceAlerts  []string           `json:"maintenance_alerts,omitempty"`
}

// Robot represents an insured robot on the ledger
type Robot struct {
	RobotID        string               `json:"robot_id"`
	SerialNumber   string               `json:"serial_number"`
	ManufacturerID string               `json:"manufacturer_id"`
	OwnerID        string               `json:"owner_id"`
	RobotType      RobotType            `json:"robot_type"`
	Model          string               `json:"model"`
	Status         RobotStatus          `json:"status"`
	UsageScenario  UsageScenario        `json:"usage_scenario"`
	Specifications *RobotSpecifications `json:"specifications,omitempty"`
	DiagnosticData *DiagnosticData      `json:"diagnostic_data,omitempty"`
	Location       string               `json:"location,omitempty"`

	CreatedDate        string `json:"created_date"`
	LastModified       string `json:"last_modified"`
	LastDiagnosticDate string `json:"last_diagnostic_date,omitempty"`
}

// RobotRegistrationRequest represents a request to register a new robot
type RobotRegistrationRequest struct {
	SerialNumber   string               `json:"serial_number"`
	ManufacturerID string               `json:"manufacturer_id"`
	OwnerID        string               `json:"owner_id"`
	RobotType      RobotType            `json:"robot_type"`
	Model          string               `json:"model"`
	UsageScenario  UsageScenario        `json:"usage_scenario"`
	Specifications *RobotSpecifications `json:"specifications,omitempty"`
	Location       string               `json:"location,omitempty"`
}

// RobotUpdateRequest represents a request to update an existing robot
type RobotUpdateRequest struct {
	RobotID        string               `json:"robot_id"`
	Status         *RobotStatus         `json:"status,omitempty"`
	UsageScenario  *UsageScenario       `json:"usage_scenario,omitempty"`
	Specifications *RobotSpecifications `json:"specifications,omitempty"`
	DiagnosticData *DiagnosticData      `json:"diagnostic_data,omitempty"`
	Location       *string              `json:"location,omitempty"`
}
