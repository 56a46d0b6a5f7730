package domain

import (
	"github.com/robosure-platform/fabric-chaincode/shared/config"
	"github.com/robosure-platform/fabric-chaincode/shared/validation"
)

// Rule identifiers for robot cross-field rules
const (
	RuleHumanoidDimensions      = "humanoid_dimensions"
	RuleIndustrialCertification = "industrial_certification"
	RuleHealthcareCertification = "healthcare_certification"
	RuleTemperatureRange        = "temperature_range"
	RuleTimestampFormat         = "timestamp_format"
)

// Rules holds the tunable validation configuration for robots. Values are
// fixed at construction; a Validator never mutates them.
type Rules struct {
	MaxHeightCM           float64
	MaxWeightKG           float64
	MaxSpeedKMH           float64
	MaxBatteryCapacityKWH float64
	MinOperatingTempC     float64
	MaxOperatingTempC     float64

	HumanoidMinHeightCM float64
	HumanoidMaxHeightCM float64
	HumanoidMaxWeightKG float64

	IndustrialCertifications []string
	HealthcareCertification  string
}

// DefaultRules returns the standard robot validation configuration.
func DefaultRules() Rules {
	return Rules{
		MaxHeightCM:           300,
		MaxWeightKG:           1000,
		MaxSpeedKMH:           50,
		MaxBatteryCapacityKWH: 100,
		MinOperatingTempC:     -40,
		MaxOperatingTempC:     85,

		HumanoidMinHeightCM: 50,
		HumanoidMaxHeightCM: 250,
		HumanoidMaxWeightKG: 200,

		IndustrialCertifications: []string{"ISO 10218", "IEC 61508"},
		HealthcareCertification:  "IEC 60601",
	}
}

// Validator validates robot registration and update requests.
type Validator struct {
	rules Rules
}

// NewValidator creates a robot validator with the given rule configuration.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// ValidateRegistration validates a registration request, normalizing the
// serial number and trimmed text fields in place.
func (v *Validator) ValidateRegistration(request *RobotRegistrationRequest) *validation.Result {
	result := validation.NewResult()

	request.SerialNumber = validation.NormalizeSerialNumber(request.SerialNumber)
	if request.SerialNumber == "" {
		result.Add("serial_number", validation.RuleRequired, "serial number is required")
	} else {
		validation.SerialNumberRule.Apply(result, "serial_number", request.SerialNumber)
	}

	v.checkIdentifier(result, "manufacturer_id", request.ManufacturerID)
	v.checkIdentifier(result, "owner_id", request.OwnerID)

	request.Model = validation.CheckRequiredText(result, "model", request.Model)

	if !request.RobotType.IsValid() {
		result.Addf("robot_type", validation.RuleInvalidEnum, "unknown robot type %q", request.RobotType)
	}
	if !request.UsageScenario.IsValid() {
		result.Addf("usage_scenario", validation.RuleInvalidEnum, "unknown usage scenario %q", request.UsageScenario)
	}

	if request.Location != "" {
		validation.CreateMaxLengthRule(config.MaxLocationLength).Apply(result, "location", request.Location)
	}

	// Every registered robot carries a specification sheet; only diagnostic
	// data is optional.
	if request.Specifications == nil {
		validation.RequiredRule.Apply(result, "specifications", nil)
	} else {
		result.MergeAt("specifications", v.ValidateSpecifications(request.Specifications))
	}

	// Configuration rules only fire once the specification fields themselves
	// are known good.
	if result.OK() {
		result.Merge(v.ValidateConfiguration(request.RobotType, request.UsageScenario, request.Specifications))
	}

	return result
}

// ValidateUpdate validates an update request. Only supplied fields are
// validated; the configuration cross-check is the caller's responsibility
// once the update has been merged into the stored robot.
func (v *Validator) ValidateUpdate(request *RobotUpdateRequest) *validation.Result {
	result := validation.NewResult()

	v.checkIdentifier(result, "robot_id", request.RobotID)

	if request.Status != nil && !request.Status.IsValid() {
		result.Addf("status", validation.RuleInvalidEnum, "unknown robot status %q", *request.Status)
	}
	if request.UsageScenario != nil && !request.UsageScenario.IsValid() {
		result.Addf("usage_scenario", validation.RuleInvalidEnum, "unknown usage scenario %q", *request.UsageScenario)
	}
	if request.Location != nil {
		validation.CreateMaxLengthRule(config.MaxLocationLength).Apply(result, "location", *request.Location)
	}
	if request.Specifications != nil {
		result.MergeAt("specifications", v.ValidateSpecifications(request.Specifications))
	}
	if request.DiagnosticData != nil {
		result.MergeAt("diagnostic_data", v.ValidateDiagnosticData(request.DiagnosticData))
	}

	return result
}

// ValidateSpecifications validates a specification sheet. Field paths in the
// returned result are relative to the specifications object.
func (v *Validator) ValidateSpecifications(specs *RobotSpecifications) *validation.Result {
	result := validation.NewResult()

	if specs.HeightCM <= 0 || specs.HeightCM > v.rules.MaxHeightCM {
		result.Addf("height_cm", validation.RuleValueRange,
			"value %v outside allowed range (0, %v]", specs.HeightCM, v.rules.MaxHeightCM)
	}
	if specs.WeightKG <= 0 || specs.WeightKG > v.rules.MaxWeightKG {
		result.Addf("weight_kg", validation.RuleValueRange,
			"value %v outside allowed range (0, %v]", specs.WeightKG, v.rules.MaxWeightKG)
	}
	validation.CreateRangeRule(0, v.rules.MaxSpeedKMH).Apply(result, "max_speed_kmh", specs.MaxSpeedKMH)
	if specs.BatteryCapacityKWH <= 0 || specs.BatteryCapacityKWH > v.rules.MaxBatteryCapacityKWH {
		result.Addf("battery_capacity_kwh", validation.RuleValueRange,
			"value %v outside allowed range (0, %v]", specs.BatteryCapacityKWH, v.rules.MaxBatteryCapacityKWH)
	}

	tempRule := validation.CreateRangeRule(v.rules.MinOperatingTempC, v.rules.MaxOperatingTempC)
	tempRule.Apply(result, "operating_temperature_min", specs.OperatingTemperatureMin)
	tempRule.Apply(result, "operating_temperature_max", specs.OperatingTemperatureMax)
	if specs.OperatingTemperatureMax <= specs.OperatingTemperatureMin {
		result.Add("operating_temperature_max", RuleTemperatureRange,
			"maximum operating temperature must be greater than minimum")
	}

	validation.IPRatingRule.Apply(result, "ip_rating", specs.IPRating)

	validation.CheckStringList(result, "certifications", specs.Certifications)
	validation.CheckStringList(result, "sensors", specs.Sensors)
	validation.CheckStringList(result, "actuators", specs.Actuators)
	validation.CheckStringList(result, "ai_capabilities", specs.AICapabilities)
	validation.CheckStringList(result, "connectivity", specs.Connectivity)

	return result
}

// ValidateDiagnosticData validates a telemetry snapshot. Field paths in the
// returned result are relative to the diagnostic data object.
func (v *Validator) ValidateDiagnosticData(diag *DiagnosticData) *validation.Result {
	result := validation.NewResult()

	if diag.Timestamp == "" {
		result.Add("timestamp", validation.RuleRequired, "timestamp is required")
	}

	validation.CreateRangeRule(0, 100).Apply(result, "battery_level", diag.BatteryLevel)

	if diag.OperationalHours < 0 {
		result.Addf("operational_hours", validation.RuleValueRange,
			"operational hours cannot be negative, got %v", diag.OperationalHours)
	}

	validation.CheckStringList(result, "error_codes", diag.ErrorCodes)
	validation.CheckStringList(result, "maintenance_alerts", diag.MaintenanceAlerts)

	return result
}

// ValidateConfiguration runs the type/usage-conditioned specification rules.
// Callers must only invoke it when robot type, usage scenario and
// specifications are all present.
func (v *Validator) ValidateConfiguration(robotType RobotType, usage UsageScenario, specs *RobotSpecifications) *validation.Result {
	result := validation.NewResult()

	if robotType == RobotTypeHumanoid {
		if specs.HeightCM < v.rules.HumanoidMinHeightCM || specs.HeightCM > v.rules.HumanoidMaxHeightCM {
			result.Addf("specifications.height_cm", RuleHumanoidDimensions,
				"humanoid robots must be between %v and %v cm tall, got %v",
				v.rules.HumanoidMinHeightCM, v.rules.HumanoidMaxHeightCM, specs.HeightCM)
		}
		if specs.WeightKG > v.rules.HumanoidMaxWeightKG {
			result.Addf("specifications.weight_kg", RuleHumanoidDimensions,
				"humanoid robots cannot weigh more than %v kg, got %v",
				v.rules.HumanoidMaxWeightKG, specs.WeightKG)
		}
	}

	if usage == UsageScenarioIndustrial && !hasAnyCertification(specs.Certifications, v.rules.IndustrialCertifications) {
		result.Addf("specifications.certifications", RuleIndustrialCertification,
			"industrial usage requires one of the certifications %v", v.rules.IndustrialCertifications)
	}

	if usage == UsageScenarioHealthcare && !hasCertification(specs.Certifications, v.rules.HealthcareCertification) {
		result.Addf("specifications.certifications", RuleHealthcareCertification,
			"healthcare usage requires certification %q", v.rules.HealthcareCertification)
	}

	return result
}

func (v *Validator) checkIdentifier(result *validation.Result, fieldPath, value string) {
	if value == "" {
		result.Add(fieldPath, validation.RuleRequired, fieldPath+" is required")
		return
	}
	validation.IdentifierRule.Apply(result, fieldPath, value)
	validation.CreateMaxLengthRule(config.MaxIdentifierLength).Apply(result, fieldPath, value)
}

func hasCertification(certifications []string, required string) bool {
	for _, cert := range certifications {
		if cert == required {
			return true
		}
	}
	return false
}

func hasAnyCertification(certifications []string, accepted []string) bool {
	for _, required := range accepted {
		if hasCertification(certifications, required) {
			return true
		}
	}
	return false
}
