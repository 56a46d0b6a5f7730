package config

// Entity prefixes for consistent key generation
const (
	// Robot domain prefixes
	RobotPrefix      = "ROBOT"
	DiagnosticPrefix = "DIAG"

	// Policy domain prefixes
	PolicyPrefix = "POL"

	// Claim domain prefixes
	ClaimPrefix      = "CLM"
	DocumentPrefix   = "DOC"
	AssessmentPrefix = "ASSESS"

	// Shared prefixes
	HistoryPrefix = "HIST"
	EventPrefix   = "EVENT"
)
