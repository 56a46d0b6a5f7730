package config

// Application constants
const (
	// Validation limits
	MaxIdentifierLength  = 255
	MaxLocationLength    = 500
	MaxDescriptionLength = 5000
	MaxNoteLength        = 2000
	MinNoteLength        = 10
	MinDescriptionLength = 20

	// Monetary policy
	MaxMonetaryAmount = 10000000.0 // 10 million ceiling on claim amounts

	// Policy business rules
	MinPolicyTermDays  = 30
	MaxPolicyTermDays  = 1825 // 5 years
	MaxDeductibleRatio = 0.5  // deductible vs coverage limit
	MaxPremiumRatio    = 0.2  // annual premium vs coverage limit

	// Claim business rules
	MaxSupportingDocuments = 20
	MaxDocumentSizeBytes   = 50 * 1024 * 1024 // 50MB

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
)
