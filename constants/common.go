package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Stages
	ProdEnvironment = "prod"

	// Target environments
	SandboxEnvironment = "sandbox"

	// API versions
	APIVersionV1 = "v1_0"
	APIVersionV2 = "v2_0"

	// Party id types
	PartyIDTypeMSISDN = "MSISDN"
	PartyIDTypeEmail  = "EMAIL"
	PartyIDTypeAlias  = "PARTY_CODE"

	// Transaction statuses
	PendingStatus    = "PENDING"
	SuccessfulStatus = "SUCCESSFUL"
	FailedStatus     = "FAILED"
)

// Header names required by the MoMo API
const (
	SubscriptionKeyHeader   = "Ocp-Apim-Subscription-Key"
	TargetEnvironmentHeader = "X-Target-Environment"
	ReferenceIDHeader       = "X-Reference-Id"
	CallbackURLHeader       = "X-Callback-Url"
)
