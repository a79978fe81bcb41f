package schema

// Custom string types for type safety.
type (
	// GradingType tags where a grading came from.
	GradingType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for grading storage.
	DatabaseBackend string
)

// All grading types supported.
const (
	AIGrading     GradingType = "ai"
	ManualGrading GradingType = "manual" // default
	FinalGrading  GradingType = "final"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// Notification events emitted by the grading service.
const (
	EventGradingCreated   = "grading.created"
	EventGradingAIApplied = "grading.ai.applied"
)

// NotificationSource identifies this service in every notification envelope.
const NotificationSource = "grading-service"

// AIAuthor is the feedback author used when an automated process writes feedback.
const AIAuthor = "ai"

// ValidGradingTypes lists all valid grading types.
var ValidGradingTypes = map[GradingType]struct{}{
	AIGrading:     {},
	ManualGrading: {},
	FinalGrading:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid storage backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
