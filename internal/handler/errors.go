package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Game error messages
	ErrMsgInvalidGameID = "Invalid game ID"
	ErrMsgInvalidSeed   = "Invalid seed parameter"
)

// Success messages for API responses
const (
	MsgStatsResetSuccess = "Statistics reset successfully"
)
