package stats

// Error message constants
const (
	ErrMsgGameIDRequired      = "game id is required"
	ErrMsgOutcomeNotConcluded = "outcome state is not terminal"
	ErrMsgRecordOutcomeFailed = "failed to record outcome: %w"
	ErrMsgGetSummaryFailed    = "failed to get stats summary: %w"
	ErrMsgResetFailed         = "failed to reset stats: %w"
)

// Log message constants
const (
	LogMsgFailedToRecordOutcome = "Failed to record game outcome"
	LogMsgOutcomeRecorded       = "Game outcome recorded"
	LogMsgStatsReset            = "Statistics reset"
	LogMsgDecodeFailed          = "Failed to decode game concluded payload"
	LogMsgStoreLoadFailed       = "Could not load statistics, starting fresh"
	LogMsgStoreSaveFailed       = "Could not save statistics"
)
