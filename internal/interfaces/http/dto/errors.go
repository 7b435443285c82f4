package dto

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
)

// Sync error codes
const (
	// ErrCodeSyncDisabled is used when sync has been turned off in configuration
	ErrCodeSyncDisabled = "ERR_SYNC_DISABLED"
	// ErrCodeSyncBusy is used when a sync job of the same kind is already running
	ErrCodeSyncBusy = "ERR_SYNC_BUSY"
)
