package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound     ErrCode = "NOT_FOUND"
	ErrUnknownChart ErrCode = "UNKNOWN_CHART"
	ErrEmptyResult  ErrCode = "EMPTY_RESULT"

	// ─── Server ────────────────────────────────────────────────────────
	ErrExportFailed ErrCode = "EXPORT_FAILED"
	ErrInternal     ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrNotFound:
		return "Resource not found."
	case ErrUnknownChart:
		return "Unknown chart name."
	case ErrEmptyResult:
		return "No districts match the selected filters."
	case ErrExportFailed:
		return "Failed to build the export file."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
