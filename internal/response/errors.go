package response

// ErrCode is a typed error code enum for consistent error identification
// across the store, repositories, and services.
type ErrCode string

const (
	// ─── Lookups ───────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Mutations ─────────────────────────────────────────────────────
	ErrDuplicateKey      ErrCode = "DUPLICATE_KEY"
	ErrDanglingReference ErrCode = "DANGLING_REFERENCE"
	ErrPartialCascade    ErrCode = "PARTIAL_CASCADE"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"

	// ─── Storage ───────────────────────────────────────────────────────
	ErrIO ErrCode = "IO_ERROR"

	// ─── Fallback ──────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrNotFound:
		return "Record not found."
	case ErrDuplicateKey:
		return "A record with that key already exists."
	case ErrDanglingReference:
		return "Referenced course does not exist."
	case ErrPartialCascade:
		return "The operation only partially completed. Please retry the remaining step."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidCredentials:
		return "Invalid user id or password."
	case ErrIO:
		return "A storage read/write error occurred."
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}
