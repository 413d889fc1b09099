// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice input errors
	CodeDieUnknown         Code = "DIE_UNKNOWN"
	CodeFaceOutOfRange     Code = "FACE_OUT_OF_RANGE"
	CodePoolEmpty          Code = "POOL_EMPTY"
	CodeNumericKindUnknown Code = "NUMERIC_KIND_UNKNOWN"
	CodeNumericCountRange  Code = "NUMERIC_COUNT_OUT_OF_RANGE"

	// Random/seed errors
	CodeSeedOutOfRange Code = "SEED_OUT_OF_RANGE"
	CodeSeedInvalid    Code = "SEED_INVALID"
)

// InvalidInput reports whether the code describes a caller mistake rather
// than an internal failure.
func (c Code) InvalidInput() bool {
	switch c {
	case CodeDieUnknown,
		CodeFaceOutOfRange,
		CodePoolEmpty,
		CodeNumericKindUnknown,
		CodeNumericCountRange,
		CodeSeedOutOfRange,
		CodeSeedInvalid:
		return true
	default:
		return false
	}
}
