package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
)

// Calculation error codes
const (
	// ErrCodeUnknownDestination is used when a country has no shipping zone
	ErrCodeUnknownDestination = "ERR_UNKNOWN_DESTINATION"
	// ErrCodeWeightOutOfRange is used when no shipping bracket covers a weight
	ErrCodeWeightOutOfRange = "ERR_WEIGHT_OUT_OF_RANGE"
	// ErrCodeInvalidRate is used when an exchange rate is not positive
	ErrCodeInvalidRate = "ERR_INVALID_RATE"
	// ErrCodeInvalidSellingPrice is used when a selling price is not positive
	ErrCodeInvalidSellingPrice = "ERR_INVALID_SELLING_PRICE"
	// ErrCodeUnknownCategory is used when a category has no fee rate entry
	ErrCodeUnknownCategory = "ERR_UNKNOWN_CATEGORY"
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

// Upstream error codes
const (
	// ErrCodeUpstream is used when a dependency such as the rate API fails
	ErrCodeUpstream = "ERR_UPSTREAM"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	// Calculation errors -> 422 Unprocessable Entity: the request was
	// well-formed, the numbers just don't admit an answer
	ErrCodeUnknownDestination:  http.StatusUnprocessableEntity,
	ErrCodeWeightOutOfRange:    http.StatusUnprocessableEntity,
	ErrCodeUnknownCategory:     http.StatusUnprocessableEntity,
	ErrCodeInvalidState:        http.StatusUnprocessableEntity,
	ErrCodeInvalidRate:         http.StatusBadRequest,
	ErrCodeInvalidSellingPrice: http.StatusBadRequest,

	ErrCodeUpstream: http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVALID_STATE":         ErrCodeInvalidState,
	"UNKNOWN_DESTINATION":   ErrCodeUnknownDestination,
	"WEIGHT_OUT_OF_RANGE":   ErrCodeWeightOutOfRange,
	"INVALID_RATE":          ErrCodeInvalidRate,
	"INVALID_SELLING_PRICE": ErrCodeInvalidSellingPrice,
	"UNKNOWN_CATEGORY":      ErrCodeUnknownCategory,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already in the API format or unknown come back as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
