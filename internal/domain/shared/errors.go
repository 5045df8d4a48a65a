package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// Calculation errors. Deterministic validation failures with no retry
// semantics; the caller decides user-facing presentation.
var (
	ErrUnknownDestination  = NewDomainError("UNKNOWN_DESTINATION", "Destination country is not mapped to a shipping zone")
	ErrWeightOutOfRange    = NewDomainError("WEIGHT_OUT_OF_RANGE", "No shipping bracket covers the given weight")
	ErrInvalidRate         = NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	ErrInvalidSellingPrice = NewDomainError("INVALID_SELLING_PRICE", "Selling price must be positive")
	ErrUnknownCategory     = NewDomainError("UNKNOWN_CATEGORY", "Category has no fee rate entry")
)
