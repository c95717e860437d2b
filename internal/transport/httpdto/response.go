// Package httpdto defines the wire-level request and response shapes.
// Success payloads are flat: the payload fields sit next to "success"
// rather than under a data key.
package httpdto

// ErrorResponse is the envelope for explicitly handled failures, such as a
// login against an unknown phone.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// InternalErrorMessage is the body for failures the handlers do not map to
// a specific status.
const InternalErrorMessage = "Internal server error"

// PlainError is the bare error shape used for unmatched method/action
// combinations and internal failures.
type PlainError struct {
	Error string `json:"error"`
}

func NewPlainError(msg string) PlainError {
	return PlainError{Error: msg}
}

// OKResponse is the minimal success envelope.
type OKResponse struct {
	Success bool `json:"success"`
}

func NewOKResponse() OKResponse {
	return OKResponse{Success: true}
}
