package model

// ErrorResponse is the standard envelope for error responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the structured error information returned by the API.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for endpoints that report an outcome
// without returning a resource, such as deletes and bulk replaces.
type MessageResponse struct {
	Message string `json:"message"`
}
