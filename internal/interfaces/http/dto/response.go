// Package dto defines the wire payloads. The surface is flat: list
// endpoints return bare arrays, create/delete return the bare record,
// update and login wrap the record with a confirmation message, and every
// failure is `{"error": "..."}` with a generic human-readable message.
package dto

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// LoginUser is the public view of an authenticated user
type LoginUser struct {
	Username string `json:"username"`
}

// LoginResponse is the body of a successful login
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}
