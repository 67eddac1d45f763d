package errors

// ErrorResponse is the body of every 4xx/5xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
