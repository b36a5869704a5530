package dto

// ErrorResponse is the uniform error body for all API endpoints.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Required []string `json:"required,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
