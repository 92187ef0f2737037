package models

// HealthResponse is the body of GET /health. Kept deliberately minimal:
// uptime monitors only check the status code and this one field.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Message is a human-readable description of what went wrong.
	Message string `json:"message"`
}

// VersionResponse is the body of GET /version with build-time metadata.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
