package models

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the body of every failed API call. Kind is
// machine-checkable, Message is meant for humans.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// MessageResponse carries a plain informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
