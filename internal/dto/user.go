package dto

// UserResponse exposes a user's cumulative points.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email"`
	Points int    `json:"points"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
