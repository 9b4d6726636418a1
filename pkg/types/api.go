package types

// HealthResponse is returned by GET /health. Load balancers, the container
// health probe and the deploy smoke test all consume this shape.
type HealthResponse struct {
	// Service health state; always "healthy" when the server can answer.
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// Time the response was produced, RFC 3339 in UTC.
	// example: 2025-08-25T12:00:00Z
	Timestamp string `json:"timestamp" example:"2025-08-25T12:00:00Z"`
	// Semantic version of the running build.
	// example: 1.0.0
	Version string `json:"version" example:"1.0.0"`
}

// InfoResponse is returned by GET /api/info.
type InfoResponse struct {
	// Static greeting identifying the service.
	// example: Hello from the DevOps demo app!
	Message string `json:"message" example:"Hello from the DevOps demo app!"`
	// Deployment environment the server was started with.
	// example: development
	Environment string `json:"environment" example:"development"`
	// Semantic version of the running build.
	// example: 1.0.0
	Version string `json:"version" example:"1.0.0"`
	// Hostname of the machine or container serving the request.
	// example: 7c1d3be4f9a2
	Hostname string `json:"hostname" example:"7c1d3be4f9a2"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: not found
	Error string `json:"error" example:"not found"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// HealthStatusHealthy is the only status value a reachable server reports.
const HealthStatusHealthy = "healthy"
