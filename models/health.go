package models

// Health is the liveness probe payload served at /health.
//
// Example JSON representation:
//
//	{
//	  "status": "healthy",
//	  "timestamp": "2026-10-19T08:15:02.123456Z",
//	  "service": "aws-scalable-webapp",
//	  "version": "1.0.0"
//	}
type Health struct {
	// Status is always StatusHealthy
	Status string `json:"status" example:"healthy"`

	// Timestamp is the response time in ISO-8601
	Timestamp string `json:"timestamp" example:"2026-10-19T08:15:02.123456Z"`

	// Service is the fixed service name
	Service string `json:"service" example:"aws-scalable-webapp"`

	// Version is the fixed API version
	Version string `json:"version" example:"1.0.0"`
}
