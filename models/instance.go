package models

// InstanceInfo describes the instance serving the request. It is returned
// by /api/info and rendered on the landing page.
//
// Hostname and IPAddress are "Unknown" when the host could not be resolved.
type InstanceInfo struct {
	Hostname       string `json:"hostname" example:"ip-10-0-1-15"`
	IPAddress      string `json:"ip_address" example:"10.0.1.15"`
	Platform       string `json:"platform" example:"Linux-6.1.0-x86_64-with-amzn-2023"`
	RuntimeVersion string `json:"runtime_version" example:"go1.25.0"`
	Environment    string `json:"environment" example:"Production"`
	Region         string `json:"region" example:"us-east-1"`
	InstanceID     string `json:"instance_id" example:"i-0abc123def4567890"`
	Timestamp      string `json:"timestamp" example:"2026-10-19T08:15:02.123456Z"`
}
