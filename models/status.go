package models

// Status is the operational summary served at /api/status.
// Checks are reported values, not live probes of any dependency.
type Status struct {
	Status    string       `json:"status" example:"operational"`
	Uptime    string       `json:"uptime" example:"running"`
	Checks    StatusChecks `json:"checks"`
	Timestamp string       `json:"timestamp" example:"2026-10-19T08:15:02.123456Z"`
}

// StatusChecks lists the named sub-checks of Status.
type StatusChecks struct {
	Database         string `json:"database" example:"healthy"`
	Cache            string `json:"cache" example:"healthy"`
	ExternalServices string `json:"external_services" example:"healthy"`
}
