package sysinfo

import (
	"evalgo.org/webapp/internal/config"
	"evalgo.org/webapp/models"
)

// InstanceInfo merges the snapshot with the deployment descriptors.
func (s Snapshot) InstanceInfo(app config.AppConfig) models.InstanceInfo {
	return models.InstanceInfo{
		Hostname:       s.Hostname,
		IPAddress:      s.IPAddress,
		Platform:       s.Descriptor,
		RuntimeVersion: s.RuntimeVersion,
		Environment:    app.Environment,
		Region:         app.Region,
		InstanceID:     app.InstanceID,
		Timestamp:      models.FormatTimestamp(s.Time),
	}
}
