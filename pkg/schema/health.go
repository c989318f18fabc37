package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type HealthStatus string

// HealthCheck is one named check within a health report. Data is passed
// through as the backend sent it.
type HealthCheck struct {
	Name   string         `json:"name"`
	Status HealthStatus   `json:"status"`
	Data   map[string]any `json:"data,omitempty"`
}

// HealthReport is the payload of the overall, liveness and readiness probes.
type HealthReport struct {
	Status HealthStatus  `json:"status"`
	Checks []HealthCheck `json:"checks"`
}

// HealthProbes holds the three probe reports fetched together.
type HealthProbes struct {
	Overall   *HealthReport `json:"overall"`
	Liveness  *HealthReport `json:"liveness"`
	Readiness *HealthReport `json:"readiness"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	HealthUp   HealthStatus = "UP"
	HealthDown HealthStatus = "DOWN"
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r HealthReport) String() string {
	return types.Stringify(r)
}

func (r HealthProbes) String() string {
	return types.Stringify(r)
}
