package digg

import (
	"context"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Users is the user resource of the backend
type Users interface {
	ListUsers(context.Context) ([]schema.User, error)
	GetUser(context.Context, string) (*schema.User, error)
	CreateUser(context.Context, schema.UserMeta) (*schema.User, error)
	UpdateUser(context.Context, string, schema.UserMeta) (*schema.User, error)
	DeleteUser(context.Context, string) error
	SearchUsers(context.Context, string) ([]schema.User, error)
	CountUsers(context.Context) (uint64, error)
	GetUserByEmail(context.Context, string) (*schema.User, error)
}

// Health is the health-check resource of the backend
type Health interface {
	Health(context.Context) (*schema.HealthReport, error)
	Liveness(context.Context) (*schema.HealthReport, error)
	Readiness(context.Context) (*schema.HealthReport, error)

	// Fetch all three probes concurrently
	Probes(context.Context) (*schema.HealthProbes, error)
}

// Document is the navigation target whose title is updated when a route
// with a title is entered
type Document interface {
	SetTitle(string)
}
