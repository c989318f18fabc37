package schema

import "time"

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	// AppName is appended to every page title
	AppName = "Digg App"

	// DefaultEndpoint is the backend base URL
	DefaultEndpoint = "http://localhost:8080"

	// DefaultTimeout bounds every backend round trip
	DefaultTimeout = 10 * time.Second

	// APIPrefix is the path prefix proxied to the backend by the web front-end
	APIPrefix = "/api"
)

// Backend resource path segments. Each constant is a single segment, since
// the client escapes any slash within a segment.
const (
	UserPath        = "users"
	UserSearchPath  = "search"
	UserCountPath   = "count"
	UserEmailPath   = "email"
	HealthPath      = "q"
	HealthSubPath   = "health"
	HealthLivePath  = "live"
	HealthReadyPath = "ready"
)
