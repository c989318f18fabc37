package webapp

import (
	"errors"
	"net/http"
	"net/url"

	// Packages
	digg "github.com/digg/go-digg"
	router "github.com/digg/go-digg/pkg/router"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router is the interface required to register HTTP handlers.
type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers one handler per route and, when backend is not
// nil, the API proxy.
func RegisterHandlers(r Router, routes []router.Route, users digg.Users, health digg.Health, backend *url.URL) error {
	var result error
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, r.RegisterFunc(path, handler, true, spec))
	}
	for i := range routes {
		route := &routes[i]
		switch {
		case route.Redirect != "":
			register(RedirectHandler(route))
		case route.Page == router.PageUsers:
			register(UsersPageHandler(route, users))
		case route.Page == router.PageHealth:
			register(HealthPageHandler(route, health))
		default:
			result = errors.Join(result, httpresponse.ErrNotImplemented.Withf("route %q: unknown page %q", route.Name, route.Page))
			continue
		}
		if hasTrailingSlashRoute(route) {
			register(TrailingSlashHandler(route))
		}
	}
	if backend != nil {
		register(ProxyHandler(backend))
	}
	return result
}
