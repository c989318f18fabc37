package webapp

import (
	"net/http"
	"strings"

	// Packages
	router "github.com/digg/go-digg/pkg/router"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: route.Path
// Any method is redirected to route.Redirect.
func RedirectHandler(route *router.Route) (string, http.HandlerFunc, *openapi.PathItem) {
	return route.Path, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, route.Redirect, http.StatusFound)
	}, nil
}

// Path: route.Path + "/"
// The page route with a trailing slash is redirected to route.Path, as
// navigation cleans the path the same way. The query is kept.
func TrailingSlashHandler(route *router.Route) (string, http.HandlerFunc, *openapi.PathItem) {
	return route.Path + "/{$}", func(w http.ResponseWriter, r *http.Request) {
		target := route.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}, nil
}

// hasTrailingSlashRoute reports whether a page route is an exact path which
// also needs its trailing-slash form
func hasTrailingSlashRoute(route *router.Route) bool {
	return route.Page != "" && !strings.HasSuffix(route.Path, "/") && !strings.HasSuffix(route.Path, "}")
}
