package router

import (
	"fmt"
	"net/http"
	"net/url"
	"path"

	// Packages
	digg "github.com/digg/go-digg"
	schema "github.com/digg/go-digg/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router resolves paths against a route table. Matching is performed by
// a net/http.ServeMux, so the most specific pattern wins.
type Router struct {
	mux      *http.ServeMux
	routes   map[string]*Route
	fallback *Route
}

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// maxRedirects bounds redirect chains within the table
const maxRedirects = 10

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a router for the given routes, which are matched in the order
// given when patterns are equally specific. The last route without a page is
// used when nothing matches.
func New(routes ...Route) (r *Router, err error) {
	r = &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]*Route, len(routes)),
	}

	// ServeMux panics on invalid or conflicting patterns
	defer func() {
		if v := recover(); v != nil {
			r, err = nil, httpresponse.ErrInternalError.Withf("invalid route table: %v", v)
		}
	}()

	for i := range routes {
		route := routes[i]
		if route.Page == "" && route.Redirect == "" {
			return nil, httpresponse.ErrInternalError.Withf("route %q: missing page or redirect", route.Name)
		}
		if _, exists := r.routes[route.Path]; exists {
			return nil, httpresponse.ErrInternalError.Withf("route %q: duplicate path %q", route.Name, route.Path)
		}
		r.mux.Handle(route.Path, http.NotFoundHandler())
		r.routes[route.Path] = &route
		if route.Page == "" {
			r.fallback = &route
		}
	}

	// Return success
	return r, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Match returns the route which directly matches the path, without following
// redirects, or nil.
func (r *Router) Match(p string) *Route {
	u := &url.URL{Path: clean(p)}
	req := &http.Request{Method: http.MethodGet, URL: u, Host: "localhost"}
	if _, pattern := r.mux.Handler(req); pattern != "" {
		if route, exists := r.routes[pattern]; exists {
			return route
		}
	}
	return r.fallback
}

// Resolve follows redirects from p and returns the route which displays a
// page together with the path that was finally navigated to.
func (r *Router) Resolve(p string) (*Route, string, error) {
	p = clean(p)
	for i := 0; i < maxRedirects; i++ {
		route := r.Match(p)
		if route == nil {
			return nil, p, httpresponse.ErrNotFound.With(p)
		}
		if route.Redirect == "" {
			return route, p, nil
		}
		p = clean(route.Redirect)
	}
	return nil, p, httpresponse.ErrInternalError.Withf("too many redirects: %q", p)
}

// Navigate resolves p and, when the resolved route has a title, sets the
// document title. It returns the resolved route and path.
func (r *Router) Navigate(doc digg.Document, p string) (*Route, string, error) {
	route, p, err := r.Resolve(p)
	if err != nil {
		return nil, p, err
	}
	if title := Title(route); title != "" && doc != nil {
		doc.SetTitle(title)
	}
	return route, p, nil
}

// Route returns the route registered with the pattern, or nil.
func (r *Router) Route(pattern string) *Route {
	return r.routes[pattern]
}

// Title returns the document title for a route, or the empty string when
// the route carries no title.
func Title(route *Route) string {
	if route == nil || route.Meta.Title == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", route.Meta.Title, schema.AppName)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func clean(p string) string {
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}
