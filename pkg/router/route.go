package router

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Page identifies the page displayed for a route
type Page string

// Meta is optional route metadata
type Meta struct {
	Title string `json:"title,omitempty"`
}

// Route maps a path pattern to a page, or redirects to another path.
// Path uses net/http.ServeMux pattern syntax.
type Route struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Page     Page   `json:"page,omitempty"`
	Redirect string `json:"redirect,omitempty"`
	Meta     Meta   `json:"meta,omitzero"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PageUsers  Page = "UserManagement"
	PageHealth Page = "HealthStatus"
)

// Routes is the route table of the front-end
var Routes = []Route{
	{
		Path: "/{$}",
		Name: "UserManagement",
		Page: PageUsers,
		Meta: Meta{Title: "User Management"},
	},
	{
		Path: "/health",
		Name: "HealthStatus",
		Page: PageHealth,
		Meta: Meta{Title: "Health Status"},
	},
	{
		Path:     "/",
		Name:     "NotFound",
		Redirect: "/",
	},
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Route) String() string {
	return types.Stringify(r)
}
