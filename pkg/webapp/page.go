package webapp

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	// Packages
	router "github.com/digg/go-digg/pkg/router"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Layout is the data common to every page
type Layout struct {
	Title string
	Error string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const contentTypeHTML = "text/html; charset=utf-8"

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newLayout(route *router.Route) Layout {
	return Layout{Title: router.Title(route)}
}

// render executes the named template into a buffer before writing, so a
// template error results in a 500 error response rather than a partial page
func render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Join(err, httpresponse.Error(w, httpresponse.ErrInternalError, err.Error()))
	}
	w.Header().Set(types.ContentTypeHeader, contentTypeHTML)
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
