package webapp

import (
	"net/http"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Mux registers handlers on the ServeMux underneath an httprouter.Router and
// adds their path items to the router's OpenAPI spec.
type Mux struct {
	mux        *http.ServeMux
	spec       *openapi.Spec
	middleware []func(http.HandlerFunc) http.HandlerFunc
}

var _ Router = (*Mux)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMux returns a Mux for mux. The spec may be nil. Middleware is applied
// to handlers registered with middleware set, the first one outermost.
func NewMux(mux *http.ServeMux, spec *openapi.Spec, middleware ...func(http.HandlerFunc) http.HandlerFunc) *Mux {
	return &Mux{mux: mux, spec: spec, middleware: middleware}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterFunc registers handler for the path pattern. A pattern which is
// invalid or already registered returns an error.
func (m *Mux) RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = httpresponse.ErrConflict.Withf("%v", v)
		}
	}()
	if middleware {
		for i := len(m.middleware) - 1; i >= 0; i-- {
			handler = m.middleware[i](handler)
		}
	}
	m.mux.HandleFunc(path, handler)
	if spec != nil && m.spec != nil {
		m.spec.AddPath(path, spec)
	}
	return nil
}
