package webapp

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /api/
// Any request is forwarded to the backend with the /api prefix removed.
func ProxyHandler(backend *url.URL) (string, http.HandlerFunc, *openapi.PathItem) {
	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(backend)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			_ = httpresponse.Error(w, httpresponse.ErrGatewayError, err.Error())
		},
	}
	return schema.APIPrefix + "/", func(w http.ResponseWriter, r *http.Request) {
			http.StripPrefix(schema.APIPrefix, proxy).ServeHTTP(w, r)
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Backend API, forwarded to " + strings.TrimSuffix(backend.String(), "/"),
			},
		})
}
