package webapp

import (
	"context"
	"net/http"

	// Packages
	digg "github.com/digg/go-digg"
	httpclient "github.com/digg/go-digg/pkg/httpclient"
	router "github.com/digg/go-digg/pkg/router"
	schema "github.com/digg/go-digg/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type healthPage struct {
	Layout
	Probes []*probe
}

type probe struct {
	Name   string
	Report *schema.HealthReport
	Error  string
	fn     func(context.Context) (*schema.HealthReport, error)
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: route.Path
// GET shows the overall, liveness and readiness probes.
func HealthPageHandler(route *router.Route, health digg.Health) (string, http.HandlerFunc, *openapi.PathItem) {
	return route.Path, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = healthGet(w, r, route, health)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: route.Meta.Title,
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func healthGet(w http.ResponseWriter, r *http.Request, route *router.Route, health digg.Health) error {
	data := healthPage{Layout: newLayout(route), Probes: []*probe{
		{Name: "Overall", fn: health.Health},
		{Name: "Liveness", fn: health.Liveness},
		{Name: "Readiness", fn: health.Readiness},
	}}

	// Each probe is shown even when another one fails
	var g errgroup.Group
	for _, p := range data.Probes {
		g.Go(func() error {
			report, err := p.fn(r.Context())
			if err != nil {
				p.Report = httpclient.DownReport(err)
				p.Error = err.Error()
			} else {
				p.Report = report
			}
			return nil
		})
	}
	_ = g.Wait()

	// A probe without any report means the backend could not be asked
	status := http.StatusOK
	for _, p := range data.Probes {
		if p.Report == nil {
			status = http.StatusBadGateway
		}
	}

	return render(w, status, "health.html", data)
}
