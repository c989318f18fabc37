package webapp

import (
	"net/http"

	// Packages
	digg "github.com/digg/go-digg"
	router "github.com/digg/go-digg/pkg/router"
	schema "github.com/digg/go-digg/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type usersPage struct {
	Layout
	Query string
	Count uint64
	Users []schema.User
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: route.Path
// GET lists users, or searches them by name when the name parameter is set.
func UsersPageHandler(route *router.Route, users digg.Users) (string, http.HandlerFunc, *openapi.PathItem) {
	return route.Path, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = usersList(w, r, route, users)
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

func usersList(w http.ResponseWriter, r *http.Request, route *router.Route, users digg.Users) error {
	data := usersPage{Layout: newLayout(route), Query: r.URL.Query().Get("name")}

	// The list and the count are independent requests
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		if data.Query != "" {
			data.Users, err = users.SearchUsers(ctx, data.Query)
		} else {
			data.Users, err = users.ListUsers(ctx)
		}
		return err
	})
	g.Go(func() (err error) {
		data.Count, err = users.CountUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		data.Error = err.Error()
		return render(w, http.StatusBadGateway, "users.html", data)
	}

	return render(w, http.StatusOK, "users.html", data)
}
