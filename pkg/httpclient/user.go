package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListUsers returns every user.
func (c *Client) ListUsers(ctx context.Context) ([]schema.User, error) {
	var response []schema.User
	if err := c.do(ctx, "ListUsers", client.NewRequest(), &response, client.OptPath(schema.UserPath)); err != nil {
		return nil, err
	}
	return response, nil
}

// GetUser returns a user by identifier. A missing user is reported as a
// *ResponseError with status 404.
func (c *Client) GetUser(ctx context.Context, id string) (*schema.User, error) {
	if err := checkSegment("user id", id); err != nil {
		return nil, err
	}

	var response schema.User
	if err := c.do(ctx, "GetUser", client.NewRequest(), &response, client.OptPath(schema.UserPath, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateUser creates a user and returns it with the identifier assigned
// by the backend.
func (c *Client) CreateUser(ctx context.Context, meta schema.UserMeta) (*schema.User, error) {
	req, err := client.NewJSONRequest(meta)
	if err != nil {
		return nil, err
	}

	var response schema.User
	if err := c.do(ctx, "CreateUser", req, &response, client.OptPath(schema.UserPath)); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateUser replaces the fields of an existing user.
func (c *Client) UpdateUser(ctx context.Context, id string, meta schema.UserMeta) (*schema.User, error) {
	if err := checkSegment("user id", id); err != nil {
		return nil, err
	}
	req, err := newPutPayload(meta)
	if err != nil {
		return nil, err
	}

	var response schema.User
	if err := c.do(ctx, "UpdateUser", req, &response, client.OptPath(schema.UserPath, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteUser deletes a user. Any response body is discarded.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := checkSegment("user id", id); err != nil {
		return err
	}
	return c.do(ctx, "DeleteUser", client.NewRequestEx(http.MethodDelete, ""), discardResponse{}, client.OptPath(schema.UserPath, id))
}

// SearchUsers returns the users whose name contains name. The backend
// returns every user when name is empty.
func (c *Client) SearchUsers(ctx context.Context, name string) ([]schema.User, error) {
	query := make(url.Values)
	query.Set("name", name)

	var response []schema.User
	if err := c.do(ctx, "SearchUsers", client.NewRequest(), &response,
		client.OptPath(schema.UserPath, schema.UserSearchPath),
		client.OptQuery(query),
	); err != nil {
		return nil, err
	}
	return response, nil
}

// CountUsers returns the number of users.
func (c *Client) CountUsers(ctx context.Context) (uint64, error) {
	var response schema.UserCount
	if err := c.do(ctx, "CountUsers", client.NewRequest(), &response, client.OptPath(schema.UserPath, schema.UserCountPath)); err != nil {
		return 0, err
	}
	return response.Count, nil
}

// GetUserByEmail returns the user with the given email address. The address
// is sent as a single path segment.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	if err := checkSegment("email", email); err != nil {
		return nil, err
	}

	var response schema.User
	if err := c.do(ctx, "GetUserByEmail", client.NewRequest(), &response, client.OptPath(schema.UserPath, schema.UserEmailPath, email)); err != nil {
		return nil, err
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// checkSegment rejects a value which would not add a path segment, since
// leading and trailing slashes are trimmed from each segment
func checkSegment(name, value string) error {
	if strings.Trim(value, "/") == "" {
		return httpresponse.ErrBadRequest.Withf("missing %s", name)
	}
	return nil
}
