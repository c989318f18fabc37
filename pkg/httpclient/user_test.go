package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	// Packages
	httpclient "github.com/digg/go-digg/pkg/httpclient"
	schema "github.com/digg/go-digg/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

const (
	aliceJSON = `{"id":1,"name":"Alice Anderson","address":"100 Main St, Springfield, IL 10000","email":"alice.anderson@example.com","telephone":"(555) 123-4567"}`
	bobJSON   = `{"id":2,"name":"Bob Brown","address":"200 Oak Ave, Riverside, CA 20000","email":"bob.brown@example.com","telephone":"(555) 765-4321"}`
)

var (
	alice = schema.User{Id: 1, UserMeta: schema.UserMeta{
		Name:      "Alice Anderson",
		Address:   "100 Main St, Springfield, IL 10000",
		Email:     "alice.anderson@example.com",
		Telephone: "(555) 123-4567",
	}}
	bob = schema.User{Id: 2, UserMeta: schema.UserMeta{
		Name:      "Bob Brown",
		Address:   "200 Oak Ave, Riverside, CA 20000",
		Email:     "bob.brown@example.com",
		Telephone: "(555) 765-4321",
	}}
)

func TestUserOperations(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		method string
		path   string
		query  string
		status int
		body   string
		call   func(*httpclient.Client) (any, error)
		want   any
	}{
		{
			name: "ListUsers", method: http.MethodGet, path: "/users",
			status: http.StatusOK, body: "[" + aliceJSON + "," + bobJSON + "]",
			call: func(c *httpclient.Client) (any, error) { return c.ListUsers(ctx) },
			want: []schema.User{alice, bob},
		},
		{
			name: "GetUser", method: http.MethodGet, path: "/users/1",
			status: http.StatusOK, body: aliceJSON,
			call: func(c *httpclient.Client) (any, error) { return c.GetUser(ctx, "1") },
			want: &alice,
		},
		{
			name: "CreateUser", method: http.MethodPost, path: "/users",
			status: http.StatusCreated, body: bobJSON,
			call: func(c *httpclient.Client) (any, error) { return c.CreateUser(ctx, bob.UserMeta) },
			want: &bob,
		},
		{
			name: "UpdateUser", method: http.MethodPut, path: "/users/2",
			status: http.StatusOK, body: bobJSON,
			call: func(c *httpclient.Client) (any, error) { return c.UpdateUser(ctx, "2", bob.UserMeta) },
			want: &bob,
		},
		{
			name: "SearchUsers", method: http.MethodGet, path: "/users/search", query: "name=Bob",
			status: http.StatusOK, body: "[" + bobJSON + "]",
			call: func(c *httpclient.Client) (any, error) { return c.SearchUsers(ctx, "Bob") },
			want: []schema.User{bob},
		},
		{
			name: "CountUsers", method: http.MethodGet, path: "/users/count",
			status: http.StatusOK, body: `{"count": 50}`,
			call: func(c *httpclient.Client) (any, error) { return c.CountUsers(ctx) },
			want: uint64(50),
		},
		{
			name: "GetUserByEmail", method: http.MethodGet, path: "/users/email/alice.anderson@example.com",
			status: http.StatusOK, body: aliceJSON,
			call: func(c *httpclient.Client) (any, error) { return c.GetUserByEmail(ctx, "alice.anderson@example.com") },
			want: &alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			c, rec := newTestServer(t, respond(tt.status, tt.body))
			got, err := tt.call(c)
			require.NoError(err)
			assert.Equal(tt.want, got)

			requests := rec.Requests()
			require.Len(requests, 1)
			assert.Equal(tt.method, requests[0].Method)
			assert.Equal(tt.path, requests[0].Path)
			assert.Equal(tt.query, requests[0].RawQuery)
		})
	}
}

func TestCreateUser_payload(t *testing.T) {
	c, rec := newTestServer(t, respond(http.StatusCreated, aliceJSON))

	_, err := c.CreateUser(context.Background(), alice.UserMeta)
	require.NoError(t, err)

	requests := rec.Requests()
	require.Len(t, requests, 1)

	// The payload has no identifier
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(requests[0].Body), &body))
	assert.NotContains(t, body, "id")
	assert.Equal(t, alice.Name, body["name"])
	assert.Equal(t, alice.Email, body["email"])
}

func TestUpdateUser_payload(t *testing.T) {
	c, rec := newTestServer(t, respond(http.StatusOK, bobJSON))

	_, err := c.UpdateUser(context.Background(), "2", bob.UserMeta)
	require.NoError(t, err)

	requests := rec.Requests()
	require.Len(t, requests, 1)

	var meta schema.UserMeta
	require.NoError(t, json.Unmarshal([]byte(requests[0].Body), &meta))
	assert.Equal(t, bob.UserMeta, meta)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"noContent", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
		{"jsonBody", respond(http.StatusOK, aliceJSON)},
		{"unexpectedBody", respond(http.StatusOK, `not json at all`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestServer(t, tt.handler)
			require.NoError(t, c.DeleteUser(context.Background(), "7"))

			requests := rec.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodDelete, requests[0].Method)
			assert.Equal(t, "/users/7", requests[0].Path)
			assert.Empty(t, requests[0].Body)
		})
	}
}

func TestSearchUsers_encoding(t *testing.T) {
	var got string
	c, rec := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("name")
		writeJSON(w, http.StatusOK, `[]`)
	}))

	users, err := c.SearchUsers(context.Background(), "O'Brien & Co")
	require.NoError(t, err)
	assert.Empty(t, users)

	// Encoded exactly once
	requests := rec.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "name=O%27Brien+%26+Co", requests[0].RawQuery)
	assert.Equal(t, "O'Brien & Co", got)
}

func TestGetUserByEmail_encoding(t *testing.T) {
	email := "liam.o'connor+test@example.com"
	var got string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/email/{email}", func(w http.ResponseWriter, r *http.Request) {
		got = r.PathValue("email")
		writeJSON(w, http.StatusOK, aliceJSON)
	})
	c, rec := newTestServer(t, mux)

	_, err := c.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, email, got)
	assert.Len(t, rec.Requests(), 1)
}

func TestUser_notFound(t *testing.T) {
	const payload = `{"error": "User not found"}`
	ctx := context.Background()
	c, rec := newTestServer(t, respond(http.StatusNotFound, payload))

	calls := map[string]func() error{
		"GetUser": func() error {
			_, err := c.GetUser(ctx, "999")
			return err
		},
		"UpdateUser": func() error {
			_, err := c.UpdateUser(ctx, "999", alice.UserMeta)
			return err
		},
		"DeleteUser": func() error {
			return c.DeleteUser(ctx, "999")
		},
		"GetUserByEmail": func() error {
			_, err := c.GetUserByEmail(ctx, "nobody@example.com")
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, httpclient.IsNotFound(err))

			var respErr *httpclient.ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, http.StatusNotFound, respErr.Status)
			assert.JSONEq(t, payload, string(respErr.Body))
			assert.NotNil(t, respErr.Unwrap())
			assert.Equal(t, respErr.Unwrap().Error(), err.Error())
		})
	}
	assert.Len(t, rec.Requests(), len(calls))
}

func TestCreateUser_conflict(t *testing.T) {
	const payload = `{"error": "Email already exists"}`
	c, _ := newTestServer(t, respond(http.StatusConflict, payload))

	_, err := c.CreateUser(context.Background(), alice.UserMeta)
	require.Error(t, err)
	assert.False(t, httpclient.IsNotFound(err))
	assert.Equal(t, http.StatusConflict, httpclient.StatusCode(err))

	var respErr *httpclient.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.JSONEq(t, payload, string(respErr.Body))
}

func TestUser_missingArguments(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestServer(t, respond(http.StatusOK, aliceJSON))

	// Values which do not add a path segment
	for _, value := range []string{"", "/", "//", "///"} {
		t.Run(fmt.Sprintf("%q", value), func(t *testing.T) {
			assert := assert.New(t)

			_, err := c.GetUser(ctx, value)
			assert.ErrorIs(err, httpresponse.ErrBadRequest)
			_, err = c.UpdateUser(ctx, value, alice.UserMeta)
			assert.ErrorIs(err, httpresponse.ErrBadRequest)
			assert.ErrorIs(c.DeleteUser(ctx, value), httpresponse.ErrBadRequest)
			_, err = c.GetUserByEmail(ctx, value)
			assert.ErrorIs(err, httpresponse.ErrBadRequest)
			assert.Equal(0, httpclient.StatusCode(err))
		})
	}

	// Nothing was sent
	assert.Empty(t, rec.Requests())
}

func TestUser_slashInSegment(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestServer(t, respond(http.StatusNoContent, ""))

	// A slash within the id stays within the one segment
	require.NoError(t, c.DeleteUser(ctx, "/1/"))
	require.NoError(t, c.DeleteUser(ctx, "a/b"))

	requests := rec.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodDelete, requests[0].Method)
	assert.Equal(t, "/users/1", requests[0].URI)
	assert.Equal(t, "/users/a%2Fb", requests[1].URI)
}
