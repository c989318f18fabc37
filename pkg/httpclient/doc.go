// Package httpclient provides a typed Go client for the user-management
// and health-check REST API.
//
// Create a client with:
//
//	client, err := httpclient.New("http://localhost:8080", httpclient.WithObserver(log))
//	if err != nil {
//	   panic(err)
//	}
//
// Then use the client to manage users:
//
//	// List all users
//	users, err := client.ListUsers(ctx)
//
//	// Find a user by email, distinguishing a missing user from other failures
//	user, err := client.GetUserByEmail(ctx, "alice@example.com")
//	if httpclient.IsNotFound(err) {
//	   ...
//	}
//
// Every request is reported to the Observer before it is sent and again
// when it completes; errors are returned to the caller unchanged, wrapped
// in a *ResponseError when the backend answered with an error status.
package httpclient
