package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ResponseError is returned when the backend answers with an error status.
// Body holds the raw error payload, for example {"error": "User not found"}.
// Error and Unwrap defer to the error returned by the underlying client.
type ResponseError struct {
	Status int
	Path   string
	Body   []byte
	err    error
}

type captureKey struct{}

// capture records the error response seen by the transport for one call
type capture struct {
	resp *ResponseError
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *ResponseError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Path)
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

// IsNotFound reports whether err is a response error with status 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the backend status carried by err, or zero when err
// did not come from a backend response.
func StatusCode(err error) int {
	var resp *ResponseError
	if errors.As(err, &resp) {
		return resp.Status
	}
	return 0
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func withCapture(ctx context.Context, c *capture) context.Context {
	return context.WithValue(ctx, captureKey{}, c)
}

func captureFrom(ctx context.Context) *capture {
	c, _ := ctx.Value(captureKey{}).(*capture)
	return c
}

// wrap returns err unchanged when no error response was seen
func (c *capture) wrap(err error) error {
	if c.resp == nil {
		return err
	}
	resp := *c.resp
	resp.err = err
	return &resp
}
