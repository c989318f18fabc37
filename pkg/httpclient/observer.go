package httpclient

import "context"

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Observer is notified before every request is sent and again when it
// completes. Implementations must not retain or modify the error.
type Observer interface {
	// LogRequest is called before a request is sent
	LogRequest(ctx context.Context, method, path string)

	// LogResponse is called when the backend answers with a success status
	LogResponse(ctx context.Context, status int, path string)

	// LogError is called with a *ResponseError when the backend answers with
	// an error status, or with the transport error when there is no answer
	LogError(ctx context.Context, path string, err error)
}

type nopObserver struct{}

var _ Observer = nopObserver{}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (nopObserver) LogRequest(context.Context, string, string) {}
func (nopObserver) LogResponse(context.Context, int, string)   {}
func (nopObserver) LogError(context.Context, string, error)    {}
