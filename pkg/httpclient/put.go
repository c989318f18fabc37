package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// putPayload implements client.Payload for PUT requests with a JSON body.
type putPayload struct {
	body *bytes.Reader
}

// discardResponse implements client.Unmarshaler for responses whose body
// is not needed by the caller.
type discardResponse struct{}

var _ client.Payload = (*putPayload)(nil)
var _ client.Unmarshaler = discardResponse{}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newPutPayload(v any) (*putPayload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &putPayload{body: bytes.NewReader(data)}, nil
}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (p *putPayload) Method() string {
	return http.MethodPut
}

func (p *putPayload) Accept() string {
	return types.ContentTypeJSON
}

func (p *putPayload) Type() string {
	return types.ContentTypeJSON
}

func (p *putPayload) Read(b []byte) (int, error) {
	return p.body.Read(b)
}

func (discardResponse) Unmarshal(_ http.Header, r io.Reader) error {
	_, err := io.Copy(io.Discard, r)
	return err
}
