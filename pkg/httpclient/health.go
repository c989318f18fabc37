package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	// Packages
	schema "github.com/digg/go-digg/pkg/schema"
	client "github.com/mutablelogic/go-client"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Health returns the overall health report.
func (c *Client) Health(ctx context.Context) (*schema.HealthReport, error) {
	return c.probe(ctx, "Health", client.OptPath(schema.HealthPath, schema.HealthSubPath))
}

// Liveness returns the liveness report.
func (c *Client) Liveness(ctx context.Context) (*schema.HealthReport, error) {
	return c.probe(ctx, "Liveness", client.OptPath(schema.HealthPath, schema.HealthSubPath, schema.HealthLivePath))
}

// Readiness returns the readiness report.
func (c *Client) Readiness(ctx context.Context) (*schema.HealthReport, error) {
	return c.probe(ctx, "Readiness", client.OptPath(schema.HealthPath, schema.HealthSubPath, schema.HealthReadyPath))
}

// Probes fetches the three reports concurrently and returns the first error
// if any of them fails.
func (c *Client) Probes(ctx context.Context) (*schema.HealthProbes, error) {
	var result schema.HealthProbes
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Overall, err = c.Health(ctx)
		return err
	})
	g.Go(func() (err error) {
		result.Liveness, err = c.Liveness(ctx)
		return err
	})
	g.Go(func() (err error) {
		result.Readiness, err = c.Readiness(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// DownReport returns the health report carried by a 503 probe response,
// or nil when err is not such a response.
func DownReport(err error) *schema.HealthReport {
	var resp *ResponseError
	if !errors.As(err, &resp) || resp.Status != http.StatusServiceUnavailable {
		return nil
	}
	var report schema.HealthReport
	if err := json.Unmarshal(resp.Body, &report); err != nil {
		return nil
	}
	return &report
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) probe(ctx context.Context, name string, path client.RequestOpt) (*schema.HealthReport, error) {
	var response schema.HealthReport
	if err := c.do(ctx, name, client.NewRequest(), &response, path); err != nil {
		return nil, err
	}
	return &response, nil
}
