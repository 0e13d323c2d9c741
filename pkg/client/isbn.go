package client

import (
	"context"
	"fmt"
	"net/http"

	"isbnsplit/pkg/model"
)

const decomposePath = "/api/v1/isbn/decompose"

type ISBNClient struct {
	httpClient *HttpClient
}

func NewISBNClient(baseUrl string) *ISBNClient {
	return &ISBNClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

// Decompose posts isbn and returns the raw response, whatever its status.
func (c *ISBNClient) Decompose(ctx context.Context, isbn string) (*Response, error) {
	return c.httpClient.POST(ctx, decomposePath, model.DecomposeRequest{ISBN: isbn})
}

func (c *ISBNClient) DecomposeRaw(ctx context.Context, body []byte) (*Response, error) {
	return c.httpClient.POSTRaw(ctx, decomposePath, body)
}

// Split decomposes isbn and returns its groups. A rejected ISBN comes back
// as an error carrying the service's code and message.
func (c *ISBNClient) Split(ctx context.Context, isbn string) (model.Decomposition, error) {
	resp, err := c.Decompose(ctx, isbn)
	if err != nil {
		return model.Decomposition{}, err
	}

	if resp.StatusCode != http.StatusOK {
		errResp, err := resp.ErrorBody()
		if err != nil {
			return model.Decomposition{}, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, err)
		}
		return model.Decomposition{}, fmt.Errorf("%s: %s", errResp.Code, errResp.Message)
	}

	var out struct {
		Data model.Decomposition `json:"data"`
	}
	if err := resp.DecodeJSON(&out); err != nil {
		return model.Decomposition{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Data, nil
}

func (c *ISBNClient) Health(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/health")
}

func (c *ISBNClient) Ready(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/ready")
}

func (c *ISBNClient) WaitForHealthy(ctx context.Context) error {
	return c.httpClient.WaitForHealthy(ctx, defaultHealthWait)
}
