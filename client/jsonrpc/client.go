package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type rpcClient struct {
	client  HTTPClient
	cfg     Config
	log     *slog.Logger
	bufPool *sync.Pool
}

func newClient(log *slog.Logger, client HTTPClient, cfg Config) *rpcClient {
	return &rpcClient{
		client: client,
		cfg:    cfg,
		log:    log,
		bufPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// call invokes method and decodes the result into a new R.
// It returns nil, nil when the node answers with a null or missing result.
func call[R any](ctx context.Context, c *rpcClient, method string, params []any) (*R, error) {
	buf := c.bufPool.Get().(*bytes.Buffer)
	defer c.putBuffer(buf)
	buf.Reset()

	if err := c.getResponseBody(ctx, method, params, buf); err != nil {
		observeNodeError(err, method)
		c.log.Error("Failed to get response for jsonRPC",
			"method", method,
			"error", err,
		)
		return nil, err
	}

	var resp response
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		c.log.Error("Failed to decode response for jsonRPC", "method", method, "error", err)
		return nil, fmt.Errorf("failed to decode response for method %s: %w", method, err)
	}
	raw, err := resp.outcome(method)
	if err != nil {
		observeNodeError(err, method)
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	result := new(R)
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, fmt.Errorf("failed to decode result for method %s: %w", method, err)
	}
	return result, nil
}

// getResponseBody sends a request to the server and writes the response body to output.
// Non 2xx responses are returned as *HTTPStatusError.
func (c *rpcClient) getResponseBody(
	ctx context.Context, method string, params []any, output *bytes.Buffer,
) error {
	tStart := time.Now()
	defer func() {
		c.log.Debug("getResponseBody", "method", method, "duration", time.Since(tStart))
	}()

	if params == nil {
		params = []any{}
	}
	encoder := json.NewEncoder(output)
	if err := encoder.Encode(request{Method: method, Params: params, ID: requestID}); err != nil {
		return fmt.Errorf("failed to encode request for method %s: %w", method, err)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, output.Bytes())
	if err != nil {
		return fmt.Errorf("failed to build request for method %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Credential.Username, c.cfg.Credential.Password)

	resp, err := c.client.Do(req)
	if err != nil {
		observeRPCRequestErr(err, method, tStart)
		return fmt.Errorf("failed to send request for method %s: %w", method, err)
	}
	defer resp.Body.Close()

	output.Reset()
	if _, err := output.ReadFrom(resp.Body); err != nil {
		observeRPCRequestErr(err, method, tStart)
		return fmt.Errorf("failed to read response body for method %s: %w", method, err)
	}
	observeRPCRequestCode(resp.StatusCode, method, tStart)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPStatusError(method, resp.StatusCode, bytes.TrimSpace(output.Bytes()))
	}
	return nil
}

func (c *rpcClient) putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	c.bufPool.Put(buf)
}
