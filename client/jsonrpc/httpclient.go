package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

//go:generate moq -pkg jsonrpc_mock -out ../../mocks/jsonrpc/httpclient.go . HTTPClient

type HTTPClient interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

func NewHTTPClient(log *slog.Logger, cfg Config) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.MaxRetries
	client.Logger = log
	checkRetry := func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// bitcoind reports every RPC error with a 500, sending it again gets the same answer
		if err == nil && carriesNodeError(resp) {
			return false, nil
		}
		yes, err2 := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		if yes && cfg.MaxRetries > 0 {
			if resp == nil {
				log.Warn("Retrying request to RPC client", "error", err2)
			} else {
				log.Warn("Retrying request to RPC client", "statusCode", resp.Status, "error", err2)
			}
		}
		return yes, err2
	}
	client.CheckRetry = checkRetry
	client.Backoff = retryablehttp.LinearJitterBackoff
	// once retries are exhausted hand back the response untouched: the caller
	// reads the body of a failed status for diagnostics
	client.ErrorHandler = func(resp *http.Response, err error, attempts int) (*http.Response, error) {
		if resp != nil {
			return resp, nil
		}
		return nil, fmt.Errorf("giving up after %d attempt(s): %w", attempts, err)
	}
	client.HTTPClient.Timeout = cfg.RequestTimeout
	return client
}

// carriesNodeError reports whether a failed response holds a JSON-RPC envelope with a
// non-null error. The body is buffered and put back for the caller.
func carriesNodeError(resp *http.Response) bool {
	if resp == nil || resp.StatusCode < http.StatusInternalServerError || resp.Body == nil {
		return false
	}
	content, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		// the caller hits the closed body and reports the failed read
		return false
	}
	resp.Body = io.NopCloser(bytes.NewReader(content))
	var envelope response
	return json.Unmarshal(content, &envelope) == nil && !isNull(envelope.Error)
}
