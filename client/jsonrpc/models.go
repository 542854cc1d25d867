package jsonrpc

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/duneanalytics/blockchain-headers/models"
)

type Config struct {
	URL        string
	Credential models.Credential
	// MaxRetries of zero sends every request exactly once
	MaxRetries     int
	RequestTimeout time.Duration
}

// requestID is constant: requests are never in flight concurrently
const requestID = "1"

type request struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     string `json:"id"`
}

type response struct {
	Error  json.RawMessage `json:"error"`
	Result json.RawMessage `json:"result"`
}

// outcome resolves the envelope into either the result (nil when absent) or an *RPCError.
// A non-null error wins even if a result is present.
func (r response) outcome(method string) (json.RawMessage, error) {
	if !isNull(r.Error) {
		return nil, newRPCError(method, r.Error)
	}
	if isNull(r.Result) {
		return nil, nil
	}
	return r.Result, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
