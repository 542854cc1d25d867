package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNullResult is returned when a method that always has a result comes back empty.
var ErrNullResult = errors.New("node returned a null result")

// RPCError is the error value returned by the node in the response envelope.
// Code and Message are filled in when the value has the usual {"code", "message"} shape;
// Value always holds the raw JSON.
type RPCError struct {
	Method  string
	Code    int
	Message string
	Value   json.RawMessage
}

func newRPCError(method string, value json.RawMessage) *RPCError {
	rpcErr := &RPCError{
		Method: method,
		Value:  append(json.RawMessage(nil), value...),
	}
	var detail struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(value, &detail); err == nil {
		rpcErr.Code = detail.Code
		rpcErr.Message = detail.Message
	}
	return rpcErr
}

func (e *RPCError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("method %s returned error %d: %s", e.Method, e.Code, e.Message)
	}
	return fmt.Sprintf("method %s returned error: %s", e.Method, string(e.Value))
}

// HTTPStatusError is returned for any non 2xx response. Body holds the response text.
// Bitcoin Core answers failed calls with a 500 and a regular envelope, in which case
// the decoded *RPCError is available through errors.As.
type HTTPStatusError struct {
	Method     string
	StatusCode int
	Body       string
	rpcErr     *RPCError
}

func newHTTPStatusError(method string, statusCode int, body []byte) *HTTPStatusError {
	statusErr := &HTTPStatusError{
		Method:     method,
		StatusCode: statusCode,
		Body:       string(body),
	}
	var resp response
	if err := json.Unmarshal(body, &resp); err == nil && !isNull(resp.Error) {
		statusErr.rpcErr = newRPCError(method, resp.Error)
	}
	return statusErr
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("response for method %s has status code %d: %s", e.Method, e.StatusCode, e.Body)
}

func (e *HTTPStatusError) Unwrap() error {
	if e.rpcErr == nil {
		return nil
	}
	return e.rpcErr
}
