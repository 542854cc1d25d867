package jsonrpc

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rpcRequestCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "header_walker",
		Subsystem: "rpc_client",
		Name:      "request_total",
		Help:      "Total number of RPC node requests",
	},
	[]string{"status", "method"},
)

var rpcRequestDurationMillis = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "header_walker",
		Subsystem: "rpc_client",
		Name:      "request_duration_millis",
		Help:      "Duration of RPC node requests in milliseconds",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	},
	[]string{"status", "method"},
)

// nodeErrorCount is labelled by the Bitcoin Core RPC error code, e.g. -5 for an unknown block
var nodeErrorCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "header_walker",
		Subsystem: "rpc_client",
		Name:      "node_error_total",
		Help:      "Total number of error values returned by the node in the response envelope",
	},
	[]string{"method", "code"},
)

func observeRPCRequest(status string, method string, t0 time.Time) {
	rpcRequestCount.WithLabelValues(status, method).Inc()
	rpcRequestDurationMillis.WithLabelValues(status, method).Observe(float64(time.Since(t0).Milliseconds()))
}

func observeRPCRequestCode(statusCode int, method string, t0 time.Time) {
	observeRPCRequest(strconv.Itoa(statusCode), method, t0)
}

func observeRPCRequestErr(err error, method string, t0 time.Time) {
	observeRPCRequest(errorToStatus(err), method, t0)
}

func observeNodeError(err error, method string) {
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		return
	}
	code := "none"
	if rpcErr.Code != 0 {
		code = strconv.Itoa(rpcErr.Code)
	}
	nodeErrorCount.WithLabelValues(method, code).Inc()
}

func errorToStatus(err error) string {
	status := "unknown_error"
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			status = "timeout"
		} else {
			status = "connection_refused"
		}
	}
	return status
}
