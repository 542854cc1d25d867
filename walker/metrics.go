package walker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricFetchedHeaders = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "header_walker",
	Name:      "fetched_headers_total",
	Help:      "Number of headers fetched from the node",
})

var metricLastHeaderTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "header_walker",
	Name:      "last_header_timestamp_seconds",
	Help:      "Timestamp of the most recently fetched header, it decreases as the walk approaches genesis",
})

var metricWrittenHeaders = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "header_walker",
	Name:      "written_headers_total",
	Help:      "Number of headers written to the output file",
})
