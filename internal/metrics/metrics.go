package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess            = "success"
	OutcomeMalformedRequest   = "malformed_request"
	OutcomeEndpointFailure    = "endpoint_failure"
	OutcomeUnexpectedResponse = "unexpected_response"
)

var (
	relayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prompt_relay_requests_total",
			Help: "Number of relayed prompts by outcome",
		},
		[]string{"model", "outcome"},
	)

	invokeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prompt_relay_invoke_duration_seconds",
			Help:    "Model invocation duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

// Register registers the relay collectors.
func Register(r prometheus.Registerer) {
	r.MustRegister(relayRequests, invokeDuration)
}

// RecordRequest counts one relay attempt.
func RecordRequest(model, outcome string) {
	relayRequests.WithLabelValues(model, outcome).Inc()
}

// ObserveInvoke records the time spent waiting on the model endpoint.
func ObserveInvoke(model string, d time.Duration) {
	invokeDuration.WithLabelValues(model).Observe(d.Seconds())
}
