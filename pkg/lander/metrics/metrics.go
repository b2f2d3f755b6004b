package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "lander"

	ResultOK = "ok"

	DecisionAllowed = "allowed"
	DecisionDenied  = "denied"

	LabelResult     = "result"
	LabelOperation  = "operation"
	LabelStatusCode = "status_code"
	LabelDecision   = "decision"
)

// Deploy counts a finished deploy. An empty result means success.
func Deploy(result string) {
	if result == "" {
		result = ResultOK
	}
	deploys.With(prometheus.Labels{
		LabelResult: result,
	}).Inc()
}

func Preview(result string) {
	if result == "" {
		result = ResultOK
	}
	previews.With(prometheus.Labels{
		LabelResult: result,
	}).Inc()
}

// ProviderRequest observes a call to the hosting provider. Use status code 0
// when no response was received.
func ProviderRequest(operation string, statusCode int, start time.Time) {
	providerRequests.With(prometheus.Labels{
		LabelOperation:  operation,
		LabelStatusCode: strconv.Itoa(statusCode),
	}).Observe(time.Since(start).Seconds())
}

func RateLimitDecision(admitted bool) {
	decision := DecisionDenied
	if admitted {
		decision = DecisionAllowed
	}
	rateLimitDecisions.With(prometheus.Labels{
		LabelDecision: decision,
	}).Inc()
}

var (
	deploys = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "deploys_total",
		Help:      "number of deploy requests handled, by result",
		Namespace: namespace,
	},
		[]string{
			LabelResult,
		},
	)

	previews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "previews_total",
		Help:      "number of preview requests handled, by result",
		Namespace: namespace,
	},
		[]string{
			LabelResult,
		},
	)

	providerRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:      "provider_requests_seconds",
		Help:      "time spent waiting for the hosting provider",
		Namespace: namespace,
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	},
		[]string{
			LabelOperation,
			LabelStatusCode,
		},
	)

	rateLimitDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "rate_limit_decisions_total",
		Help:      "admission decisions made by the deploy rate limiter",
		Namespace: namespace,
	},
		[]string{
			LabelDecision,
		},
	)
)

func init() {
	prometheus.MustRegister(deploys)
	prometheus.MustRegister(previews)
	prometheus.MustRegister(providerRequests)
	prometheus.MustRegister(rateLimitDecisions)
}
