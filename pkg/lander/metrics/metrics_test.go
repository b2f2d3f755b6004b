package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDeployDefaultsToOK(t *testing.T) {
	before := testutil.ToFloat64(deploys.WithLabelValues(ResultOK))
	Deploy("")
	assert.Equal(t, before+1, testutil.ToFloat64(deploys.WithLabelValues(ResultOK)))

	before = testutil.ToFloat64(deploys.WithLabelValues("deploy-failed"))
	Deploy("deploy-failed")
	assert.Equal(t, before+1, testutil.ToFloat64(deploys.WithLabelValues("deploy-failed")))
}

func TestRateLimitDecision(t *testing.T) {
	allowed := testutil.ToFloat64(rateLimitDecisions.WithLabelValues(DecisionAllowed))
	denied := testutil.ToFloat64(rateLimitDecisions.WithLabelValues(DecisionDenied))

	RateLimitDecision(true)
	RateLimitDecision(false)
	RateLimitDecision(false)

	assert.Equal(t, allowed+1, testutil.ToFloat64(rateLimitDecisions.WithLabelValues(DecisionAllowed)))
	assert.Equal(t, denied+2, testutil.ToFloat64(rateLimitDecisions.WithLabelValues(DecisionDenied)))
}

func TestProviderRequest(t *testing.T) {
	ProviderRequest("create_site", 201, time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(providerRequests, "lander_provider_requests_seconds"))
}
