package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	UpstreamRequests.WithLabelValues("matrix", TierPrimary, OutcomeFailure).Inc()
	SolverFallbacks.Inc()

	server := httptest.NewServer(Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "fleetroute_upstream_requests_total")
	assert.Contains(t, string(body), "fleetroute_solver_fallbacks_total")
}

func TestRegisterDefault_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		RegisterDefault()
		RegisterDefault()
	})

	before := testutil.ToFloat64(ZoneViolations)
	ZoneViolations.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ZoneViolations))
}
