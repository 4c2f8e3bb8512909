package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphQL_Observe(t *testing.T) {
	m := NewGraphQL()

	m.Observe(OutcomeOK, 10*time.Millisecond)
	m.Observe(OutcomeOK, 20*time.Millisecond)
	m.Observe(OutcomeDepthRejected, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(OutcomeDepthRejected)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requests.WithLabelValues(OutcomeErrors)))
}

func TestGraphQL_NilReceiver(t *testing.T) {
	var m *GraphQL
	assert.NotPanics(t, func() { m.Observe(OutcomeOK, time.Second) })
}

func TestGraphQL_Handler(t *testing.T) {
	m := NewGraphQL()
	m.Observe(OutcomeBadRequest, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `graphql_requests_total{outcome="bad_request"} 1`)
	assert.Contains(t, string(body), "graphql_request_duration_seconds_bucket")
}
