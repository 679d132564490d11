package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.PositionsProcessed.WithLabelValues(ResultEvaluated).Inc()
	m.PositionsProcessed.WithLabelValues(ResultEvaluated).Inc()
	m.TriggersFired.WithLabelValues("plaza").Inc()
	m.ActiveSessions.Set(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PositionsProcessed.WithLabelValues(ResultEvaluated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TriggersFired.WithLabelValues("plaza")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.NarrationCommands.WithLabelValues("play").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `geo_content_narration_commands_total{command="play"} 1`)
}
