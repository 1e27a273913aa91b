package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDatabase(t *testing.T) {
	m := New("test")

	m.ObserveDatabase("patient", "create", nil, time.Millisecond)
	m.ObserveDatabase("patient", "create", errors.New("boom"), time.Millisecond)
	m.ObserveDatabase("patient", "create", nil, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("patient", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("patient", "create", "error")))
}

func TestObserveEvent(t *testing.T) {
	m := New("test")

	m.ObserveEvent("doctor", "delete", nil)
	m.ObserveEvent("doctor", "delete", errors.New("redis down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("doctor", "delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsFailed.WithLabelValues("doctor", "delete")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New("clinic_api")
	m.ObserveHTTP("GET", "/patients", "200", 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clinic_api_http_requests_total{method="GET",route="/patients",status="200"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("same")
		New("same")
	})
}
