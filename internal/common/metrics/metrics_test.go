package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBeforeInitIsNoop(t *testing.T) {
	if renderTotal != nil {
		t.Skip("metrics already initialised in this process")
	}
	ObserveRender(ResultSuccess, time.Millisecond)
	IncUpload()
	IncPlacement()
}

func TestCounters(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(renderTotal.WithLabelValues(ResultError))
	ObserveRender(ResultError, 5*time.Millisecond)
	if got := testutil.ToFloat64(renderTotal.WithLabelValues(ResultError)); got != before+1 {
		t.Errorf("render_total{error} = %v, want %v", got, before+1)
	}

	uploads := testutil.ToFloat64(uploadsTotal)
	IncUpload()
	if got := testutil.ToFloat64(uploadsTotal); got != uploads+1 {
		t.Errorf("uploads_total = %v, want %v", got, uploads+1)
	}

	defaulted := testutil.ToFloat64(renderTotal.WithLabelValues(ResultSuccess))
	ObserveRender("", time.Millisecond)
	if got := testutil.ToFloat64(renderTotal.WithLabelValues(ResultSuccess)); got != defaulted+1 {
		t.Errorf("empty result should count as success")
	}
}
