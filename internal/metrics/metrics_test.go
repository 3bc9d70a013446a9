package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/htmlpp/pkg/strip"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObservesStripper(t *testing.T) {
	rec := New()
	s := strip.New(strip.WithObserver(rec))

	_, err := s.Run(context.Background(), strings.NewReader("a\n@@DEBUG\nb\nc\n@@END\nd\n"), io.Discard)
	rec.ObserveRun(err)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Lines(OutcomeEmitted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Lines(OutcomeSuppressed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Lines(OutcomeMarker)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs(ResultOK)))
}

func TestRecorder_ObserveRun(t *testing.T) {
	rec := New()
	_, err := strip.String("@@NOPE\n")
	rec.ObserveRun(err)
	rec.ObserveRun(errors.New("pipe closed"))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs(ResultMalformed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs(ResultError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Runs(ResultOK)))
}

func TestRecorder_Handler(t *testing.T) {
	rec := New()
	rec.Observe(strip.Event{LineNo: 1, Emitted: true})

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `htmlpp_strip_lines_total{outcome="emitted"} 1`)
}
