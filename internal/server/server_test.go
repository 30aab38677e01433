package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/config"
	"github.com/fpawel/eqair/internal/data"
	"github.com/fpawel/eqair/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, func()) {
	db, err := data.Open(":memory:")
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Sweep.Workers = 2
	cfg.Sweep.MaxPoints = 1000
	s := New(cfg, metrics.NewCollector("eqair", nil), db)
	return s, func() {
		assert.NoError(t, db.Close())
	}
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, &buf))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestEval(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()

	w := do(t, h, "GET", "/v1/eval?property=h&p=1&t=1000", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var r evalResponse
	var raw map[string]interface{}
	decode(t, w, &raw)
	assert.Equal(t, "J/kg", raw["nominal_unit"])
	assert.NotContains(t, raw, "unit")
	decode(t, w, &r)
	v, err := air.Enthalpy(1, 1000)
	require.NoError(t, err)
	assert.Equal(t, evalResponse{Property: "h", P: 1, T: 1000, Value: v, Unit: "J/kg"}, r)

	w = do(t, h, "GET", "/v1/eval?property=mu&p=101325&p_unit=Pa&t=726.85&t_unit=C", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &r)
	assert.InDelta(t, 1, r.P, 1e-12)
	assert.InDelta(t, 1000, r.T, 1e-9)
}

func TestEvalBatch(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()

	w := do(t, h, "POST", "/v1/eval/batch", batchRequest{Property: "z", Queries: []air.Query{
		{P: 1, T: 1000},
		{P: 1, T: 31000},
		{P: 0.3, T: 15000},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var r batchResponse
	decode(t, w, &r)
	assert.Equal(t, "z", r.Property)
	assert.Equal(t, "-", r.Unit)
	require.Len(t, r.Results, 3)

	want, err := air.Compressibility(1, 1000)
	require.NoError(t, err)
	require.NotNil(t, r.Results[0].Value)
	assert.Equal(t, want, *r.Results[0].Value)

	assert.Nil(t, r.Results[1].Value)
	assert.Equal(t, air.KindTemperatureOutOfRange, r.Results[1].Kind)
	assert.NotEmpty(t, r.Results[1].Error)

	want, err = air.Compressibility(0.3, 15000)
	require.NoError(t, err)
	require.NotNil(t, r.Results[2].Value)
	assert.Equal(t, 0.3, r.Results[2].P)
	assert.Equal(t, want, *r.Results[2].Value)

	for _, body := range []interface{}{
		"not an object",
		batchRequest{Property: "rho", Queries: []air.Query{{P: 1, T: 1000}}},
		batchRequest{Property: "h"},
		batchRequest{Property: "h", Queries: make([]air.Query, 1001)},
	} {
		w := do(t, h, "POST", "/v1/eval/batch", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestEvalFailures(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()

	for _, c := range []struct {
		target string
		code   int
		kind   string
	}{
		{"/v1/eval?property=h&p=1e-5&t=1000", 422, air.KindPressureOutOfRange},
		{"/v1/eval?property=h&p=1&t=31000", 422, air.KindTemperatureOutOfRange},
		{"/v1/eval?property=cp&p=5e-4&t=26000", 422, air.KindInterpolationGap},
		{"/v1/eval?property=rho&p=1&t=1000", 400, ""},
		{"/v1/eval?property=h&t=1000", 400, ""},
		{"/v1/eval?property=h&p=x&t=1000", 400, ""},
		{"/v1/eval?property=h&p=1&t=1000&p_unit=torr", 400, ""},
		{"/v1/eval?property=h&p=1&t=-1", 400, ""},
	} {
		w := do(t, h, "GET", c.target, nil)
		require.Equal(t, c.code, w.Code, c.target)
		var r errorResponse
		decode(t, w, &r)
		assert.Equal(t, c.kind, r.Kind, c.target)
		assert.NotEmpty(t, r.Error, c.target)
	}

	w := do(t, h, "POST", "/v1/eval?property=h&p=1&t=1000", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPropertiesAndDecades(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()

	w := do(t, h, "GET", "/v1/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var xs []propertyResponse
	decode(t, w, &xs)
	require.Len(t, xs, len(air.Properties))
	assert.Equal(t, "Pa·s", xs[3].Unit)

	w = do(t, h, "GET", "/v1/decades?property=z", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var segs []segmentResponse
	decode(t, w, &segs)
	assert.Len(t, segs, air.TableOf(air.PropZ).Len())
	assert.Equal(t, "1e-4", segs[0].Decade)
	assert.Equal(t, 500., segs[0].Lo)

	w = do(t, h, "GET", "/v1/decades", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSweepAndStore(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()

	w := do(t, h, "POST", "/v1/sweep", sweepRequest{
		Property:  "cp",
		Pressures: []float64{5e-4, 1},
		TFrom:     26000,
		TTo:       27000,
		TStep:     1000,
		Save:      true,
		Note:      "http",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var r sweepResponse
	decode(t, w, &r)
	require.NotEmpty(t, r.SweepID)
	require.Len(t, r.Points, 4)
	assert.Equal(t, air.KindInterpolationGap, r.Points[0].Kind)
	assert.Nil(t, r.Points[0].Value)
	require.NotNil(t, r.Points[3].Value)

	w = do(t, h, "GET", "/v1/sweeps", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []data.Sweep
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, r.SweepID, list[0].SweepID)
	assert.Equal(t, 4, list[0].Points)
	assert.Equal(t, 2, list[0].Failed)

	w = do(t, h, "GET", "/v1/sweeps/"+r.SweepID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored sweepResponse
	decode(t, w, &stored)
	assert.Equal(t, r, stored)

	w = do(t, h, "DELETE", "/v1/sweeps/"+r.SweepID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, "GET", "/v1/sweeps/"+r.SweepID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSweepBadRequest(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()

	for _, body := range []interface{}{
		"not an object",
		sweepRequest{Property: "rho", Pressures: []float64{1}, TFrom: 500, TTo: 600, TStep: 10},
		sweepRequest{Property: "h", TFrom: 500, TTo: 600, TStep: 10},
		sweepRequest{Property: "h", Pressures: []float64{1}, TFrom: 500, TTo: 30000, TStep: 1},
		sweepRequest{Property: "h", Pressures: []float64{1}, TFrom: 500, TTo: 30000, TStep: 1e-6},
		sweepRequest{Property: "h", Pressures: []float64{1}, TFrom: 500, TTo: 30000, TStep: 1e-300},
	} {
		w := do(t, h, "POST", "/v1/sweep", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestNoStorage(t *testing.T) {
	s := New(config.Default(), nil, nil)
	h := s.Handler()
	w := do(t, h, "GET", "/v1/sweeps", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	w = do(t, h, "POST", "/v1/sweep", sweepRequest{Property: "h", Pressures: []float64{1}, TFrom: 500, TTo: 600, TStep: 50, Save: true})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	h := s.Handler()
	do(t, h, "GET", "/v1/eval?property=k&p=1&t=1000", nil)
	do(t, h, "GET", "/v1/eval?property=k&p=1&t=40000", nil)

	w := do(t, h, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `eqair_evaluations_total{outcome="ok",property="k"} 1`), body)
	assert.True(t, strings.Contains(body, `eqair_evaluations_total{outcome="temperature_out_of_range",property="k"} 1`), body)
}

func TestRecoverPanic(t *testing.T) {
	h := recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := do(t, h, "GET", "/", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var r errorResponse
	decode(t, w, &r)
	assert.Equal(t, "internal error", r.Error)
	assert.Len(t, r.RequestID, 36)
}

func TestSetConfig(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	c := s.Config()
	c.Units.Temperature = "C"
	s.SetConfig(c)

	w := do(t, s.Handler(), "GET", "/v1/eval?property=z&p=1&t=726.85", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var r evalResponse
	decode(t, w, &r)
	assert.InDelta(t, 1000, r.T, 1e-9)
}

func TestServeShutdown(t *testing.T) {
	s, cleanup := newTestServer(t)
	defer cleanup()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/v1/properties")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
