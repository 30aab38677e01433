package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/airlua"
	"github.com/fpawel/eqair/internal/data"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/fpawel/eqair/internal/sweep"
	"github.com/fpawel/eqair/internal/units"
)

var errBadRequest = merry.New("bad request").WithHTTPCode(http.StatusBadRequest)

type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type evalResponse struct {
	Property string  `json:"property"`
	P        float64 `json:"p"`
	T        float64 `json:"t"`
	Value    float64 `json:"value"`
	Unit     string  `json:"nominal_unit"`
}

// GET /v1/eval?property=h&p=1&t=1000[&p_unit=atm&t_unit=K]
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, err := air.ParseProperty(q.Get("property"))
	if err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	p, t, err := s.parseState(q)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := air.Eval(x, p, t)
	s.metrics.Observe(x, err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evalResponse{
		Property: x.String(),
		P:        p,
		T:        t,
		Value:    v,
		Unit:     x.NominalUnit(),
	})
}

type batchRequest struct {
	Property string      `json:"property"`
	Queries  []air.Query `json:"queries"`
}

type batchResponse struct {
	Property string          `json:"property"`
	Unit     string          `json:"nominal_unit"`
	Results  []pointResponse `json:"results"`
}

// POST /v1/eval/batch evaluates one property at a list of states in atm and K.
func (s *Server) handleEvalBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	x, err := air.ParseProperty(req.Property)
	if err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	if len(req.Queries) == 0 {
		writeError(w, errBadRequest.Here().Append("no queries"))
		return
	}
	if n := s.Config().Sweep.MaxPoints; n > 0 && len(req.Queries) > n {
		writeError(w, errBadRequest.Here().Appendf("%d queries, at most %d allowed", len(req.Queries), n))
		return
	}
	rs := air.EvalBatch(x, req.Queries)
	resp := batchResponse{
		Property: x.String(),
		Unit:     x.NominalUnit(),
		Results:  make([]pointResponse, len(rs)),
	}
	for i, res := range rs {
		s.metrics.Observe(x, res.Err)
		q := req.Queries[i]
		resp.Results[i] = pointResponse{P: q.P, T: q.T}
		if !res.Valid() {
			resp.Results[i].Kind = air.Kind(res.Err)
			resp.Results[i].Error = res.Err.Error()
			continue
		}
		v := res.Value
		resp.Results[i].Value = &v
	}
	writeJSON(w, http.StatusOK, resp)
}

type propertyResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Unit  string `json:"nominal_unit"`
}

func (s *Server) handleProperties(w http.ResponseWriter, _ *http.Request) {
	xs := make([]propertyResponse, 0, len(air.Properties))
	for _, x := range air.Properties {
		xs = append(xs, propertyResponse{x.String(), x.Title(), x.NominalUnit()})
	}
	writeJSON(w, http.StatusOK, xs)
}

// GET /v1/decades?property=mu
func (s *Server) handleDecades(w http.ResponseWriter, r *http.Request) {
	x, err := air.ParseProperty(r.URL.Query().Get("property"))
	if err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, segmentsResponse(airlua.Segments(air.TableOf(x))))
}

type segmentResponse struct {
	Decade string    `json:"decade"`
	P      float64   `json:"p"`
	Lo     float64   `json:"lo"`
	Hi     float64   `json:"hi"`
	Coefs  []float64 `json:"coefs"`
}

func segmentsResponse(xs []airlua.Segment) []segmentResponse {
	r := make([]segmentResponse, len(xs))
	for i, x := range xs {
		r[i] = segmentResponse{x.Decade, x.P, x.Lo, x.Hi, x.Coefs}
	}
	return r
}

type sweepRequest struct {
	Property  string    `json:"property"`
	Pressures []float64 `json:"pressures"`
	TFrom     float64   `json:"t_from"`
	TTo       float64   `json:"t_to"`
	TStep     float64   `json:"t_step"`
	Save      bool      `json:"save"`
	Note      string    `json:"note"`
}

type pointResponse struct {
	P     float64  `json:"p"`
	T     float64  `json:"t"`
	Value *float64 `json:"value,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	Error string   `json:"error,omitempty"`
}

type sweepResponse struct {
	SweepID string          `json:"sweep_id,omitempty"`
	Points  []pointResponse `json:"points"`
}

// POST /v1/sweep evaluates a grid given in the request body.
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	x, err := air.ParseProperty(req.Property)
	if err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	g := sweep.Grid{
		Property:  x,
		Pressures: req.Pressures,
		TFrom:     req.TFrom,
		TTo:       req.TTo,
		TStep:     req.TStep,
	}
	c := s.Config().Sweep
	points, err := sweep.Run(r.Context(), g, c.Workers, c.MaxPoints)
	if err != nil {
		writeError(w, errBadRequest.Here().Append(err.Error()))
		return
	}
	s.metrics.ObserveSweep(x, len(points))

	var resp sweepResponse
	if req.Save {
		if s.db == nil {
			writeError(w, merry.New("sweep storage is not configured").WithHTTPCode(http.StatusServiceUnavailable))
			return
		}
		if resp.SweepID, err = data.SaveSweep(r.Context(), s.db, g, points, req.Note); err != nil {
			writeError(w, err)
			return
		}
	}
	resp.Points = make([]pointResponse, len(points))
	for i, p := range points {
		resp.Points[i] = pointResponse{P: p.P, T: p.T}
		if p.Err != nil {
			resp.Points[i].Kind = p.Kind()
			resp.Points[i].Error = p.Err.Error()
		} else {
			v := p.Value
			resp.Points[i].Value = &v
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSweeps(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	xs, err := data.ListSweeps(r.Context(), s.db)
	if err != nil {
		writeError(w, err)
		return
	}
	if xs == nil {
		xs = []data.Sweep{}
	}
	writeJSON(w, http.StatusOK, xs)
}

func (s *Server) handleGetSweep(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id := r.PathValue("id")
	if _, err := data.GetSweep(r.Context(), s.db, id); err != nil {
		writeError(w, err)
		return
	}
	xs, err := data.GetSweepPoints(r.Context(), s.db, id)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := sweepResponse{SweepID: id, Points: make([]pointResponse, len(xs))}
	for i, p := range xs {
		resp.Points[i] = pointResponse{P: p.P, T: p.T, Kind: p.Kind.String, Error: p.Err.String}
		if p.Value.Valid {
			v := p.Value.Float64
			resp.Points[i].Value = &v
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSweep(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	if err := data.DeleteSweep(r.Context(), s.db, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		writeError(w, merry.New("sweep storage is not configured").WithHTTPCode(http.StatusServiceUnavailable))
		return false
	}
	return true
}

// parseState reads p and t converting from p_unit and t_unit, or from the
// configured default units.
func (s *Server) parseState(q url.Values) (p, t float64, err error) {
	c := s.Config().Units
	if p, err = parseFloat(q, "p"); err != nil {
		return
	}
	if t, err = parseFloat(q, "t"); err != nil {
		return
	}
	if p, err = units.Pressure(p, orDefault(q.Get("p_unit"), c.Pressure)); err != nil {
		return 0, 0, errBadRequest.Here().Append(err.Error())
	}
	if t, err = units.Temperature(t, orDefault(q.Get("t_unit"), c.Temperature)); err != nil {
		return 0, 0, errBadRequest.Here().Append(err.Error())
	}
	return
}

func parseFloat(q url.Values, key string) (float64, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return 0, errBadRequest.Here().Appendf("%s: required", key)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errBadRequest.Here().Appendf("%s: %q is not a number", key, s)
	}
	return v, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// writeError answers 422 with the failure kind for errors of the property
// domain, otherwise the merry http code of err.
func writeError(w http.ResponseWriter, err error) {
	if kind := air.Kind(err); kind != "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kind})
		return
	}
	code := merry.HTTPCode(err)
	if merry.Is(err, data.ErrSweepNotFound) {
		code = http.StatusNotFound
	}
	if code >= 500 {
		log.PrintErr(err, "stack", pkg.FormatMerryStacktrace(err, "\n\t"))
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.PrintErr(merry.Prepend(err, "write response"))
	}
}
