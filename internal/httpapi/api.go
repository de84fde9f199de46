// Package httpapi serves the explorer link codec over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"explorer-state/internal/explorer"
	"explorer-state/internal/navigation"
	"explorer-state/internal/statefile"
	"explorer-state/internal/visuals"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// API holds the handlers and their metrics.
type API struct {
	baseURL string
	metrics *metrics
}

// New creates an API that builds links on baseURL.
func New(baseURL string) *API {
	return &API{baseURL: baseURL, metrics: newMetrics()}
}

// Router wires every route.
func (a *API) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", a.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/explorer/state", a.handleDecode).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/explorer/link", a.handleEncode).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return r
}

type decodeResponse struct {
	State    statefile.Document `json:"state"`
	Findings []explorer.Finding `json:"findings"`
	Flow     string             `json:"flow,omitempty"`
}

type encodeRequest struct {
	State   statefile.Document `json:"state"`
	BaseURL string             `json:"baseUrl,omitempty"`
}

type encodeResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDecode decodes the explorer parameters of its own query string.
// ?link=<url> decodes another link instead.
func (a *API) handleDecode(w http.ResponseWriter, r *http.Request) {
	params := navigation.NewParamMap(r.URL.Query())
	if link := r.URL.Query().Get("link"); link != "" {
		var err error
		if params, err = navigation.ParamMapFromLink(link); err != nil {
			a.fail(w, "decode", http.StatusBadRequest, err)
			return
		}
	}

	state := explorer.ToInitialState(params)
	findings := explorer.Diagnose(params)
	for _, f := range findings {
		a.metrics.fallbacks.WithLabelValues(f.Param).Inc()
	}

	resp := decodeResponse{
		State:    statefile.FromRequest(state.Request()),
		Findings: findings,
	}
	if flow, _ := strconv.ParseBool(r.URL.Query().Get("flow")); flow {
		resp.Flow = visuals.GenerateQueryFlow(state)
	}
	if resp.Findings == nil {
		resp.Findings = []explorer.Finding{}
	}

	a.metrics.requests.WithLabelValues("decode", "ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, "encode", http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.State.Scope == "" {
		a.fail(w, "encode", http.StatusBadRequest, errors.New("state.scope is required"))
		return
	}

	base := req.BaseURL
	if base == "" {
		base = a.baseURL
	}
	link, err := explorer.BuildLink(base, req.State.Request())
	if err != nil {
		a.fail(w, "encode", http.StatusBadRequest, err)
		return
	}

	a.metrics.requests.WithLabelValues("encode", "ok").Inc()
	writeJSON(w, http.StatusOK, encodeResponse{URL: link})
}

func (a *API) fail(w http.ResponseWriter, op string, status int, err error) {
	a.metrics.requests.WithLabelValues(op, "error").Inc()
	log.Debug().Err(err).Str("operation", op).Msg("Rejected request")
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}
