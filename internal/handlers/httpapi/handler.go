// Package httpapi exposes the league service as a thin JSON HTTP surface.
// It carries no business rules: requests map one-to-one onto service
// operations and service errors map onto status codes.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/gaffer/internal/models"
	"github.com/KirkDiggler/gaffer/internal/services/league"
)

// Handler serves the league API
type Handler struct {
	service league.Service
}

// New creates a new API handler
func New(service league.Service) (*Handler, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	return &Handler{service: service}, nil
}

// Router builds the route table with logging and metrics middleware applied
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/teams", h.createTeam)
	mux.HandleFunc("GET /v1/teams/{id}", h.getTeam)
	mux.HandleFunc("POST /v1/teams/{id}/transfers", h.transfer)
	mux.HandleFunc("POST /v1/teams/{id}/chips", h.activateChip)
	mux.HandleFunc("DELETE /v1/teams/{id}/chips", h.cancelChip)
	mux.HandleFunc("GET /v1/competitors", h.listCompetitors)
	mux.HandleFunc("POST /v1/periods/{number}/close", h.closePeriod)
	mux.HandleFunc("GET /v1/rankings", h.getRanking)
	mux.HandleFunc("GET /v1/window", h.getWindowStatus)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return instrument(mux)
}

type createTeamRequest struct {
	ParticipantID string   `json:"participant_id"`
	Name          string   `json:"name"`
	Starting      []string `json:"starting"`
	Bench         []string `json:"bench"`
	CaptainID     string   `json:"captain_id"`
	ViceCaptainID string   `json:"vice_captain_id"`
}

func (h *Handler) createTeam(w http.ResponseWriter, req *http.Request) {
	var body createTeamRequest
	if !decode(w, req, &body) {
		return
	}

	out, err := h.service.CreateTeam(req.Context(), &league.CreateTeamInput{
		ParticipantID: body.ParticipantID,
		Name:          body.Name,
		StartingIDs:   body.Starting,
		BenchIDs:      body.Bench,
		CaptainID:     body.CaptainID,
		ViceCaptainID: body.ViceCaptainID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Team)
}

func (h *Handler) getTeam(w http.ResponseWriter, req *http.Request) {
	out, err := h.service.GetTeam(req.Context(), &league.GetTeamInput{
		TeamID: req.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Team)
}

type transferRequest struct {
	IncomingID string `json:"incoming_id"`
	OutgoingID string `json:"outgoing_id"`
}

func (h *Handler) transfer(w http.ResponseWriter, req *http.Request) {
	var body transferRequest
	if !decode(w, req, &body) {
		return
	}

	out, err := h.service.Transfer(req.Context(), &league.TransferInput{
		TeamID:     req.PathValue("id"),
		IncomingID: body.IncomingID,
		OutgoingID: body.OutgoingID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

type activateChipRequest struct {
	Chip models.Chip `json:"chip"`
}

func (h *Handler) activateChip(w http.ResponseWriter, req *http.Request) {
	var body activateChipRequest
	if !decode(w, req, &body) {
		return
	}

	out, err := h.service.ActivateChip(req.Context(), &league.ActivateChipInput{
		TeamID: req.PathValue("id"),
		Chip:   body.Chip,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Team)
}

func (h *Handler) cancelChip(w http.ResponseWriter, req *http.Request) {
	out, err := h.service.CancelChip(req.Context(), &league.CancelChipInput{
		TeamID: req.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Team)
}

func (h *Handler) listCompetitors(w http.ResponseWriter, req *http.Request) {
	out, err := h.service.ListCompetitors(req.Context(), &league.ListCompetitorsInput{
		FreeAgentsOnly: req.URL.Query().Get("free") == "true",
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Competitors)
}

func (h *Handler) closePeriod(w http.ResponseWriter, req *http.Request) {
	period, err := strconv.Atoi(req.PathValue("number"))
	if err != nil {
		http.Error(w, "invalid period number", http.StatusBadRequest)
		return
	}

	var stats map[string]models.RawStats
	if !decode(w, req, &stats) {
		return
	}

	out, err := h.service.ClosePeriod(req.Context(), &league.ClosePeriodInput{
		Period: period,
		Stats:  stats,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Points)
}

func (h *Handler) getRanking(w http.ResponseWriter, req *http.Request) {
	metric := models.RankMetric(req.URL.Query().Get("metric"))
	if metric == "" {
		metric = models.RankMetricCumulative
	}

	out, err := h.service.GetRanking(req.Context(), &league.GetRankingInput{
		Metric: metric,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Standings)
}

func (h *Handler) getWindowStatus(w http.ResponseWriter, req *http.Request) {
	out, err := h.service.GetWindowStatus(req.Context(), &league.GetWindowStatusInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Status)
}

// decode reads a JSON request body, writing a 400 on failure
func decode(w http.ResponseWriter, req *http.Request, v any) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError renders a service error with its mapped status code
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// writeJSON renders a JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
