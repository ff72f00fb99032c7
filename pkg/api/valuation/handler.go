// Package valuation exposes the valuation engine over HTTP. The engine
// itself stays transport-free; handlers only decode requests, call the core
// packages, and encode results.
package valuation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dcf_valuation/pkg/config"
	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/sensitivity"
)

// Handler carries the dependencies of the valuation endpoints.
type Handler struct {
	log *zap.Logger
	cfg *config.Config
}

func NewHandler(log *zap.Logger, cfg *config.Config) *Handler {
	return &Handler{log: log, cfg: cfg}
}

// Register wires the endpoints onto mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/valuation", h.HandleValuation)
	mux.HandleFunc("/api/valuation/sensitivity", h.HandleSensitivity)
	mux.HandleFunc("/api/valuation/scenarios", h.HandleScenarios)
}

type ValuationRequest struct {
	Company     dcf.CompanyData          `json:"company"`
	Assumptions dcf.ValuationAssumptions `json:"assumptions"`
}

type ValuationResponse struct {
	Result   *dcf.ValuationResult `json:"result"`
	Warnings []string             `json:"warnings,omitempty"`
}

// HandleValuation runs one full valuation.
func (h *Handler) HandleValuation(w http.ResponseWriter, r *http.Request) {
	if !h.acceptPost(w, r) {
		return
	}
	reqID := uuid.NewString()

	var req ValuationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, reqID, http.StatusBadRequest, err)
		return
	}

	res, err := dcf.PerformValuationWithBand(req.Company, req.Assumptions, h.cfg.NeutralBand)
	if err != nil {
		h.writeValuationError(w, reqID, err)
		return
	}

	h.log.Info("valuation complete",
		zap.String("request_id", reqID),
		zap.String("ticker", req.Company.Ticker),
		zap.Float64("fair_value", res.FairValuePerShare),
		zap.String("assessment", res.Assessment))

	h.writeJSON(w, ValuationResponse{
		Result:   res,
		Warnings: dcf.Validate(req.Assumptions).Warnings,
	})
}

type SensitivityRequest struct {
	Company     dcf.CompanyData          `json:"company"`
	Assumptions dcf.ValuationAssumptions `json:"assumptions"`

	Param  sensitivity.Parameter `json:"param"`
	Values []float64             `json:"values"`

	// Param2/Values2 switch the request to a two-way grid.
	Param2  sensitivity.Parameter `json:"param2,omitempty"`
	Values2 []float64             `json:"values2,omitempty"`
}

type SensitivityResponse struct {
	Points []sensitivity.Point `json:"points,omitempty"`
	Grid   *sensitivity.Grid   `json:"grid,omitempty"`
}

// HandleSensitivity runs a one-way sweep or a two-way grid.
func (h *Handler) HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	if !h.acceptPost(w, r) {
		return
	}
	reqID := uuid.NewString()

	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, reqID, http.StatusBadRequest, err)
		return
	}

	if req.Param2 != "" {
		grid, err := sensitivity.TwoWay(r.Context(), req.Company, req.Assumptions,
			req.Param, req.Values, req.Param2, req.Values2)
		if err != nil {
			h.writeError(w, reqID, http.StatusBadRequest, err)
			return
		}
		h.log.Info("two-way sensitivity complete",
			zap.String("request_id", reqID),
			zap.String("ticker", req.Company.Ticker),
			zap.Int("rows", len(req.Values)),
			zap.Int("cols", len(req.Values2)))
		h.writeJSON(w, SensitivityResponse{Grid: grid})
		return
	}

	points, err := sensitivity.OneWay(req.Company, req.Assumptions, req.Param, req.Values)
	if err != nil {
		h.writeError(w, reqID, http.StatusBadRequest, err)
		return
	}
	h.log.Info("one-way sensitivity complete",
		zap.String("request_id", reqID),
		zap.String("ticker", req.Company.Ticker),
		zap.String("param", string(req.Param)),
		zap.Int("values", len(req.Values)))
	h.writeJSON(w, SensitivityResponse{Points: points})
}

type ScenarioRequest struct {
	Company     dcf.CompanyData          `json:"company"`
	Assumptions dcf.ValuationAssumptions `json:"assumptions"`

	// Scenarios override the configured presets when present.
	Scenarios []sensitivity.Scenario `json:"scenarios,omitempty"`
}

type ScenarioResponse struct {
	Comparison []sensitivity.ScenarioSummary `json:"comparison"`
}

// HandleScenarios values each scenario and returns the side-by-side
// comparison. Without explicit scenarios the configured presets apply.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	if !h.acceptPost(w, r) {
		return
	}
	reqID := uuid.NewString()

	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, reqID, http.StatusBadRequest, err)
		return
	}

	scenarios := req.Scenarios
	if len(scenarios) == 0 {
		scenarios = h.cfg.BuildScenarios(req.Assumptions)
	}
	if len(scenarios) == 0 {
		h.writeError(w, reqID, http.StatusBadRequest, errors.New("no scenarios given and none configured"))
		return
	}

	results := sensitivity.RunScenarios(req.Company, scenarios)
	h.log.Info("scenario comparison complete",
		zap.String("request_id", reqID),
		zap.String("ticker", req.Company.Ticker),
		zap.Int("scenarios", len(scenarios)))
	h.writeJSON(w, ScenarioResponse{Comparison: sensitivity.CompareValuations(results)})
}

func (h *Handler) acceptPost(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encoding response", zap.Error(err))
	}
}

// writeValuationError maps the engine's error taxonomy onto status codes:
// invalid inputs are the client's problem, everything else is ours.
func (h *Handler) writeValuationError(w http.ResponseWriter, reqID string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dcf.ErrInvalidAssumptions),
		errors.Is(err, dcf.ErrInvalidRate),
		errors.Is(err, dcf.ErrInvalidCompanyData):
		status = http.StatusUnprocessableEntity
	}
	h.writeError(w, reqID, status, err)
}

func (h *Handler) writeError(w http.ResponseWriter, reqID string, status int, err error) {
	h.log.Warn("request failed",
		zap.String("request_id", reqID),
		zap.Int("status", status),
		zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"request_id": reqID,
		"error":      err.Error(),
	})
}
