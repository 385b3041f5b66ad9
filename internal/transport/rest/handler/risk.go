package handler

import (
	"encoding/json"
	"net/http"

	"aijobradar/internal/service"
	"aijobradar/internal/transport/rest/middleware"
)

// RiskHandler handles risk scoring and what-if endpoints
type RiskHandler struct {
	riskSvc   *service.RiskService
	whatifSvc *service.WhatIfService
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(riskSvc *service.RiskService, whatifSvc *service.WhatIfService) *RiskHandler {
	return &RiskHandler{riskSvc: riskSvc, whatifSvc: whatifSvc}
}

// Compute handles POST /v1/risk
func (h *RiskHandler) Compute(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	computed, err := h.riskSvc.Compute(r.Context(), userID)
	if err == service.ErrIncompleteProfile {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err == service.ErrUserNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to calculate risk score")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"riskScore": computed,
	})
}

// Latest handles GET /v1/risk
func (h *RiskHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	latest, err := h.riskSvc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch risk score")
		return
	}

	// No score yet is not an error
	writeJSON(w, http.StatusOK, map[string]interface{}{"riskScore": latest})
}

// WhatIfRequest is the request body for a what-if simulation
type WhatIfRequest struct {
	LearningSkills []string `json:"learningSkills"`
}

// WhatIf handles POST /v1/whatif
func (h *RiskHandler) WhatIf(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req WhatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.whatifSvc.Simulate(r.Context(), userID, req.LearningSkills)
	if err == service.ErrNoSkillsSelected || err == service.ErrIncompleteProfile {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err == service.ErrUserNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to calculate simulation")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// IndustryStats handles GET /v1/stats/industries
func (h *RiskHandler) IndustryStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	industry := r.URL.Query().Get("industry")
	if industry == "" {
		writeError(w, http.StatusBadRequest, "industry query parameter is required")
		return
	}

	stats, percentile, err := h.riskSvc.IndustryStats(r.Context(), industry, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch industry stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":      stats,
		"percentile": percentile,
	})
}
