package handler

import (
	"errors"
	"net/http"
	"strings"

	"aijobradar/internal/service"
)

// AlertHandler handles the weekly alert trigger, called by an external cron
type AlertHandler struct {
	alertSvc   *service.AlertService
	cronSecret string
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertSvc *service.AlertService, cronSecret string) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc, cronSecret: cronSecret}
}

// SendWeekly handles POST /v1/alerts/weekly. Authenticated with the shared
// cron secret rather than a user token.
func (h *AlertHandler) SendWeekly(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if h.cronSecret == "" || auth != "Bearer "+strings.TrimSpace(h.cronSecret) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.alertSvc.SendWeeklyAlerts(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrAlertsDisabled) {
			writeError(w, http.StatusServiceUnavailable, "alert emails are not configured")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to send alerts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Weekly alerts sent",
		"result":  result,
	})
}
