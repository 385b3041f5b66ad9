package handler

import (
	"encoding/json"
	"net/http"

	"aijobradar/internal/service"
	"aijobradar/internal/transport/rest/middleware"
)

// CoachHandler handles the premium career-coach endpoint
type CoachHandler struct {
	coachSvc   *service.CoachService
	profileSvc *service.ProfileService
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachSvc *service.CoachService, profileSvc *service.ProfileService) *CoachHandler {
	return &CoachHandler{coachSvc: coachSvc, profileSvc: profileSvc}
}

// ChatRequest is the request body for a coach message
type ChatRequest struct {
	Message             string                `json:"message"`
	ConversationHistory []service.ChatMessage `json:"conversationHistory"`
}

// Chat handles POST /v1/coach
func (h *CoachHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	user, err := h.profileSvc.Get(r.Context(), userID)
	if err == service.ErrUserNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	reply, err := h.coachSvc.Chat(r.Context(), user, req.Message, req.ConversationHistory)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}
