package handler

import (
	"net/http"

	"aijobradar/internal/service"
	"aijobradar/internal/transport/rest/middleware"
)

// CourseHandler handles course recommendation endpoints
type CourseHandler struct {
	courseSvc  *service.CourseService
	profileSvc *service.ProfileService
	riskSvc    *service.RiskService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseSvc *service.CourseService, profileSvc *service.ProfileService, riskSvc *service.RiskService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, profileSvc: profileSvc, riskSvc: riskSvc}
}

// Recommended handles GET /v1/courses
func (h *CourseHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.profileSvc.Get(r.Context(), userID)
	if err == service.ErrUserNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	riskScore := 0
	if latest, err := h.riskSvc.Latest(r.Context(), userID); err == nil && latest != nil {
		riskScore = latest.Score
	}

	courses, err := h.courseSvc.Recommended(r.Context(), user.Industry, user.Skills, riskScore)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}
