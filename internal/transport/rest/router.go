package rest

import (
	"net/http"
	"os"
	"time"

	"aijobradar/internal/service"
	"aijobradar/internal/transport/rest/handler"
	"aijobradar/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	RiskService    *service.RiskService
	WhatIfService  *service.WhatIfService
	CourseService  *service.CourseService
	CoachService   *service.CoachService
	AlertService   *service.AlertService
	CronSecret     string
	Logger         *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	profileHandler := handler.NewProfileHandler(c.ProfileService)
	riskHandler := handler.NewRiskHandler(c.RiskService, c.WhatIfService)
	courseHandler := handler.NewCourseHandler(c.CourseService, c.ProfileService, c.RiskService)
	coachHandler := handler.NewCoachHandler(c.CoachService, c.ProfileService)
	alertHandler := handler.NewAlertHandler(c.AlertService, c.CronSecret)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService, c.ProfileService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	r.Use(requestLogger(c.Logger))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Cron-triggered routes (authenticated with shared secret, not a user token)
	v1.HandleFunc("/alerts/weekly", alertHandler.SendWeekly).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/profile", profileHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile", profileHandler.Update).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/onboarding", profileHandler.Onboard).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/risk", riskHandler.Compute).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/risk", riskHandler.Latest).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/whatif", riskHandler.WhatIf).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/courses", courseHandler.Recommended).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/stats/industries", riskHandler.IndustryStats).Methods("GET", "OPTIONS")

	// Premium routes (require an active subscription on top of auth)
	premiumRoutes := userRoutes.NewRoute().Subrouter()
	premiumRoutes.Use(authMW.RequirePremium)

	premiumRoutes.HandleFunc("/coach", coachHandler.Chat).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogger(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
