package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RiskScoresComputed counts scorer invocations by resulting level
	RiskScoresComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aijobradar_risk_scores_computed_total",
		Help: "Risk scores computed, labeled by risk level",
	}, []string{"level"})

	// SimulationsRun counts what-if simulations
	SimulationsRun = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aijobradar_whatif_simulations_total",
		Help: "What-if simulations run",
	})

	// CoachRequests counts career-coach completions by outcome
	CoachRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aijobradar_coach_requests_total",
		Help: "Career coach requests, labeled by outcome",
	}, []string{"outcome"})

	// AlertEmailsSent counts weekly alert emails by outcome
	AlertEmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aijobradar_alert_emails_total",
		Help: "Weekly alert emails attempted, labeled by outcome",
	}, []string{"outcome"})
)
