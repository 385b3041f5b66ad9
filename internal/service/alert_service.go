package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"aijobradar/internal/metrics"
	"aijobradar/internal/model"
	"aijobradar/internal/repository"
	"aijobradar/internal/risk"
)

// EmailSender delivers a single HTML email
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ErrAlertsDisabled is returned when no email sender is configured
var ErrAlertsDisabled = errors.New("alert emails are not configured")

// AlertResult summarizes one weekly alert run
type AlertResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// AlertService sends the weekly risk digest to premium subscribers
type AlertService struct {
	users   repository.UserRepo
	scorer  *risk.Scorer
	courses *CourseService
	sender  EmailSender
	log     *zap.Logger

	// pause between sends to stay under provider rate limits
	sendDelay time.Duration
}

// NewAlertService creates a new alert service
func NewAlertService(users repository.UserRepo, scorer *risk.Scorer, courses *CourseService, sender EmailSender, log *zap.Logger) *AlertService {
	return &AlertService{
		users:     users,
		scorer:    scorer,
		courses:   courses,
		sender:    sender,
		log:       log,
		sendDelay: 100 * time.Millisecond,
	}
}

// SendWeeklyAlerts emails every premium user with alerts enabled a freshly
// computed score and course picks. Incomplete profiles are skipped.
func (s *AlertService) SendWeeklyAlerts(ctx context.Context) (*AlertResult, error) {
	if s.sender == nil {
		return nil, ErrAlertsDisabled
	}

	subscribers, err := s.users.ListAlertSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info("sending weekly alerts", zap.Int("subscribers", len(subscribers)))

	result := &AlertResult{}
	for _, user := range subscribers {
		if !user.HasCompleteProfile() {
			result.Skipped++
			continue
		}

		score := s.scorer.Score(user.JobTitle, user.Industry, user.Tasks, user.YearsInRole)

		courses, err := s.courses.Recommended(ctx, user.Industry, user.Skills, score.Score)
		if err != nil {
			s.log.Warn("course lookup failed for alert", zap.String("userId", user.ID), zap.Error(err))
			courses = nil
		}

		html := buildWeeklyAlertHTML(user, score, courses)
		if err := s.sender.Send(ctx, user.Email, "Your Weekly AI Risk Report", html); err != nil {
			s.log.Warn("alert email failed", zap.String("email", user.Email), zap.Error(err))
			metrics.AlertEmailsSent.WithLabelValues("failed").Inc()
			result.Failed++
		} else {
			metrics.AlertEmailsSent.WithLabelValues("sent").Inc()
			result.Sent++
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(s.sendDelay):
		}
	}

	s.log.Info("weekly alerts done",
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// The email's own coarse labels and colors differ from the scorer's level
// buckets; they mirror what the template always showed.
func alertRiskLabel(score int) (string, string) {
	switch {
	case score < 30:
		return "Low", "#22c55e"
	case score < 60:
		return "Medium", "#eab308"
	case score < 80:
		return "High", "#f97316"
	default:
		return "Critical", "#ef4444"
	}
}

func buildWeeklyAlertHTML(user *model.User, score *model.RiskResult, courses []*model.Course) string {
	label, color := alertRiskLabel(score.Score)

	name := user.Name
	if name == "" {
		name = "there"
	}

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><body style="margin:0;padding:0;background-color:#0f172a;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">`)
	sb.WriteString(`<div style="max-width:600px;margin:0 auto;padding:40px 20px;">`)
	sb.WriteString(`<div style="text-align:center;margin-bottom:32px;"><h1 style="color:#10b981;font-size:28px;margin:0;">AI Job Radar</h1><p style="color:#94a3b8;font-size:14px;margin-top:8px;">Your Weekly Career Intelligence Report</p></div>`)
	sb.WriteString(`<div style="background:linear-gradient(135deg,#1e293b 0%,#334155 100%);border-radius:16px;padding:32px;border:1px solid #475569;">`)

	fmt.Fprintf(&sb, `<p style="color:#f1f5f9;font-size:18px;margin:0 0 24px 0;">Hi %s</p>`, name)

	fmt.Fprintf(&sb, `<div style="background-color:#0f172a;border-radius:12px;padding:24px;margin-bottom:24px;text-align:center;">`+
		`<p style="color:#94a3b8;font-size:12px;text-transform:uppercase;letter-spacing:1px;margin:0 0 8px 0;">Your Risk Score as %s</p>`+
		`<div style="font-size:48px;font-weight:bold;color:%s;margin:8px 0;">%d%%</div>`+
		`<p style="color:#94a3b8;font-size:14px;margin:0;">%s Risk Level</p></div>`,
		user.JobTitle, color, score.Score, label)

	if len(score.Recommendations) > 0 {
		sb.WriteString(`<div style="margin-bottom:24px;"><h2 style="color:#f1f5f9;font-size:16px;margin:0 0 16px 0;">Skills To Build</h2><ul style="margin:0;padding:0;list-style:none;">`)
		for _, rec := range score.Recommendations {
			fmt.Fprintf(&sb, `<li style="background-color:#0f172a;border-radius:8px;padding:12px 16px;margin-bottom:8px;color:#cbd5e1;font-size:14px;">%s</li>`, rec)
		}
		sb.WriteString(`</ul></div>`)
	}

	if len(courses) > 0 {
		sb.WriteString(`<div style="margin-bottom:24px;"><h2 style="color:#f1f5f9;font-size:16px;margin:0 0 16px 0;">Recommended Courses</h2>`)
		for _, course := range courses {
			fmt.Fprintf(&sb, `<a href="%s" style="display:block;background-color:#0f172a;border-radius:8px;padding:16px;margin-bottom:8px;text-decoration:none;">`+
				`<p style="color:#f1f5f9;font-size:14px;font-weight:600;margin:0 0 4px 0;">%s</p>`+
				`<p style="color:#94a3b8;font-size:12px;margin:0;">%s</p></a>`,
				course.AffiliateURL, course.Title, course.Description)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div></div></body></html>`)
	return sb.String()
}
