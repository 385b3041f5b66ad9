package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"aijobradar/internal/cache"
	"aijobradar/internal/model"
	"aijobradar/internal/risk"
)

// fakeUserRepo is an in-memory UserRepo for service tests
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id string, update *model.ProfileUpdate) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if update.JobTitle != nil {
		user.JobTitle = *update.JobTitle
	}
	if update.Industry != nil {
		user.Industry = *update.Industry
	}
	if update.Tasks != nil {
		user.Tasks = update.Tasks
	}
	if update.YearsInRole != nil {
		user.YearsInRole = *update.YearsInRole
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	if update.AlertEmail != nil {
		user.AlertEmail = *update.AlertEmail
	}
	user.UpdatedAt = time.Now()
	return user, nil
}

func (r *fakeUserRepo) ListAlertSubscribers(_ context.Context) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var subs []*model.User
	for _, u := range r.users {
		if u.IsPremium && u.AlertEmail && u.JobTitle != "" {
			subs = append(subs, u)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].ID < subs[j].ID })
	return subs, nil
}

// fakeRiskScoreRepo keeps scores in insertion order
type fakeRiskScoreRepo struct {
	mu     sync.Mutex
	scores []*model.RiskScore
}

func (r *fakeRiskScoreRepo) Create(_ context.Context, score *model.RiskScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}
	if score.ID == "" {
		score.ID = fmt.Sprintf("score_%d", len(r.scores)+1)
	}
	r.scores = append(r.scores, score)
	return nil
}

func (r *fakeRiskScoreRepo) GetLatest(_ context.Context, userID string) (*model.RiskScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.scores) - 1; i >= 0; i-- {
		if r.scores[i].UserID == userID {
			return r.scores[i], nil
		}
	}
	return nil, nil
}

// fakeCourseRepo serves a fixed catalog
type fakeCourseRepo struct {
	catalog []*model.Course
}

func (r *fakeCourseRepo) Upsert(_ context.Context, course *model.Course) error {
	r.catalog = append(r.catalog, course)
	return nil
}

func (r *fakeCourseRepo) ListAll(_ context.Context) ([]*model.Course, error) {
	return r.catalog, nil
}

func newTestCaches(t *testing.T) (cache.RiskCache, cache.IndustryStatsCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewRiskCache(client), cache.NewIndustryStatsCache(client)
}

func newTestRiskService(t *testing.T, users *fakeUserRepo) (*RiskService, *fakeRiskScoreRepo) {
	t.Helper()
	scores := &fakeRiskScoreRepo{}
	riskCache, statsCache := newTestCaches(t)
	svc := NewRiskService(NewProfileService(users), scores, risk.NewScorer(), riskCache, statsCache, zap.NewNop())
	return svc, scores
}
