package service

import (
	"context"
	"errors"

	"aijobradar/internal/model"
	"aijobradar/internal/repository"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncompleteProfile = errors.New("please complete your profile first")
	ErrMissingFields     = errors.New("missing required fields")
)

// ProfileService handles career profile reads and writes. All profile
// completeness validation lives here, at the boundary; the scorer itself
// never rejects input.
type ProfileService struct {
	users repository.UserRepo
}

// NewProfileService creates a new profile service
func NewProfileService(users repository.UserRepo) *ProfileService {
	return &ProfileService{users: users}
}

// Get returns the user's profile
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial profile update
func (s *ProfileService) Update(ctx context.Context, userID string, update *model.ProfileUpdate) (*model.User, error) {
	user, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// OnboardingRequest carries the initial profile setup
type OnboardingRequest struct {
	JobTitle    string   `json:"jobTitle"`
	Industry    string   `json:"industry"`
	Tasks       []string `json:"tasks"`
	YearsInRole int      `json:"yearsInRole"`
	Skills      []string `json:"skills"`
}

// Onboard validates and stores the initial profile
func (s *ProfileService) Onboard(ctx context.Context, userID string, req *OnboardingRequest) (*model.User, error) {
	if req.JobTitle == "" || req.Industry == "" || len(req.Skills) == 0 {
		return nil, ErrMissingFields
	}

	update := &model.ProfileUpdate{
		JobTitle:    &req.JobTitle,
		Industry:    &req.Industry,
		Tasks:       req.Tasks,
		YearsInRole: &req.YearsInRole,
		Skills:      req.Skills,
	}
	return s.Update(ctx, userID, update)
}

// GetComplete returns the profile only if it is scoreable
func (s *ProfileService) GetComplete(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasCompleteProfile() {
		return nil, ErrIncompleteProfile
	}
	return user, nil
}
