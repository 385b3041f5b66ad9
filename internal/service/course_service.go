package service

import (
	"context"
	"sort"
	"strings"

	"aijobradar/internal/model"
	"aijobradar/internal/repository"
)

const recommendedCourseCount = 3

// CourseService recommends catalog courses against a user's profile
type CourseService struct {
	courses repository.CourseRepo
}

// NewCourseService creates a new course service
func NewCourseService(courses repository.CourseRepo) *CourseService {
	return &CourseService{courses: courses}
}

// Recommended returns the top courses for the user's industry, skills and
// latest risk score
func (s *CourseService) Recommended(ctx context.Context, industry string, skills []string, riskScore int) ([]*model.Course, error) {
	all, err := s.courses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return RankCourses(all, industry, skills, riskScore), nil
}

// RankCourses orders the catalog for a profile: AI courses first above a
// 50-point score, filtered to the industry when any course matches it, then
// courses overlapping the user's existing skills pushed down. Top 3.
func RankCourses(courses []*model.Course, industry string, skills []string, riskScore int) []*model.Course {
	recommended := make([]*model.Course, len(courses))
	copy(recommended, courses)

	if riskScore > 50 {
		sort.SliceStable(recommended, func(i, j int) bool {
			return isAICourse(recommended[i]) && !isAICourse(recommended[j])
		})
	}

	if industry != "" {
		matches := make([]*model.Course, 0, len(recommended))
		for _, c := range recommended {
			if courseMatchesIndustry(c, industry) {
				matches = append(matches, c)
			}
		}
		if len(matches) > 0 {
			recommended = matches
		}
	}

	if len(skills) > 0 {
		sort.SliceStable(recommended, func(i, j int) bool {
			// Less overlap with existing skills ranks higher
			return skillOverlap(recommended[i], skills) < skillOverlap(recommended[j], skills)
		})
	}

	if len(recommended) > recommendedCourseCount {
		recommended = recommended[:recommendedCourseCount]
	}
	return recommended
}

func isAICourse(c *model.Course) bool {
	for _, cat := range c.Category {
		if cat == "ai" {
			return true
		}
	}
	return false
}

func courseMatchesIndustry(c *model.Course, industry string) bool {
	needle := strings.ToLower(industry)
	for _, ind := range c.Industries {
		if strings.Contains(strings.ToLower(ind), needle) {
			return true
		}
	}
	return false
}

func skillOverlap(c *model.Course, userSkills []string) int {
	overlap := 0
	for _, courseSkill := range c.Skills {
		needle := strings.ToLower(courseSkill)
		for _, us := range userSkills {
			if strings.Contains(strings.ToLower(us), needle) {
				overlap++
				break
			}
		}
	}
	return overlap
}
