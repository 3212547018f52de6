package recommend

import (
	"context"
	"sort"
	"strings"

	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/pkg/logger"
)

// MaxResults caps how many courses a recommendation returns.
const MaxResults = 3

type courseRepo interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type RecommendService struct {
	log  logger.Log
	repo courseRepo
}

func NewRecommendService(log logger.Log, repo courseRepo) *RecommendService {
	return &RecommendService{log: log, repo: repo}
}

// Recommend snapshots the collection and ranks it against the given
// preferences. A nil preferences value means no filtering.
func (s *RecommendService) Recommend(ctx context.Context, prefs *models.Preferences) ([]models.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(courses, prefs), nil
}

// Rank filters courses by the optional preferences (level exact,
// category case-insensitive substring, price ceiling — combined with
// AND), orders them by rating descending then enrolledStudents
// descending, and truncates to MaxResults. The sort is stable, so
// full ties keep their input order. The input slice is not modified.
func Rank(courses []models.Course, prefs *models.Preferences) []models.Course {
	matched := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if prefs != nil && !matches(c, prefs) {
			continue
		}
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].EnrolledStudents > matched[j].EnrolledStudents
	})

	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched
}

func matches(c models.Course, prefs *models.Preferences) bool {
	if prefs.Level != "" && c.Level != prefs.Level {
		return false
	}
	if prefs.Category != "" && !strings.Contains(strings.ToLower(c.Category), strings.ToLower(prefs.Category)) {
		return false
	}
	if prefs.MaxPrice != nil && c.Price > *prefs.MaxPrice {
		return false
	}
	return true
}
