package course

import (
	"context"
	"fmt"

	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type courseRepo interface {
	NewCourse(ctx context.Context, course *models.Course) (primitive.ObjectID, error)
	CourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	CoursesByCategory(ctx context.Context, category string) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id primitive.ObjectID, update models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id primitive.ObjectID) (bool, error)
	CountCourses(ctx context.Context) (int64, error)
	SeedCourses(ctx context.Context, courses []models.Course) error
}

type CourseService struct {
	log  logger.Log
	repo courseRepo
}

func NewCourseService(log logger.Log, repo courseRepo) *CourseService {
	return &CourseService{log: log, repo: repo}
}

// CreateCourse validates the payload, lets the store assign identifier
// and timestamps, and returns the stored record.
func (s *CourseService) CreateCourse(ctx context.Context, course models.Course) (*models.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if _, err := s.repo.NewCourse(ctx, &course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &course, nil
}

// ListCourses returns every course in store-native order.
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.repo.ListCourses(ctx)
}

// CourseByID resolves an opaque identifier. A malformed identifier is
// reported the same way as an absent one.
func (s *CourseService) CourseByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrCourseNotFound
	}
	return s.repo.CourseByID(ctx, oid)
}

func (s *CourseService) CoursesByCategory(ctx context.Context, category string) ([]models.Course, error) {
	return s.repo.CoursesByCategory(ctx, category)
}

// UpdateCourse merges the provided fields into the existing record and
// refreshes updatedAt. The identifier and createdAt stay untouched.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrCourseNotFound
	}
	return s.repo.UpdateCourse(ctx, oid, update)
}

// DeleteCourse removes the record permanently. A miss is a negative
// result, not an error.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	return s.repo.DeleteCourse(ctx, oid)
}

// SeedInitialData inserts the three baseline courses when the
// collection is empty. The emptiness check is the only guard, so the
// call is idempotent in sequence; it runs once at startup.
func (s *CourseService) SeedInitialData(ctx context.Context) error {
	count, err := s.repo.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("seed: count courses: %w", err)
	}
	if count != 0 {
		return nil
	}
	if err := s.repo.SeedCourses(ctx, SeedCourses()); err != nil {
		return fmt.Errorf("seed: insert courses: %w", err)
	}
	s.log.Info("initial course data seeded")
	return nil
}
