package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseMemory keeps courses in insertion order behind a mutex. It
// satisfies the same consumer interfaces as the Mongo store and backs
// tests and local runs without a database.
type CourseMemory struct {
	mu      sync.RWMutex
	courses []models.Course
}

func NewCourseMemory() *CourseMemory {
	return &CourseMemory{courses: make([]models.Course, 0)}
}

func (r *CourseMemory) NewCourse(_ context.Context, course *models.Course) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	course.ID = primitive.NewObjectID()
	course.CreatedAt = now
	course.UpdatedAt = now
	r.courses = append(r.courses, *course)
	return course.ID, nil
}

func (r *CourseMemory) CourseByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, app_errors.ErrCourseNotFound
}

func (r *CourseMemory) ListCourses(_ context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *CourseMemory) CoursesByCategory(_ context.Context, category string) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(category)
	out := make([]models.Course, 0)
	for _, c := range r.courses {
		if strings.Contains(strings.ToLower(c.Category), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CourseMemory) UpdateCourse(_ context.Context, id primitive.ObjectID, update models.CourseUpdate) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID != id {
			continue
		}
		c := &r.courses[i]
		if update.Title != nil {
			c.Title = *update.Title
		}
		if update.Description != nil {
			c.Description = *update.Description
		}
		if update.Instructor != nil {
			c.Instructor = *update.Instructor
		}
		if update.Duration != nil {
			c.Duration = *update.Duration
		}
		if update.Level != nil {
			c.Level = *update.Level
		}
		if update.Category != nil {
			c.Category = *update.Category
		}
		if update.Price != nil {
			c.Price = *update.Price
		}
		if update.Rating != nil {
			c.Rating = *update.Rating
		}
		if update.EnrolledStudents != nil {
			c.EnrolledStudents = *update.EnrolledStudents
		}
		if update.Tags != nil {
			c.Tags = *update.Tags
		}
		c.UpdatedAt = time.Now().UTC()
		out := *c
		return &out, nil
	}
	return nil, app_errors.ErrCourseNotFound
}

func (r *CourseMemory) DeleteCourse(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *CourseMemory) CountCourses(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.courses)), nil
}

func (r *CourseMemory) SeedCourses(_ context.Context, courses []models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range courses {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		r.courses = append(r.courses, c)
	}
	return nil
}
