package course

import (
	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
)

// Numeric and enum constraints are re-checked here instead of trusting
// the browser form. Invalid input is rejected, never clamped.
func validateCourse(c models.Course) error {
	if c.Title == "" {
		return app_errors.ErrTitleRequired
	}
	if c.Description == "" {
		return app_errors.ErrDescriptionRequired
	}
	if c.Instructor == "" {
		return app_errors.ErrInstructorRequired
	}
	if c.Category == "" {
		return app_errors.ErrCategoryRequired
	}
	if !models.ValidLevel(c.Level) {
		return app_errors.ErrInvalidLevel
	}
	if c.Duration <= 0 {
		return app_errors.ErrInvalidDuration
	}
	if c.Price < 0 {
		return app_errors.ErrInvalidPrice
	}
	if c.Rating < 0 || c.Rating > 5 {
		return app_errors.ErrInvalidRating
	}
	if c.EnrolledStudents < 0 {
		return app_errors.ErrInvalidEnrollment
	}
	return validateTags(c.Tags)
}

func validateUpdate(u models.CourseUpdate) error {
	if u.Title != nil && *u.Title == "" {
		return app_errors.ErrTitleRequired
	}
	if u.Description != nil && *u.Description == "" {
		return app_errors.ErrDescriptionRequired
	}
	if u.Instructor != nil && *u.Instructor == "" {
		return app_errors.ErrInstructorRequired
	}
	if u.Category != nil && *u.Category == "" {
		return app_errors.ErrCategoryRequired
	}
	if u.Level != nil && !models.ValidLevel(*u.Level) {
		return app_errors.ErrInvalidLevel
	}
	if u.Duration != nil && *u.Duration <= 0 {
		return app_errors.ErrInvalidDuration
	}
	if u.Price != nil && *u.Price < 0 {
		return app_errors.ErrInvalidPrice
	}
	if u.Rating != nil && (*u.Rating < 0 || *u.Rating > 5) {
		return app_errors.ErrInvalidRating
	}
	if u.EnrolledStudents != nil && *u.EnrolledStudents < 0 {
		return app_errors.ErrInvalidEnrollment
	}
	if u.Tags != nil {
		return validateTags(*u.Tags)
	}
	return nil
}

func validateTags(tags []string) error {
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			return app_errors.ErrDuplicateTag
		}
		if _, ok := seen[t]; ok {
			return app_errors.ErrDuplicateTag
		}
		seen[t] = struct{}{}
	}
	return nil
}
