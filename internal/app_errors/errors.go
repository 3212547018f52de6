package app_errors

import "errors"

var ErrCourseNotFound = errors.New("course not found")
var ErrTitleRequired = errors.New("title is required")
var ErrDescriptionRequired = errors.New("description is required")
var ErrInstructorRequired = errors.New("instructor is required")
var ErrCategoryRequired = errors.New("category is required")
var ErrInvalidLevel = errors.New("level must be Beginner, Intermediate or Advanced")
var ErrInvalidDuration = errors.New("duration must be positive")
var ErrInvalidPrice = errors.New("price must not be negative")
var ErrInvalidRating = errors.New("rating must be between 0 and 5")
var ErrInvalidEnrollment = errors.New("enrolledStudents must not be negative")
var ErrDuplicateTag = errors.New("tags must be unique and non-empty")
