package course

import (
	"errors"

	"github.com/epimer007/course-management-app/internal/app_errors"
)

var validationErrs = []error{
	app_errors.ErrTitleRequired,
	app_errors.ErrDescriptionRequired,
	app_errors.ErrInstructorRequired,
	app_errors.ErrCategoryRequired,
	app_errors.ErrInvalidLevel,
	app_errors.ErrInvalidDuration,
	app_errors.ErrInvalidPrice,
	app_errors.ErrInvalidRating,
	app_errors.ErrInvalidEnrollment,
	app_errors.ErrDuplicateTag,
}

func isValidationErr(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
