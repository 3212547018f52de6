package service

import (
	"github.com/epimer007/course-management-app/internal/service/course"
	"github.com/epimer007/course-management-app/internal/service/recommend"
)

type Collection struct {
	*course.CourseService
	*recommend.RecommendService
}
