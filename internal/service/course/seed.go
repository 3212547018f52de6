package course

import (
	"time"

	"github.com/epimer007/course-management-app/internal/models"
)

// SeedCourses returns the three baseline records inserted into an
// empty collection. Timestamps are preset, not the insertion time.
func SeedCourses() []models.Course {
	return []models.Course{
		{
			Title:            "Introduction to React",
			Description:      "Learn the fundamentals of React including components, state, and props.",
			Instructor:       "John Smith",
			Duration:         20,
			Level:            models.LevelBeginner,
			Category:         "Web Development",
			Price:            99.99,
			Rating:           4.5,
			EnrolledStudents: 1250,
			CreatedAt:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Tags:             []string{"React", "JavaScript", "Frontend"},
		},
		{
			Title:            "Advanced Node.js",
			Description:      "Master backend development with Node.js, Express, and MongoDB.",
			Instructor:       "Sarah Johnson",
			Duration:         35,
			Level:            models.LevelAdvanced,
			Category:         "Backend Development",
			Price:            149.99,
			Rating:           4.8,
			EnrolledStudents: 890,
			CreatedAt:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Tags:             []string{"Node.js", "Express", "MongoDB", "Backend"},
		},
		{
			Title:            "Python for Data Science",
			Description:      "Comprehensive guide to data analysis and machine learning with Python.",
			Instructor:       "Dr. Michael Chen",
			Duration:         45,
			Level:            models.LevelIntermediate,
			Category:         "Data Science",
			Price:            199.99,
			Rating:           4.7,
			EnrolledStudents: 2100,
			CreatedAt:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Tags:             []string{"Python", "Data Science", "Machine Learning"},
		},
	}
}
