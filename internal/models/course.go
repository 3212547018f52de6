package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// ValidLevel reports whether s is one of the three course levels.
func ValidLevel(s string) bool {
	return s == LevelBeginner || s == LevelIntermediate || s == LevelAdvanced
}

type Course struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description" bson:"description"`
	Instructor       string             `json:"instructor" bson:"instructor"`
	Duration         float64            `json:"duration" bson:"duration"` // hours
	Level            string             `json:"level" bson:"level"`
	Category         string             `json:"category" bson:"category"`
	Price            float64            `json:"price" bson:"price"`
	Rating           float64            `json:"rating" bson:"rating"`
	EnrolledStudents int                `json:"enrolledStudents" bson:"enrolledStudents"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
	Tags             []string           `json:"tags" bson:"tags"`
}

// CourseUpdate carries a partial update. Nil fields are left untouched;
// the identifier and createdAt are never updatable.
type CourseUpdate struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Instructor       *string   `json:"instructor"`
	Duration         *float64  `json:"duration"`
	Level            *string   `json:"level"`
	Category         *string   `json:"category"`
	Price            *float64  `json:"price"`
	Rating           *float64  `json:"rating"`
	EnrolledStudents *int      `json:"enrolledStudents"`
	Tags             *[]string `json:"tags"`
}

// Preferences narrows the recommendation query. All fields are optional
// and combine with logical AND.
type Preferences struct {
	Level    string   `json:"level"`
	Category string   `json:"category"`
	MaxPrice *float64 `json:"maxPrice"`
}
