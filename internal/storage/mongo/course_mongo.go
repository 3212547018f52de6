package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CourseMongo struct {
	collection *mongo.Collection
}

func NewCourseMongo(db *mongo.Database, collection string) *CourseMongo {
	return &CourseMongo{collection: db.Collection(collection)}
}

func (r *CourseMongo) NewCourse(ctx context.Context, course *models.Course) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	course.ID = primitive.NilObjectID

	res, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	course.ID = id
	return id, nil
}

func (r *CourseMongo) CourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course := &models.Course{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// ListCourses returns every record in store-native order.
func (r *CourseMongo) ListCourses(ctx context.Context) ([]models.Course, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := make([]models.Course, 0)
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseMongo) CoursesByCategory(ctx context.Context, category string) ([]models.Course, error) {
	filter := bson.M{"category": primitive.Regex{Pattern: regexp.QuoteMeta(category), Options: "i"}}
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := make([]models.Course, 0)
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// UpdateCourse applies the non-nil fields of update plus a fresh
// updatedAt. The identifier and createdAt are never part of the $set.
func (r *CourseMongo) UpdateCourse(ctx context.Context, id primitive.ObjectID, update models.CourseUpdate) (*models.Course, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Instructor != nil {
		set["instructor"] = *update.Instructor
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Level != nil {
		set["level"] = *update.Level
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.EnrolledStudents != nil {
		set["enrolledStudents"] = *update.EnrolledStudents
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	course := &models.Course{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *CourseMongo) DeleteCourse(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *CourseMongo) CountCourses(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedCourses inserts baseline records keeping their preset timestamps.
func (r *CourseMongo) SeedCourses(ctx context.Context, courses []models.Course) error {
	docs := make([]interface{}, 0, len(courses))
	for i := range courses {
		docs = append(docs, courses[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
