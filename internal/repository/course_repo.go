package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aijobradar/internal/model"
)

// CourseRepo handles MongoDB operations for the course catalog
type CourseRepo interface {
	Upsert(ctx context.Context, course *model.Course) error
	ListAll(ctx context.Context) ([]*model.Course, error)
}

type courseRepo struct {
	courses *mongo.Collection
}

// NewCourseRepo creates a new course repository
func NewCourseRepo(db *mongo.Database) CourseRepo {
	return &courseRepo{courses: db.Collection("courses")}
}

func (r *courseRepo) Upsert(ctx context.Context, course *model.Course) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.courses.ReplaceOne(ctx, bson.M{"_id": course.ID}, course, opts)
	return err
}

func (r *courseRepo) ListAll(ctx context.Context) ([]*model.Course, error) {
	cursor, err := r.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []*model.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
