package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"aijobradar/internal/model"
)

// UserRepo handles MongoDB operations for user accounts and profiles
type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, update *model.ProfileUpdate) (*model.User, error)
	ListAlertSubscribers(ctx context.Context) ([]*model.User, error)
}

type userRepo struct {
	users *mongo.Collection
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{users: db.Collection("users")}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = user.CreatedAt
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id string, update *model.ProfileUpdate) (*model.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.JobTitle != nil {
		set["jobTitle"] = *update.JobTitle
	}
	if update.Industry != nil {
		set["industry"] = *update.Industry
	}
	if update.Tasks != nil {
		set["tasks"] = update.Tasks
	}
	if update.YearsInRole != nil {
		set["yearsInRole"] = *update.YearsInRole
	}
	if update.Skills != nil {
		set["skills"] = update.Skills
	}
	if update.AlertEmail != nil {
		set["alertEmail"] = *update.AlertEmail
	}

	_, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) ListAlertSubscribers(ctx context.Context) ([]*model.User, error) {
	filter := bson.M{
		"isPremium":  true,
		"alertEmail": true,
		"jobTitle":   bson.M{"$ne": ""},
	}
	cursor, err := r.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
