package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aijobradar/internal/model"
)

// RiskScoreRepo handles MongoDB operations for persisted risk scores
type RiskScoreRepo interface {
	Create(ctx context.Context, score *model.RiskScore) error
	GetLatest(ctx context.Context, userID string) (*model.RiskScore, error)
}

type riskScoreRepo struct {
	scores *mongo.Collection
}

// NewRiskScoreRepo creates a new risk score repository
func NewRiskScoreRepo(db *mongo.Database) RiskScoreRepo {
	return &riskScoreRepo{scores: db.Collection("risk_scores")}
}

func (r *riskScoreRepo) Create(ctx context.Context, score *model.RiskScore) error {
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}
	if score.ID == "" {
		score.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.scores.InsertOne(ctx, score)
	return err
}

func (r *riskScoreRepo) GetLatest(ctx context.Context, userID string) (*model.RiskScore, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var score model.RiskScore
	err := r.scores.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&score)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}
