package repository

import (
	"context"
	"fmt"

	"trustmate/database"
	"trustmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTechnicianRepo implements TechnicianRepository on MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

func NewMongoTechnicianRepo() *MongoTechnicianRepo {
	return &MongoTechnicianRepo{coll: database.Collection("technicians")}
}

func (r *MongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	var tech models.Technician
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tech)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technician: %w", err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) Update(ctx context.Context, tech *models.Technician) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": tech.ID}, tech)
	if err != nil {
		return fmt.Errorf("failed to update technician: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddReview prepends the review, recomputes the average rating and bumps the
// review counter in a single replace so readers never see a partial update.
func (r *MongoTechnicianRepo) AddReview(ctx context.Context, techID string, review models.Review) (*models.Technician, error) {
	tech, err := r.GetByID(ctx, techID)
	if err != nil {
		return nil, err
	}

	updated := *tech
	updated.Reviews = append([]models.Review{review}, tech.Reviews...)
	updated.Rating = AverageRating(updated.Reviews)
	updated.ReviewCount = tech.ReviewCount + 1

	if err := r.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
