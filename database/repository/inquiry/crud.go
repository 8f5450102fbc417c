package inquiryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"everafter/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInquiryRepo struct {
	coll *mongo.Collection
}

func NewMongoInquiryRepo(db *mongo.Database) InquiryRepository {
	repo := &MongoInquiryRepo{coll: db.Collection("inquiries")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vendorSlug", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		fmt.Printf("failed to create inquiry indexes: %v\n", err)
	}
	return repo
}

func (r *MongoInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

func (r *MongoInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var inquiry models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inquiry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to fetch inquiry %s: %w", id, err)
	}
	return &inquiry, nil
}

func (r *MongoInquiryRepo) List(ctx context.Context, vendorSlug string, limit int) ([]models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if vendorSlug != "" {
		filter["vendorSlug"] = vendorSlug
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *MongoInquiryRepo) MarkDelivered(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"delivered": true, "deliveredAt": now}})
	if err != nil {
		return fmt.Errorf("failed to mark inquiry %s delivered: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
