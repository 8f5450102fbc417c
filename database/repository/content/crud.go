package contentRepo

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

// MongoContentRepo implements ContentRepository on the "page_content" collection.
type MongoContentRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoContentRepo(db *mongo.Database) ContentRepository {
	repo := &MongoContentRepo{coll: db.Collection("page_content"), now: time.Now}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create page_content indexes: %v\n", err)
	}
	return repo
}

func (r *MongoContentRepo) Get(ctx context.Context, slug string) (*models.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var page models.PageContent
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&page); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to fetch content %s: %w", slug, err)
	}
	return &page, nil
}

func (r *MongoContentRepo) UpsertDraft(ctx context.Context, slug, payload string) error {
	return r.upsert(ctx, slug, bson.M{
		"slug":          slug,
		"draft_content": payload,
		"updated_at":    r.now().UTC(),
	})
}

func (r *MongoContentRepo) Publish(ctx context.Context, slug, payload string) error {
	now := r.now().UTC()
	return r.upsert(ctx, slug, bson.M{
		"slug":              slug,
		"draft_content":     payload,
		"published_content": payload,
		"published":         true,
		"updated_at":        now,
		"published_at":      now,
	})
}

func (r *MongoContentRepo) upsert(ctx context.Context, slug string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts); err != nil {
		return fmt.Errorf("failed to upsert content %s: %w", slug, err)
	}
	return nil
}
