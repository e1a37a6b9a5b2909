package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

// IPostRepository defines the interface for community post persistence
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	ListByAccess(ctx context.Context, tiers ...models.AccessTier) ([]models.Post, error)
	ListByAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByAlumni(ctx context.Context, alumniID primitive.ObjectID) (int64, error)
}

// PostRepository persists community posts in the posts collection
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(database *mongo.Database) *PostRepository {
	return &PostRepository{collection: database.Collection("posts")}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a post by its identifier
func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListByAccess returns posts in any of the given visibility tiers,
// newest first. With no tiers it returns every post.
func (r *PostRepository) ListByAccess(ctx context.Context, tiers ...models.AccessTier) ([]models.Post, error) {
	filter := bson.M{}
	if len(tiers) > 0 {
		filter["access"] = bson.M{"$in": tiers}
	}
	return r.find(ctx, filter)
}

// ListByAlumni returns all posts owned by one alumni account, newest first
func (r *PostRepository) ListByAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]models.Post, error) {
	return r.find(ctx, bson.M{"alumni_id": alumniID})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByAlumni removes every post owned by one alumni account and
// returns the number removed. Used by the account deletion cascade.
func (r *PostRepository) DeleteByAlumni(ctx context.Context, alumniID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"alumni_id": alumniID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
