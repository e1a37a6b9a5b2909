package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/db"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

// IAdminRepository defines the interface for admin account persistence
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
}

// AdminRepository persists admin accounts in the admins collection
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(database *mongo.Database) *AdminRepository {
	return &AdminRepository{collection: database.Collection("admins")}
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if db.IsDup(err) {
			return apperrors.ErrDuplicateAccount
		}
		return err
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByUsername retrieves an admin account by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetByID retrieves an admin account by its identifier
func (r *AdminRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}
