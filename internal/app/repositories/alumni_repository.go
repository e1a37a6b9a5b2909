package repositories

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/db"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

// IAlumniRepository defines the interface for alumni account persistence
type IAlumniRepository interface {
	Create(ctx context.Context, alumni *models.Alumni) error
	GetByUsername(ctx context.Context, username string) (*models.Alumni, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Alumni, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, alumni *models.Alumni) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]models.Alumni, error)
	Search(ctx context.Context, query string, excludeID primitive.ObjectID) ([]models.Alumni, error)
}

// AlumniRepository persists alumni accounts in the alumnis collection
type AlumniRepository struct {
	collection *mongo.Collection
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(database *mongo.Database) *AlumniRepository {
	return &AlumniRepository{collection: database.Collection("alumnis")}
}

// Create inserts a new alumni account
func (r *AlumniRepository) Create(ctx context.Context, alumni *models.Alumni) error {
	result, err := r.collection.InsertOne(ctx, alumni)
	if err != nil {
		if db.IsDup(err) {
			return apperrors.ErrDuplicateAccount
		}
		return err
	}
	alumni.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByUsername retrieves an alumni account by username
func (r *AlumniRepository) GetByUsername(ctx context.Context, username string) (*models.Alumni, error) {
	var alumni models.Alumni
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&alumni)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &alumni, nil
}

// GetByID retrieves an alumni account by its identifier
func (r *AlumniRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Alumni, error) {
	var alumni models.Alumni
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&alumni)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &alumni, nil
}

// UpdateProfile overwrites the mutable profile fields of an alumni account.
// Password, profile photo and roster reference are not touched here.
func (r *AlumniRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, alumni *models.Alumni) error {
	update := bson.M{"$set": bson.M{
		"username":              alumni.Username,
		"working_status":        alumni.WorkingStatus,
		"organization":          alumni.Organization,
		"role":                  alumni.Role,
		"previous_company":      alumni.PreviousCompany,
		"skills":                alumni.Skills,
		"industrial_experience": alumni.IndustrialExperience,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if db.IsDup(err) {
			return apperrors.ErrDuplicateAccount
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes an alumni account
func (r *AlumniRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns all alumni accounts sorted by username
func (r *AlumniRepository) List(ctx context.Context) ([]models.Alumni, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	alumnis := []models.Alumni{}
	if err := cursor.All(ctx, &alumnis); err != nil {
		return nil, err
	}
	return alumnis, nil
}

// Search returns alumni accounts whose profile fields match the query
// case-insensitively, excluding the caller's own account. An empty
// query returns everyone else.
func (r *AlumniRepository) Search(ctx context.Context, query string, excludeID primitive.ObjectID) ([]models.Alumni, error) {
	filter := bson.M{"_id": bson.M{"$ne": excludeID}}
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"organization": pattern},
			bson.M{"role": pattern},
			bson.M{"skills": pattern},
			bson.M{"working_status": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	alumnis := []models.Alumni{}
	if err := cursor.All(ctx, &alumnis); err != nil {
		return nil, err
	}
	return alumnis, nil
}
