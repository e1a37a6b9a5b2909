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

// IPersonRepository defines the interface for roster persistence
type IPersonRepository interface {
	Create(ctx context.Context, person *models.Person) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error)
	FindExact(ctx context.Context, name, rollNo, gender, email, passout string) (*models.Person, error)
	Search(ctx context.Context, query string) ([]models.Person, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByRollNoEmail(ctx context.Context, rollNo, email string) error
}

// PersonRepository persists roster entries in the people collection
type PersonRepository struct {
	collection *mongo.Collection
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(database *mongo.Database) *PersonRepository {
	return &PersonRepository{collection: database.Collection("people")}
}

// Create inserts a new roster entry
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	result, err := r.collection.InsertOne(ctx, person)
	if err != nil {
		if db.IsDup(err) {
			return apperrors.ErrDuplicateRecord
		}
		return err
	}
	person.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a roster entry by its identifier
func (r *PersonRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error) {
	var person models.Person
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// FindExact retrieves the roster entry matching every given field exactly.
// Used by identity verification before self-registration.
func (r *PersonRepository) FindExact(ctx context.Context, name, rollNo, gender, email, passout string) (*models.Person, error) {
	filter := bson.M{
		"name":    name,
		"rollno":  rollNo,
		"gender":  gender,
		"email":   email,
		"passout": passout,
	}
	var person models.Person
	err := r.collection.FindOne(ctx, filter).Decode(&person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUnknownPerson
		}
		return nil, err
	}
	return &person, nil
}

// Search returns roster entries whose textual fields match the query
// case-insensitively. An empty query returns the full roster.
func (r *PersonRepository) Search(ctx context.Context, query string) ([]models.Person, error) {
	filter := bson.M{}
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"rollno": pattern},
			bson.M{"email": pattern},
			bson.M{"degree": pattern},
			bson.M{"course": pattern},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	people := []models.Person{}
	if err := cursor.All(ctx, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// Delete removes a roster entry
func (r *PersonRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByRollNoEmail removes the roster entry identified by roll number
// and email together.
func (r *PersonRepository) DeleteByRollNoEmail(ctx context.Context, rollNo, email string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"rollno": rollNo, "email": email})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
