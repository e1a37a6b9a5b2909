package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/db"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

// IStudentRepository defines the interface for student account persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]models.Student, error)
}

// StudentRepository persists student accounts in the students collection
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{collection: database.Collection("students")}
}

// Create inserts a new student account
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if db.IsDup(err) {
			return apperrors.ErrDuplicateAccount
		}
		return err
	}
	student.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByUsername retrieves a student account by username
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// GetByID retrieves a student account by its identifier
func (r *StudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// UpdateUsername changes a student account's username
func (r *StudentRepository) UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"username": username}},
	)
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

// Delete removes a student account
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns all student accounts sorted by username
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}
