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

// ITrainingRepository defines the interface for training session persistence
type ITrainingRepository interface {
	Create(ctx context.Context, training *models.Training) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Training, error)
	List(ctx context.Context) ([]models.Training, error)
	ListByType(ctx context.Context, trainingType models.TrainingType) ([]models.Training, error)
	ListByAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]models.Training, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByAlumni(ctx context.Context, alumniID primitive.ObjectID) (int64, error)
}

// TrainingRepository persists training sessions in the trainings collection
type TrainingRepository struct {
	collection *mongo.Collection
}

// NewTrainingRepository creates a new TrainingRepository
func NewTrainingRepository(database *mongo.Database) *TrainingRepository {
	return &TrainingRepository{collection: database.Collection("trainings")}
}

// Create inserts a new training session
func (r *TrainingRepository) Create(ctx context.Context, training *models.Training) error {
	result, err := r.collection.InsertOne(ctx, training)
	if err != nil {
		return err
	}
	training.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a training session by its identifier
func (r *TrainingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Training, error) {
	var training models.Training
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&training)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &training, nil
}

// List returns every training session, soonest first
func (r *TrainingRepository) List(ctx context.Context) ([]models.Training, error) {
	return r.find(ctx, bson.M{})
}

// ListByType returns training sessions of one type, soonest first
func (r *TrainingRepository) ListByType(ctx context.Context, trainingType models.TrainingType) ([]models.Training, error) {
	return r.find(ctx, bson.M{"training_type": trainingType})
}

// ListByAlumni returns all training sessions owned by one alumni account
func (r *TrainingRepository) ListByAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]models.Training, error) {
	return r.find(ctx, bson.M{"alumni_id": alumniID})
}

func (r *TrainingRepository) find(ctx context.Context, filter bson.M) ([]models.Training, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trainings := []models.Training{}
	if err := cursor.All(ctx, &trainings); err != nil {
		return nil, err
	}
	return trainings, nil
}

// Delete removes a training session
func (r *TrainingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByAlumni removes every training session owned by one alumni
// account and returns the number removed. Used by the deletion cascade.
func (r *TrainingRepository) DeleteByAlumni(ctx context.Context, alumniID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"alumni_id": alumniID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
