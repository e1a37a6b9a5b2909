package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// ITrainingService defines the interface for training session operations
type ITrainingService interface {
	Create(ctx context.Context, alumniID string, req dto.CreateTrainingRequest) (*models.Training, error)
	ListAll(ctx context.Context) ([]models.Training, error)
	ListByType(ctx context.Context, trainingType models.TrainingType) ([]models.Training, error)
	ListMine(ctx context.Context, alumniID string) ([]models.Training, error)
	Delete(ctx context.Context, trainingID, accountID string, role models.Role) error
}

// TrainingService handles training session announcements
type TrainingService struct {
	trainingRepo repositories.ITrainingRepository
	alumniRepo   repositories.IAlumniRepository
}

// NewTrainingService creates a new TrainingService
func NewTrainingService(trainingRepo repositories.ITrainingRepository, alumniRepo repositories.IAlumniRepository) *TrainingService {
	return &TrainingService{trainingRepo: trainingRepo, alumniRepo: alumniRepo}
}

// Create announces a training session owned by the authenticated alumni.
// Remote sessions must carry a meeting link.
func (s *TrainingService) Create(ctx context.Context, alumniID string, req dto.CreateTrainingRequest) (*models.Training, error) {
	ownerID, err := parseObjectID(alumniID)
	if err != nil {
		return nil, err
	}

	if req.IsRemote && strings.TrimSpace(req.MeetingLink) == "" {
		return nil, apperrors.NewValidationError("remote sessions need a meeting link")
	}
	if req.AudienceLimit.Enabled && req.AudienceLimit.Limit <= 0 {
		return nil, apperrors.NewValidationError("audience limit must be positive when enabled")
	}

	training := &models.Training{
		AlumniID:       ownerID,
		TrainingType:   models.TrainingType(req.TrainingType),
		Topic:          req.Topic,
		Details:        req.Details,
		TargetAudience: req.TargetAudience,
		Place:          req.Place,
		IsRemote:       req.IsRemote,
		MeetingLink:    req.MeetingLink,
		AudienceLimit: models.AudienceLimit{
			Enabled: req.AudienceLimit.Enabled,
			Limit:   req.AudienceLimit.Limit,
		},
		DateTime:  req.DateTime,
		CreatedAt: time.Now(),
	}

	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, err
	}

	logger.Debug().Str("trainingId", training.ID.Hex()).Str("type", string(training.TrainingType)).Msg("Training session created")
	return training, nil
}

// ListAll returns every training session with the owning alumni profile joined
func (s *TrainingService) ListAll(ctx context.Context) ([]models.Training, error) {
	trainings, err := s.trainingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trainings {
		alumni, err := s.alumniRepo.GetByID(ctx, trainings[i].AlumniID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		trainings[i].Alumni = alumni
	}
	return trainings, nil
}

// ListByType returns training sessions of one type
func (s *TrainingService) ListByType(ctx context.Context, trainingType models.TrainingType) ([]models.Training, error) {
	if !trainingType.IsValid() {
		return nil, apperrors.NewValidationError("training type must be private or public")
	}
	return s.trainingRepo.ListByType(ctx, trainingType)
}

// ListMine returns the caller's own training sessions
func (s *TrainingService) ListMine(ctx context.Context, alumniID string) ([]models.Training, error) {
	id, err := parseObjectID(alumniID)
	if err != nil {
		return nil, err
	}
	return s.trainingRepo.ListByAlumni(ctx, id)
}

// Delete removes a training session. Only the owning alumni or an admin
// may do so.
func (s *TrainingService) Delete(ctx context.Context, trainingID, accountID string, role models.Role) error {
	id, err := parseObjectID(trainingID)
	if err != nil {
		return err
	}

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if role != models.RoleAdmin && training.AlumniID.Hex() != accountID {
		return apperrors.NewForbiddenError("you do not have permission to delete this training session")
	}

	return s.trainingRepo.Delete(ctx, id)
}
