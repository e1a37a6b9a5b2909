package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

func newTrainingFixture() (*TrainingService, *fakeTrainingRepo, *fakeAlumniRepo) {
	trainingRepo := newFakeTrainingRepo()
	alumniRepo := newFakeAlumniRepo()
	return NewTrainingService(trainingRepo, alumniRepo), trainingRepo, alumniRepo
}

func validTrainingRequest() dto.CreateTrainingRequest {
	return dto.CreateTrainingRequest{
		TrainingType: "public",
		Topic:        "System design",
		DateTime:     time.Now().Add(48 * time.Hour),
	}
}

func TestTrainingCreate(t *testing.T) {
	svc, _, _ := newTrainingFixture()
	owner := primitive.NewObjectID()

	training, err := svc.Create(context.Background(), owner.Hex(), validTrainingRequest())
	require.NoError(t, err)

	assert.Equal(t, owner, training.AlumniID)
	assert.Equal(t, models.TrainingPublic, training.TrainingType)
	assert.False(t, training.CreatedAt.IsZero())
}

func TestTrainingCreate_RemoteNeedsMeetingLink(t *testing.T) {
	svc, repo, _ := newTrainingFixture()

	req := validTrainingRequest()
	req.IsRemote = true

	_, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.trainings)

	req.MeetingLink = "https://meet.example.com/session"
	_, err = svc.Create(context.Background(), primitive.NewObjectID().Hex(), req)
	assert.NoError(t, err)
}

func TestTrainingCreate_AudienceLimitMustBePositive(t *testing.T) {
	svc, _, _ := newTrainingFixture()

	req := validTrainingRequest()
	req.AudienceLimit = dto.AudienceLimitData{Enabled: true, Limit: 0}

	_, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestTrainingListByType(t *testing.T) {
	svc, repo, _ := newTrainingFixture()
	owner := primitive.NewObjectID()

	require.NoError(t, repo.Create(context.Background(), &models.Training{AlumniID: owner, TrainingType: models.TrainingPublic}))
	require.NoError(t, repo.Create(context.Background(), &models.Training{AlumniID: owner, TrainingType: models.TrainingPrivate}))

	publics, err := svc.ListByType(context.Background(), models.TrainingPublic)
	require.NoError(t, err)
	assert.Len(t, publics, 1)

	_, err = svc.ListByType(context.Background(), "internal")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestTrainingListAll_JoinsOwner(t *testing.T) {
	svc, repo, alumniRepo := newTrainingFixture()

	owner := &models.Alumni{Username: "ravi", Password: "x"}
	require.NoError(t, alumniRepo.Create(context.Background(), owner))
	require.NoError(t, repo.Create(context.Background(), &models.Training{
		AlumniID: owner.ID, TrainingType: models.TrainingPublic,
	}))

	trainings, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	require.NotNil(t, trainings[0].Alumni)
	assert.Equal(t, "ravi", trainings[0].Alumni.Username)
}

func TestTrainingDelete_OwnerCheck(t *testing.T) {
	svc, repo, _ := newTrainingFixture()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	training := &models.Training{AlumniID: owner, TrainingType: models.TrainingPrivate}
	require.NoError(t, repo.Create(context.Background(), training))

	err := svc.Delete(context.Background(), training.ID.Hex(), stranger.Hex(), models.RoleAlumni)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(context.Background(), training.ID.Hex(), stranger.Hex(), models.RoleAdmin))
	assert.Empty(t, repo.trainings)
}
