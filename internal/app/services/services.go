package services

import (
	"github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/auth"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/filestorage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Services holds all the service instances
type Services struct {
	AdminService        *AdminService
	StudentService      *StudentService
	AlumniService       *AlumniService
	VerificationService *VerificationService
	PostService         *PostService
	TrainingService     *TrainingService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.MediaStorage) *Services {
	return &Services{
		AdminService: NewAdminService(
			repos.AdminRepository,
			repos.StudentRepository,
			repos.AlumniRepository,
			repos.PersonRepository,
			repos.PostRepository,
			repos.TrainingRepository,
			jwtService,
		),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.PersonRepository,
			jwtService,
		),
		AlumniService: NewAlumniService(
			repos.AlumniRepository,
			repos.PersonRepository,
			repos.PostRepository,
			repos.TrainingRepository,
			jwtService,
			storage,
		),
		VerificationService: NewVerificationService(repos.PersonRepository),
		PostService:         NewPostService(repos.PostRepository, storage),
		TrainingService:     NewTrainingService(repos.TrainingRepository, repos.AlumniRepository),
	}
}

// parseObjectID converts a hex identifier into an ObjectID, reporting
// malformed input as a not-found condition so callers need no special case.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrNotFound
	}
	return oid, nil
}
