package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/auth"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/filestorage"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// IAlumniService defines the interface for alumni operations
type IAlumniService interface {
	Register(ctx context.Context, data dto.AlumniData, photo *multipart.FileHeader) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, accountID string) (*models.Alumni, error)
	Update(ctx context.Context, accountID string, req dto.UpdateAlumniRequest) error
	Delete(ctx context.Context, accountID string) error
	Search(ctx context.Context, query, accountID string) ([]models.Alumni, error)
}

// AlumniService handles alumni accounts, their profiles and the
// deletion cascade over owned content.
type AlumniService struct {
	alumniRepo   repositories.IAlumniRepository
	personRepo   repositories.IPersonRepository
	postRepo     repositories.IPostRepository
	trainingRepo repositories.ITrainingRepository
	jwtService   *auth.JWTService
	storage      filestorage.MediaStorage
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(
	alumniRepo repositories.IAlumniRepository,
	personRepo repositories.IPersonRepository,
	postRepo repositories.IPostRepository,
	trainingRepo repositories.ITrainingRepository,
	jwtService *auth.JWTService,
	storage filestorage.MediaStorage,
) *AlumniService {
	return &AlumniService{
		alumniRepo:   alumniRepo,
		personRepo:   personRepo,
		postRepo:     postRepo,
		trainingRepo: trainingRepo,
		jwtService:   jwtService,
		storage:      storage,
	}
}

// validateAlumniData checks the JSON part of a registration request.
// The payload arrives inside a multipart form, so binding tags cannot
// cover it.
func validateAlumniData(data dto.AlumniData) error {
	if strings.TrimSpace(data.Username) == "" {
		return apperrors.NewValidationError("username cannot be blank")
	}
	if len(data.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters long")
	}
	if strings.TrimSpace(data.WorkingStatus) == "" {
		return apperrors.NewValidationError("working status cannot be blank")
	}
	return nil
}

// Register creates a new alumni account with an optional profile photo
// and an optional roster reference.
func (s *AlumniService) Register(ctx context.Context, data dto.AlumniData, photo *multipart.FileHeader) error {
	if err := validateAlumniData(data); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(data.Password)
	if err != nil {
		return err
	}

	alumni := &models.Alumni{
		Username:             data.Username,
		Password:             hashed,
		WorkingStatus:        data.WorkingStatus,
		Organization:         data.Organization,
		Role:                 data.Role,
		PreviousCompany:      data.PreviousCompany,
		Skills:               data.Skills,
		IndustrialExperience: data.IndustrialExperience,
	}

	if data.PersonID != "" {
		id, err := parseObjectID(data.PersonID)
		if err != nil {
			return apperrors.ErrUnknownPerson
		}
		if _, err := s.personRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrUnknownPerson
			}
			return err
		}
		alumni.PersonID = &id
	}

	if photo != nil {
		url, err := s.storage.SaveFileWithPath(photo, "profiles")
		if err != nil {
			return apperrors.New(apperrors.ErrUploadFailed, "failed to store profile photo")
		}
		alumni.ProfilePhotoURL = url
	}

	if err := s.alumniRepo.Create(ctx, alumni); err != nil {
		// Stored photo would otherwise be orphaned
		if alumni.ProfilePhotoURL != "" {
			_ = s.storage.DeleteFile(alumni.ProfilePhotoURL)
		}
		return err
	}

	logger.Info().Str("username", alumni.Username).Msg("Alumni account created")
	return nil
}

// Login authenticates an alumni and issues a session token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AlumniService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	alumni, err := s.alumniRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(alumni.Password, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(alumni.ID.Hex(), string(models.RoleAlumni))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AuthToken: token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	}, nil
}

// GetProfile returns the alumni account behind the session with its
// roster entry joined when one is referenced.
func (s *AlumniService) GetProfile(ctx context.Context, accountID string) (*models.Alumni, error) {
	id, err := parseObjectID(accountID)
	if err != nil {
		return nil, err
	}

	alumni, err := s.alumniRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if alumni.PersonID != nil {
		person, err := s.personRepo.GetByID(ctx, *alumni.PersonID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		alumni.Person = person
	}
	return alumni, nil
}

// Update overwrites the mutable profile fields of the caller's account
func (s *AlumniService) Update(ctx context.Context, accountID string, req dto.UpdateAlumniRequest) error {
	id, err := parseObjectID(accountID)
	if err != nil {
		return err
	}

	alumni := &models.Alumni{
		Username:             req.Username,
		WorkingStatus:        req.WorkingStatus,
		Organization:         req.Organization,
		Role:                 req.Role,
		PreviousCompany:      req.PreviousCompany,
		Skills:               req.Skills,
		IndustrialExperience: req.IndustrialExperience,
	}
	return s.alumniRepo.UpdateProfile(ctx, id, alumni)
}

// Delete removes the caller's account together with every post and
// training session it owns.
func (s *AlumniService) Delete(ctx context.Context, accountID string) error {
	id, err := parseObjectID(accountID)
	if err != nil {
		return err
	}

	alumni, err := s.alumniRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.alumniRepo.Delete(ctx, id); err != nil {
		return err
	}

	posts, err := s.postRepo.DeleteByAlumni(ctx, id)
	if err != nil {
		return err
	}
	trainings, err := s.trainingRepo.DeleteByAlumni(ctx, id)
	if err != nil {
		return err
	}

	if alumni.ProfilePhotoURL != "" {
		_ = s.storage.DeleteFile(alumni.ProfilePhotoURL)
	}

	logger.Info().
		Str("username", alumni.Username).
		Int64("posts", posts).
		Int64("trainings", trainings).
		Msg("Alumni account deleted")
	return nil
}

// Search returns alumni profiles matching the query, excluding the
// caller, with roster entries joined.
func (s *AlumniService) Search(ctx context.Context, query, accountID string) ([]models.Alumni, error) {
	id, err := parseObjectID(accountID)
	if err != nil {
		return nil, err
	}

	alumnis, err := s.alumniRepo.Search(ctx, query, id)
	if err != nil {
		return nil, err
	}
	for i := range alumnis {
		if alumnis[i].PersonID == nil {
			continue
		}
		person, err := s.personRepo.GetByID(ctx, *alumnis[i].PersonID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		alumnis[i].Person = person
	}
	return alumnis, nil
}
