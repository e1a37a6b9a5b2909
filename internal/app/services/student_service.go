package services

import (
	"context"
	"errors"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/auth"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// IStudentService defines the interface for student operations
type IStudentService interface {
	Register(ctx context.Context, req dto.CreateStudentRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, accountID string) (*models.Student, error)
	Update(ctx context.Context, accountID string, req dto.UpdateStudentRequest) error
	Delete(ctx context.Context, accountID string) error
	SearchPeople(ctx context.Context, query string) ([]models.Person, error)
}

// StudentService handles student accounts and roster lookups
type StudentService struct {
	studentRepo repositories.IStudentRepository
	personRepo  repositories.IPersonRepository
	jwtService  *auth.JWTService
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	personRepo repositories.IPersonRepository,
	jwtService *auth.JWTService,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		personRepo:  personRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new student account bound to an existing roster entry
func (s *StudentService) Register(ctx context.Context, req dto.CreateStudentRequest) error {
	personID, err := parseObjectID(req.PersonID)
	if err != nil {
		return apperrors.ErrUnknownPerson
	}

	person, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnknownPerson
		}
		return err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	student := &models.Student{
		Username: req.Username,
		Password: hashed,
		PersonID: person.ID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	logger.Info().Str("username", student.Username).Msg("Student account created")
	return nil
}

// Login authenticates a student and issues a session token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *StudentService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	student, err := s.studentRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(student.Password, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.ID.Hex(), string(models.RoleStudent))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AuthToken: token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	}, nil
}

// GetProfile returns the student account behind the session with its
// roster entry joined.
func (s *StudentService) GetProfile(ctx context.Context, accountID string) (*models.Student, error) {
	id, err := parseObjectID(accountID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	person, err := s.personRepo.GetByID(ctx, student.PersonID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	student.Person = person
	return student, nil
}

// Update changes the student's username when one is provided
func (s *StudentService) Update(ctx context.Context, accountID string, req dto.UpdateStudentRequest) error {
	if req.Username == "" {
		return nil
	}

	id, err := parseObjectID(accountID)
	if err != nil {
		return err
	}
	return s.studentRepo.UpdateUsername(ctx, id, req.Username)
}

// Delete removes the student's own account
func (s *StudentService) Delete(ctx context.Context, accountID string) error {
	id, err := parseObjectID(accountID)
	if err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("accountId", accountID).Msg("Student account deleted")
	return nil
}

// SearchPeople searches the roster; an empty query returns everyone
func (s *StudentService) SearchPeople(ctx context.Context, query string) ([]models.Person, error) {
	return s.personRepo.Search(ctx, query)
}
