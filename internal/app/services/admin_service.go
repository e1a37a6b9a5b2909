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

// IAdminService defines the interface for admin operations
type IAdminService interface {
	Register(ctx context.Context, req dto.CreateAdminRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, accountID string) (*models.Admin, error)
	AddPerson(ctx context.Context, req dto.CreatePersonRequest) (*models.Person, error)
	ListPeople(ctx context.Context) ([]models.Person, error)
	DeletePerson(ctx context.Context, rollNo, email string) error
	ListStudents(ctx context.Context) ([]models.Student, error)
	ListAlumni(ctx context.Context) ([]models.Alumni, error)
	DeleteStudent(ctx context.Context, username string) error
	DeleteAlumni(ctx context.Context, username string) error
}

// AdminService handles administrator accounts, the roster, and
// administrative account management.
type AdminService struct {
	adminRepo    repositories.IAdminRepository
	studentRepo  repositories.IStudentRepository
	alumniRepo   repositories.IAlumniRepository
	personRepo   repositories.IPersonRepository
	postRepo     repositories.IPostRepository
	trainingRepo repositories.ITrainingRepository
	jwtService   *auth.JWTService
}

// NewAdminService creates a new AdminService
func NewAdminService(
	adminRepo repositories.IAdminRepository,
	studentRepo repositories.IStudentRepository,
	alumniRepo repositories.IAlumniRepository,
	personRepo repositories.IPersonRepository,
	postRepo repositories.IPostRepository,
	trainingRepo repositories.ITrainingRepository,
	jwtService *auth.JWTService,
) *AdminService {
	return &AdminService{
		adminRepo:    adminRepo,
		studentRepo:  studentRepo,
		alumniRepo:   alumniRepo,
		personRepo:   personRepo,
		postRepo:     postRepo,
		trainingRepo: trainingRepo,
		jwtService:   jwtService,
	}
}

// Register creates a new administrator account
func (s *AdminService) Register(ctx context.Context, req dto.CreateAdminRequest) error {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("username", admin.Username).Msg("Admin account created")
	return nil
}

// Login authenticates an administrator and issues a session token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(admin.Password, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID.Hex(), string(models.RoleAdmin))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AuthToken: token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	}, nil
}

// GetProfile returns the administrator account behind the session
func (s *AdminService) GetProfile(ctx context.Context, accountID string) (*models.Admin, error) {
	id, err := parseObjectID(accountID)
	if err != nil {
		return nil, err
	}
	return s.adminRepo.GetByID(ctx, id)
}

// AddPerson creates a new roster entry
func (s *AdminService) AddPerson(ctx context.Context, req dto.CreatePersonRequest) (*models.Person, error) {
	person := &models.Person{
		Name:            req.Name,
		RollNo:          req.RollNo,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Degree:          req.Degree,
		Course:          req.Course,
		CourseStartDate: req.CourseStartDate,
		CourseEndDate:   req.CourseEndDate,
		Passout:         req.Passout,
	}
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	logger.Info().Str("rollno", person.RollNo).Msg("Roster entry added")
	return person, nil
}

// ListPeople returns the full roster
func (s *AdminService) ListPeople(ctx context.Context) ([]models.Person, error) {
	return s.personRepo.Search(ctx, "")
}

// DeletePerson removes a roster entry identified by roll number and email
func (s *AdminService) DeletePerson(ctx context.Context, rollNo, email string) error {
	if rollNo == "" || email == "" {
		return apperrors.NewValidationError("rollno and email are required")
	}
	return s.personRepo.DeleteByRollNoEmail(ctx, rollNo, email)
}

// ListStudents returns all student accounts with their roster entries joined
func (s *AdminService) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		person, err := s.personRepo.GetByID(ctx, students[i].PersonID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		students[i].Person = person
	}
	return students, nil
}

// ListAlumni returns all alumni accounts with their roster entries joined
func (s *AdminService) ListAlumni(ctx context.Context) ([]models.Alumni, error) {
	alumnis, err := s.alumniRepo.List(ctx)
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

// DeleteStudent removes a student account by username
func (s *AdminService) DeleteStudent(ctx context.Context, username string) error {
	student, err := s.studentRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, student.ID); err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("Student account deleted by admin")
	return nil
}

// DeleteAlumni removes an alumni account by username together with
// every post and training session it owns.
func (s *AdminService) DeleteAlumni(ctx context.Context, username string) error {
	alumni, err := s.alumniRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.alumniRepo.Delete(ctx, alumni.ID); err != nil {
		return err
	}

	posts, err := s.postRepo.DeleteByAlumni(ctx, alumni.ID)
	if err != nil {
		return err
	}
	trainings, err := s.trainingRepo.DeleteByAlumni(ctx, alumni.ID)
	if err != nil {
		return err
	}

	logger.Info().
		Str("username", username).
		Int64("posts", posts).
		Int64("trainings", trainings).
		Msg("Alumni account deleted by admin")
	return nil
}
