package controllers

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withIdentity injects an authenticated identity the way JWTAuth would.
func withIdentity(accountID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, accountID)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	}
}

// Stub services returning canned results.

type stubAdminService struct {
	registerErr error
	loginResp   *dto.TokenResponse
	loginErr    error
	deleteErr   error
}

func (s *stubAdminService) Register(context.Context, dto.CreateAdminRequest) error {
	return s.registerErr
}

func (s *stubAdminService) Login(context.Context, dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAdminService) GetProfile(context.Context, string) (*models.Admin, error) {
	return &models.Admin{Username: "root"}, nil
}

func (s *stubAdminService) AddPerson(context.Context, dto.CreatePersonRequest) (*models.Person, error) {
	return &models.Person{Name: "Asha Rao"}, nil
}

func (s *stubAdminService) ListPeople(context.Context) ([]models.Person, error) {
	return []models.Person{}, nil
}

func (s *stubAdminService) DeletePerson(context.Context, string, string) error { return s.deleteErr }

func (s *stubAdminService) ListStudents(context.Context) ([]models.Student, error) {
	return []models.Student{}, nil
}

func (s *stubAdminService) ListAlumni(context.Context) ([]models.Alumni, error) {
	return []models.Alumni{}, nil
}

func (s *stubAdminService) DeleteStudent(context.Context, string) error { return s.deleteErr }
func (s *stubAdminService) DeleteAlumni(context.Context, string) error  { return s.deleteErr }

type stubVerificationService struct {
	person *models.Person
	err    error
}

func (s *stubVerificationService) Verify(context.Context, dto.VerifyPersonRequest) (*models.Person, error) {
	return s.person, s.err
}

type stubPostService struct {
	created      *models.Post
	createErr    error
	lastOwner    string
	deleteErr    error
	lastDeleteID string
	lastRole     models.Role
}

func (s *stubPostService) Create(_ context.Context, alumniID string, _ dto.CreatePostRequest, _ *multipart.FileHeader) (*models.Post, error) {
	s.lastOwner = alumniID
	return s.created, s.createErr
}

func (s *stubPostService) ListAll(context.Context) ([]models.Post, error) {
	return []models.Post{}, nil
}

func (s *stubPostService) ListByTier(context.Context, models.AccessTier) ([]models.Post, error) {
	return []models.Post{}, nil
}

func (s *stubPostService) ListMine(context.Context, string) ([]models.Post, error) {
	return []models.Post{}, nil
}

func (s *stubPostService) Delete(_ context.Context, postID, accountID string, role models.Role) error {
	s.lastDeleteID = postID
	s.lastRole = role
	return s.deleteErr
}

type stubTrainingService struct {
	created *models.Training
	err     error
}

func (s *stubTrainingService) Create(context.Context, string, dto.CreateTrainingRequest) (*models.Training, error) {
	return s.created, s.err
}

func (s *stubTrainingService) ListAll(context.Context) ([]models.Training, error) {
	return []models.Training{}, s.err
}

func (s *stubTrainingService) ListByType(context.Context, models.TrainingType) ([]models.Training, error) {
	return []models.Training{}, s.err
}

func (s *stubTrainingService) ListMine(context.Context, string) ([]models.Training, error) {
	return []models.Training{}, s.err
}

func (s *stubTrainingService) Delete(context.Context, string, string, models.Role) error {
	return s.err
}
