package services

import (
	"context"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
)

// IVerificationService defines the interface for roster identity verification
type IVerificationService interface {
	Verify(ctx context.Context, req dto.VerifyPersonRequest) (*models.Person, error)
}

// VerificationService checks self-registration applicants against the roster
type VerificationService struct {
	personRepo repositories.IPersonRepository
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(personRepo repositories.IPersonRepository) *VerificationService {
	return &VerificationService{personRepo: personRepo}
}

// Verify returns the roster entry matching every submitted field exactly.
// A single mismatched field fails verification.
func (s *VerificationService) Verify(ctx context.Context, req dto.VerifyPersonRequest) (*models.Person, error) {
	return s.personRepo.FindExact(ctx, req.Name, req.RollNo, req.Gender, req.Email, req.Passout)
}
