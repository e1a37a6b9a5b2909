package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
)

func TestVerify_ExactMatchRequired(t *testing.T) {
	personRepo := newFakePersonRepo()
	seedPerson(t, personRepo)
	svc := NewVerificationService(personRepo)

	matching := dto.VerifyPersonRequest{
		Name: "Asha Rao", RollNo: "CS-042", Gender: "Female",
		Email: "asha@example.edu", Passout: "no",
	}

	person, err := svc.Verify(context.Background(), matching)
	require.NoError(t, err)
	assert.Equal(t, "CS-042", person.RollNo)

	// Any single mismatched field fails verification
	cases := []struct {
		name   string
		mutate func(*dto.VerifyPersonRequest)
	}{
		{"name", func(r *dto.VerifyPersonRequest) { r.Name = "Asha R" }},
		{"rollno", func(r *dto.VerifyPersonRequest) { r.RollNo = "CS-043" }},
		{"gender", func(r *dto.VerifyPersonRequest) { r.Gender = "Male" }},
		{"email", func(r *dto.VerifyPersonRequest) { r.Email = "other@example.edu" }},
		{"passout", func(r *dto.VerifyPersonRequest) { r.Passout = "yes" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := matching
			tc.mutate(&req)

			_, err := svc.Verify(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrUnknownPerson)
		})
	}
}
