package dto

import "time"

// CreatePersonRequest represents an admin adding a roster entry
type CreatePersonRequest struct {
	Name            string    `json:"name" binding:"required"`
	RollNo          string    `json:"rollno" binding:"required"`
	DateOfBirth     time.Time `json:"dateOfBirth" binding:"required"`
	Gender          string    `json:"gender" binding:"required,oneof=Male Female Other"`
	PhoneNumber     string    `json:"phoneNumber" binding:"required,len=10,numeric"`
	Email           string    `json:"email" binding:"required,email"`
	Degree          string    `json:"degree" binding:"required"`
	Course          string    `json:"course" binding:"required"`
	CourseStartDate time.Time `json:"courseStartDate" binding:"required"`
	CourseEndDate   time.Time `json:"courseEndDate" binding:"required"`
	Passout         string    `json:"passout" binding:"required,oneof=yes no"`
}

// VerifyPersonRequest is the identity-verification payload checked
// against the roster before self-registration.
type VerifyPersonRequest struct {
	Name    string `json:"name" binding:"required"`
	RollNo  string `json:"rollno" binding:"required"`
	Gender  string `json:"gender" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Passout string `json:"passout" binding:"required,oneof=yes no"`
}
