package dto

// LoginRequest represents login credentials for any of the three roles
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued session token
type TokenResponse struct {
	AuthToken string `json:"authToken"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

// CreateAdminRequest represents the admin bootstrap payload
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateStudentRequest represents student self-registration.
// PersonID must reference an existing roster entry.
type CreateStudentRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	PersonID string `json:"studentId" binding:"required"`
}

// UpdateStudentRequest represents a student profile update
type UpdateStudentRequest struct {
	Username string `json:"username"`
}

// AlumniData is the JSON part of the multipart alumni registration request;
// the optional profile photo travels as a separate file part.
type AlumniData struct {
	Username             string   `json:"username"`
	Password             string   `json:"password"`
	WorkingStatus        string   `json:"workingStatus"`
	Organization         string   `json:"organization"`
	Role                 string   `json:"role"`
	PreviousCompany      string   `json:"previousCompany"`
	Skills               []string `json:"skills"`
	IndustrialExperience string   `json:"industrialExperience"`
	PersonID             string   `json:"studentId"`
}

// UpdateAlumniRequest represents an alumni self-service profile update
type UpdateAlumniRequest struct {
	Username             string   `json:"username" binding:"required"`
	WorkingStatus        string   `json:"workingStatus" binding:"required"`
	Organization         string   `json:"organization" binding:"required"`
	Role                 string   `json:"role" binding:"required"`
	PreviousCompany      string   `json:"previousCompany" binding:"required"`
	Skills               []string `json:"skills" binding:"required,dive,required"`
	IndustrialExperience string   `json:"industrialExperience" binding:"required"`
}
