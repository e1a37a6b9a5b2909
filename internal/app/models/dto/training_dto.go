package dto

import "time"

// AudienceLimitData caps the attendance of a training session
type AudienceLimitData struct {
	Enabled bool `json:"enabled"`
	Limit   int  `json:"limit"`
}

// CreateTrainingRequest represents a new training-session announcement
type CreateTrainingRequest struct {
	TrainingType   string            `json:"trainingType" binding:"required,oneof=private public"`
	Topic          string            `json:"topic" binding:"required"`
	Details        string            `json:"details"`
	TargetAudience string            `json:"targetAudience"`
	Place          string            `json:"place"`
	IsRemote       bool              `json:"isRemote"`
	MeetingLink    string            `json:"meetingLink"`
	AudienceLimit  AudienceLimitData `json:"audienceLimit"`
	DateTime       time.Time         `json:"dateTime" binding:"required"`
}
