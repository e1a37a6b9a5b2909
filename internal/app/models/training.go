package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AudienceLimit caps the attendance of a training session when enabled.
type AudienceLimit struct {
	Enabled bool `json:"enabled" bson:"enabled"`
	Limit   int  `json:"limit,omitempty" bson:"limit,omitempty"`
}

// Training is a training-session announcement owned by an alumni account.
type Training struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AlumniID       primitive.ObjectID `json:"alumniId" bson:"alumni_id"`
	TrainingType   TrainingType       `json:"trainingType" bson:"training_type"`
	Topic          string             `json:"topic" bson:"topic"`
	Details        string             `json:"details,omitempty" bson:"details,omitempty"`
	TargetAudience string             `json:"targetAudience,omitempty" bson:"target_audience,omitempty"`
	Place          string             `json:"place,omitempty" bson:"place,omitempty"`
	IsRemote       bool               `json:"isRemote" bson:"is_remote"`
	MeetingLink    string             `json:"meetingLink,omitempty" bson:"meeting_link,omitempty"`
	AudienceLimit  AudienceLimit      `json:"audienceLimit" bson:"audience_limit"`
	DateTime       time.Time          `json:"dateTime" bson:"date_time"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	Alumni         *Alumni            `json:"alumni,omitempty" bson:"-"` // joined owner for listings
}
