package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a privileged account managing the roster and other accounts.
type Admin struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"` // hashed, never serialized
}

// Student is a self-registered account backed by exactly one Person record.
type Student struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"` // hashed, never serialized
	PersonID primitive.ObjectID `json:"personId" bson:"person_id"`
	Person   *Person            `json:"person,omitempty" bson:"-"` // joined roster entry
}

// Alumni is a self-registered account with an optional profile and an
// optional back-reference to a Person record.
type Alumni struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Username             string              `json:"username" bson:"username"`
	Password             string              `json:"-" bson:"password"` // hashed, never serialized
	ProfilePhotoURL      string              `json:"profilePhotoUrl,omitempty" bson:"profile_photo_url,omitempty"`
	WorkingStatus        string              `json:"workingStatus,omitempty" bson:"working_status,omitempty"`
	Organization         string              `json:"organization,omitempty" bson:"organization,omitempty"`
	Role                 string              `json:"role,omitempty" bson:"role,omitempty"`
	PreviousCompany      string              `json:"previousCompany,omitempty" bson:"previous_company,omitempty"`
	Skills               []string            `json:"skills,omitempty" bson:"skills,omitempty"`
	IndustrialExperience string              `json:"industrialExperience,omitempty" bson:"industrial_experience,omitempty"`
	PersonID             *primitive.ObjectID `json:"personId,omitempty" bson:"person_id,omitempty"`
	Person               *Person             `json:"person,omitempty" bson:"-"` // joined roster entry
}
