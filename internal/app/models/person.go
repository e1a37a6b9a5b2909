package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person is the authoritative roster entry for a real individual,
// independent of any login account. Created by administrators; the
// registration flows verify applicants against it.
type Person struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	RollNo          string             `json:"rollno" bson:"rollno"`
	DateOfBirth     time.Time          `json:"dateOfBirth" bson:"date_of_birth"`
	Gender          string             `json:"gender" bson:"gender"` // Male, Female or Other
	PhoneNumber     string             `json:"phoneNumber" bson:"phone_number"`
	Email           string             `json:"email" bson:"email"`
	Degree          string             `json:"degree" bson:"degree"`
	Course          string             `json:"course" bson:"course"`
	CourseStartDate time.Time          `json:"courseStartDate" bson:"course_start_date"`
	CourseEndDate   time.Time          `json:"courseEndDate" bson:"course_end_date"`
	Passout         string             `json:"passout" bson:"passout"` // "yes" or "no"
}
