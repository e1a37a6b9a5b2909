package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostContent is the body of a community post: text, an image, or both.
type PostContent struct {
	Text     string `json:"text,omitempty" bson:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
}

// Post is a community post owned by an alumni account and tagged with a
// visibility tier. CreatedAt is server-assigned and immutable.
type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AlumniID  primitive.ObjectID `json:"alumniId" bson:"alumni_id"`
	Content   PostContent        `json:"content" bson:"content"`
	Access    AccessTier         `json:"access" bson:"access"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}
