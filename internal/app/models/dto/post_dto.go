package dto

// CreatePostRequest is the multipart form for creating a community post;
// the optional image travels as a separate file part.
type CreatePostRequest struct {
	Text   string `form:"text"`
	Access string `form:"access" binding:"required,oneof=communitytype1 communitytype2"`
}
