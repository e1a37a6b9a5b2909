package models

// Role identifies which account collection an authenticated identity belongs to.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// AccessTier is the visibility class on a community post.
// Tier community1 is visible to admin, alumni and student roles;
// tier community2 is visible to admin and alumni only.
type AccessTier string

const (
	AccessCommunity1 AccessTier = "communitytype1"
	AccessCommunity2 AccessTier = "communitytype2"
)

// IsValid reports whether the tier is one of the two enumerated values.
func (t AccessTier) IsValid() bool {
	return t == AccessCommunity1 || t == AccessCommunity2
}

// TrainingType classifies a training session announcement.
type TrainingType string

const (
	TrainingPrivate TrainingType = "private"
	TrainingPublic  TrainingType = "public"
)

// IsValid reports whether the training type is one of the enumerated values.
func (t TrainingType) IsValid() bool {
	return t == TrainingPrivate || t == TrainingPublic
}
