package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/apperrors"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/filestorage"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// IPostService defines the interface for community post operations
type IPostService interface {
	Create(ctx context.Context, alumniID string, req dto.CreatePostRequest, image *multipart.FileHeader) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByTier(ctx context.Context, tier models.AccessTier) ([]models.Post, error)
	ListMine(ctx context.Context, alumniID string) ([]models.Post, error)
	Delete(ctx context.Context, postID, accountID string, role models.Role) error
}

// PostService handles community posts
type PostService struct {
	postRepo repositories.IPostRepository
	storage  filestorage.MediaStorage
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.IPostRepository, storage filestorage.MediaStorage) *PostService {
	return &PostService{postRepo: postRepo, storage: storage}
}

// Create publishes a post owned by the authenticated alumni.
// A post must carry text, an image, or both.
func (s *PostService) Create(ctx context.Context, alumniID string, req dto.CreatePostRequest, image *multipart.FileHeader) (*models.Post, error) {
	ownerID, err := parseObjectID(alumniID)
	if err != nil {
		return nil, err
	}

	tier := models.AccessTier(req.Access)
	if !tier.IsValid() {
		return nil, apperrors.NewValidationError("access must be communitytype1 or communitytype2")
	}

	if strings.TrimSpace(req.Text) == "" && image == nil {
		return nil, apperrors.NewValidationError("a post needs text or an image")
	}

	post := &models.Post{
		AlumniID: ownerID,
		Content: models.PostContent{
			Text: req.Text,
		},
		Access:    tier,
		CreatedAt: time.Now(),
	}

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "posts")
		if err != nil {
			return nil, apperrors.New(apperrors.ErrUploadFailed, "failed to store post image")
		}
		post.Content.ImageURL = url
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if post.Content.ImageURL != "" {
			_ = s.storage.DeleteFile(post.Content.ImageURL)
		}
		return nil, err
	}

	logger.Debug().Str("postId", post.ID.Hex()).Str("access", string(post.Access)).Msg("Post created")
	return post, nil
}

// ListAll returns every post regardless of tier, newest first
func (s *PostService) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListByAccess(ctx)
}

// ListByTier returns posts in one visibility tier, newest first
func (s *PostService) ListByTier(ctx context.Context, tier models.AccessTier) ([]models.Post, error) {
	if !tier.IsValid() {
		return nil, apperrors.NewValidationError("unknown post visibility tier")
	}
	return s.postRepo.ListByAccess(ctx, tier)
}

// ListMine returns the caller's own posts, newest first
func (s *PostService) ListMine(ctx context.Context, alumniID string) ([]models.Post, error) {
	id, err := parseObjectID(alumniID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListByAlumni(ctx, id)
}

// Delete removes a post. Only the owning alumni or an admin may do so,
// and the attached image is removed with it.
func (s *PostService) Delete(ctx context.Context, postID, accountID string, role models.Role) error {
	id, err := parseObjectID(postID)
	if err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if role != models.RoleAdmin && post.AlumniID.Hex() != accountID {
		return apperrors.NewForbiddenError("you do not have permission to delete this post")
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	if post.Content.ImageURL != "" {
		_ = s.storage.DeleteFile(post.Content.ImageURL)
	}
	return nil
}
