package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

// PostController handles community post endpoints
type PostController struct {
	postService services.IPostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.IPostService) *PostController {
	return &PostController{postService: postService}
}

// Create publishes a post owned by the authenticated alumni. The
// request is multipart: text and access fields plus an optional
// postImage file part.
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	image, err := ctx.FormFile("postImage")
	if err != nil {
		image = nil
	}

	accountID, _ := actingIdentity(ctx)
	post, err := c.postService.Create(ctx.Request.Context(), accountID, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(post))
}

// ListAll returns every post regardless of tier
func (c *PostController) ListAll(ctx *gin.Context) {
	posts, err := c.postService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// ListCommunity1 returns posts visible to the whole community
func (c *PostController) ListCommunity1(ctx *gin.Context) {
	c.listByTier(ctx, models.AccessCommunity1)
}

// ListCommunity2 returns posts visible to alumni and admins only
func (c *PostController) ListCommunity2(ctx *gin.Context) {
	c.listByTier(ctx, models.AccessCommunity2)
}

func (c *PostController) listByTier(ctx *gin.Context, tier models.AccessTier) {
	posts, err := c.postService.ListByTier(ctx.Request.Context(), tier)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// ListMine returns the authenticated alumni's own posts
func (c *PostController) ListMine(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	posts, err := c.postService.ListMine(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(posts))
}

// Delete removes a post by path parameter. Owners and admins only.
func (c *PostController) Delete(ctx *gin.Context) {
	accountID, role := actingIdentity(ctx)

	err := c.postService.Delete(ctx.Request.Context(), ctx.Param("postId"), accountID, models.Role(role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Post deleted successfully"))
}
