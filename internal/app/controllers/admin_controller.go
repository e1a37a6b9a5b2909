package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

// AdminController handles administrator endpoints
type AdminController struct {
	adminService services.IAdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.IAdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Register creates a new administrator account
func (c *AdminController) Register(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	if err := c.adminService.Register(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Admin created successfully"))
}

// Login authenticates an administrator
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	token, err := c.adminService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(token))
}

// GetProfile returns the authenticated administrator's account
func (c *AdminController) GetProfile(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	admin, err := c.adminService.GetProfile(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(admin))
}

// AddPerson adds an entry to the roster
func (c *AdminController) AddPerson(ctx *gin.Context) {
	var req dto.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	person, err := c.adminService.AddPerson(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(person))
}

// ListPeople returns the full roster
func (c *AdminController) ListPeople(ctx *gin.Context) {
	people, err := c.adminService.ListPeople(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(people))
}

// ListStudents returns all student accounts with roster data joined
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.adminService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// ListAlumni returns all alumni accounts with roster data joined
func (c *AdminController) ListAlumni(ctx *gin.Context) {
	alumnis, err := c.adminService.ListAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(alumnis))
}

// DeletePerson removes a roster entry identified by rollno and email
// query parameters.
func (c *AdminController) DeletePerson(ctx *gin.Context) {
	rollNo := ctx.Query("rollno")
	email := ctx.Query("email")

	if err := c.adminService.DeletePerson(ctx.Request.Context(), rollNo, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student data deleted successfully"))
}

// DeleteStudent removes a student account by username query parameter
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	username := ctx.Query("username")

	if err := c.adminService.DeleteStudent(ctx.Request.Context(), username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student user deleted successfully"))
}

// DeleteAlumni removes an alumni account by username query parameter,
// cascading over its posts and training sessions.
func (c *AdminController) DeleteAlumni(ctx *gin.Context) {
	username := ctx.Query("username")

	if err := c.adminService.DeleteAlumni(ctx.Request.Context(), username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Alumni data deleted successfully"))
}
