package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.IStudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.IStudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Register creates a new student account
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	if err := c.studentService.Register(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Student created successfully"))
}

// Login authenticates a student
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	token, err := c.studentService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(token))
}

// GetProfile returns the authenticated student's account with roster data
func (c *StudentController) GetProfile(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	student, err := c.studentService.GetProfile(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// Update changes the authenticated student's username
func (c *StudentController) Update(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindError(ctx, err)
		return
	}

	accountID, _ := actingIdentity(ctx)
	if err := c.studentService.Update(ctx.Request.Context(), accountID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student details updated successfully"))
}

// Delete removes the authenticated student's account
func (c *StudentController) Delete(ctx *gin.Context) {
	accountID, _ := actingIdentity(ctx)

	if err := c.studentService.Delete(ctx.Request.Context(), accountID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student user deleted successfully"))
}

// SearchPeople searches the roster by the search query parameter
func (c *StudentController) SearchPeople(ctx *gin.Context) {
	people, err := c.studentService.SearchPeople(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(people))
}
