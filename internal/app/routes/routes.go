// Package routes wires controllers onto the HTTP router
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/santanu2402/Alumni-Management-System/internal/app/controllers"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/middleware"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	studentController *controllers.StudentController,
	alumniController *controllers.AlumniController,
	verificationController *controllers.VerificationController,
	postController *controllers.PostController,
	trainingController *controllers.TrainingController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/api/v1/health", healthController.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// --- Public routes ---
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/verify", verificationController.Verify)

		authGroup.POST("/admin/create", adminController.Register)
		authGroup.POST("/admin/login", adminController.Login)

		authGroup.POST("/student/create", studentController.Register)
		authGroup.POST("/student/login", studentController.Login)

		authGroup.POST("/alumni/create", alumniController.Register)
		authGroup.POST("/alumni/login", alumniController.Login)
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	admin := authenticated.Group("/api/auth/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/getuser", adminController.GetProfile)
		admin.POST("/addstudent", adminController.AddPerson)
		admin.GET("/viewallstudents", adminController.ListPeople)
		admin.GET("/viewstudents", adminController.ListStudents)
		admin.GET("/viewalumni", adminController.ListAlumni)
		admin.DELETE("/deleteallstudent", adminController.DeletePerson)
		admin.DELETE("/deletestudent", adminController.DeleteStudent)
		admin.DELETE("/deletealumni", adminController.DeleteAlumni)
	}

	student := authenticated.Group("/api/auth/student")
	{
		// Roster search is open to every authenticated role
		student.GET("/searchstudent", studentController.SearchPeople)

		studentOnly := student.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentOnly.POST("/getuser", studentController.GetProfile)
			studentOnly.PUT("/update", studentController.Update)
			studentOnly.DELETE("/delete", studentController.Delete)
		}
	}

	alumni := authenticated.Group("/api/auth/alumni")
	alumni.Use(authMiddleware.RoleRequired(models.RoleAlumni))
	{
		alumni.POST("/getuser", alumniController.GetProfile)
		alumni.PUT("/update", alumniController.Update)
		alumni.GET("/search", alumniController.Search)
		alumni.DELETE("/delete", alumniController.Delete)
	}

	post := authenticated.Group("/api/v1/post")
	{
		// Whole-community tier
		post.GET("/getposts/communitytype1", postController.ListCommunity1)

		// Alumni-community tiers
		alumniCommunity := post.Group("")
		alumniCommunity.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleAlumni))
		{
			alumniCommunity.GET("/getposts", postController.ListAll)
			alumniCommunity.GET("/getposts/communitytype2", postController.ListCommunity2)
			alumniCommunity.GET("/getposts/bothcommunitytypes", postController.ListAll)
			alumniCommunity.DELETE("/deletepost/:postId", postController.Delete)
		}

		alumniOnly := post.Group("")
		alumniOnly.Use(authMiddleware.RoleRequired(models.RoleAlumni))
		{
			alumniOnly.POST("/createpost", postController.Create)
			alumniOnly.GET("/yours/getposts", postController.ListMine)
		}
	}

	training := authenticated.Group("/api/v1/training")
	{
		training.GET("/getposts", trainingController.ListAll)
		training.GET("/gettrainingposts/:trainingType", trainingController.ListByType)

		trainingDelete := training.Group("")
		trainingDelete.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleAlumni))
		{
			trainingDelete.DELETE("/delete/:trainingId", trainingController.Delete)
		}

		trainingAlumni := training.Group("")
		trainingAlumni.Use(authMiddleware.RoleRequired(models.RoleAlumni))
		{
			trainingAlumni.POST("/create", trainingController.Create)
			trainingAlumni.GET("/yours/gettrainingposts", trainingController.ListMine)
		}
	}
}
