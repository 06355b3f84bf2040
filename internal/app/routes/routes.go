package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/controllers"
	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/middleware"
	"github.com/ciic/internhub/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	internshipController *controllers.InternshipController,
	applicationController *controllers.ApplicationController,
	studentController *controllers.StudentController,
	startupController *controllers.StartupController,
	reportController *controllers.ReportController,
	metaController *controllers.MetaController,
	alertController *controllers.AlertController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register/student", authController.RegisterStudent)
		auth.POST("/register/startup", authController.RegisterStartup)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// Catalog and metadata are readable without authentication
	v1.GET("/internships", internshipController.GetCatalog)
	v1.GET("/internships/:id", internshipController.GetInternshipByID)
	v1.GET("/meta/internship-domains", metaController.GetInternshipDomains)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Alerts are visible to every authenticated role
		authenticated.GET("/alerts", alertController.GetAllAlerts)

		// Student routes
		student := authenticated.Group("")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.POST("/applications", applicationController.Apply)
			student.GET("/applications/mine", applicationController.GetMyApplications)
			student.DELETE("/applications/:id", applicationController.Withdraw)
			student.GET("/students/me", studentController.GetMyProfile)
			student.PUT("/students/me", studentController.UpdateMyProfile)
		}

		// Startup routes
		startup := authenticated.Group("")
		startup.Use(authMiddleware.RoleRequired(models.RoleStartup))
		{
			startup.POST("/internships", internshipController.CreateInternship)
			startup.PUT("/internships/:id", internshipController.UpdateInternship)
			startup.PATCH("/internships/:id/active", internshipController.SetInternshipActive)
			startup.GET("/internships/mine", internshipController.GetMyInternships)
			startup.GET("/internships/:id/applications", applicationController.GetInternshipApplications)
			startup.GET("/startups/me", startupController.GetMyProfile)
			startup.PUT("/startups/me", startupController.UpdateMyProfile)
		}

		// Startup or admin: posting deletion, status transitions, dossier access
		startupOrAdmin := authenticated.Group("")
		startupOrAdmin.Use(authMiddleware.RoleRequired(models.RoleStartup, models.RoleAdmin))
		{
			startupOrAdmin.DELETE("/internships/:id", internshipController.DeleteInternship)
			startupOrAdmin.PATCH("/applications/:id/status", applicationController.UpdateApplicationStatus)
			startupOrAdmin.GET("/students/:id", studentController.GetStudentByID)
		}

		// Directory reads shared by all authenticated roles
		authenticated.GET("/startups", startupController.GetAllStartups)
		authenticated.GET("/startups/:id", startupController.GetStartupByID)

		// Admin routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/applications", applicationController.GetAllApplications)
			admin.POST("/applications/:id/certificate", applicationController.IssueCertificate)

			admin.GET("/students", studentController.GetAllStudents)
			admin.POST("/startups", startupController.EnrollStartup)

			admin.GET("/reports/applications", reportController.GetReport)
			admin.GET("/reports/applications/csv", reportController.ExportReportCSV)
			admin.GET("/dashboard/kpis", reportController.GetDashboardKPIs)

			admin.POST("/meta/internship-domains", metaController.CreateInternshipDomain)
			admin.DELETE("/meta/internship-domains/:key", metaController.DeleteInternshipDomain)

			admin.POST("/alerts", alertController.CreateAlert)
			admin.DELETE("/alerts/:id", alertController.DeleteAlert)
		}
	}
}
