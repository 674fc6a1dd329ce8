package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/handlers"
	"github.com/Tekerra/acadlens-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName     string
	AllowedOrigins  []string
	AuthMiddleware  *middleware.AuthMiddleware
	AuthHandler     *handlers.AuthHandler
	AdminHandler    *handlers.AdminHandler
	HODHandler      *handlers.HODHandler
	AdvisorHandler  *handlers.AdvisorHandler
	LecturerHandler *handlers.LecturerHandler
	StudentHandler  *handlers.StudentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.GET("/universities", cfg.AuthHandler.Universities)
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}

	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRoles(grading.RoleAdmin))
	{
		admin.POST("/create-university", cfg.AdminHandler.CreateUniversity)
		admin.POST("/create-faculty", cfg.AdminHandler.CreateFaculty)
		admin.POST("/create-department", cfg.AdminHandler.CreateDepartment)
		admin.POST("/create-staff", cfg.AdminHandler.CreateStaff)
		admin.POST("/create-course", cfg.AdminHandler.CreateCourse)
		admin.POST("/bootstrap-structure", cfg.AdminHandler.BootstrapStructure)
		admin.GET("/system-stats", cfg.AdminHandler.SystemStats)
		admin.GET("/reference-data", cfg.AdminHandler.ReferenceData)
		admin.GET("/university-structure/:university_id", cfg.AdminHandler.UniversityStructure)
	}

	hod := api.Group("/hod")
	hod.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRoles(grading.RoleHOD))
	{
		hod.GET("/department-analytics", cfg.HODHandler.DepartmentAnalytics)
		hod.GET("/lecturers", cfg.HODHandler.Lecturers)
		hod.GET("/high-risk-courses", cfg.HODHandler.HighRiskCourses)
	}

	advisor := api.Group("/advisor")
	advisor.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRoles(grading.RoleCourseAdvisor))
	{
		advisor.GET("/students", cfg.AdvisorHandler.Students)
		advisor.GET("/at-risk", cfg.AdvisorHandler.AtRisk)
	}

	lecturer := api.Group("/lecturer")
	lecturer.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRoles(grading.RoleLecturer))
	{
		lecturer.POST("/upload-results", cfg.LecturerHandler.UploadResults)
		lecturer.GET("/class-analytics", cfg.LecturerHandler.ClassAnalytics)
	}

	student := api.Group("/student")
	student.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRoles(grading.RoleStudent))
	{
		student.GET("/courses", cfg.StudentHandler.Courses)
		student.GET("/dashboard", cfg.StudentHandler.Dashboard)
		student.GET("/personalized-learning", cfg.StudentHandler.Dashboard)
		student.GET("/personalized-learning-report", cfg.StudentHandler.Report)
	}

	return router
}
