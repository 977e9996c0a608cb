// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	EmployerHandler  *handler.EmployerHandler
	JobSeekerHandler *handler.JobSeekerHandler
	JobHandler       *handler.JobHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	employerHandler  *handler.EmployerHandler
	jobSeekerHandler *handler.JobSeekerHandler
	jobHandler       *handler.JobHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		employerHandler:  params.EmployerHandler,
		jobSeekerHandler: params.JobSeekerHandler,
		jobHandler:       params.JobHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Filter)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register/jobseeker", r.authHandler.RegisterJobSeeker)
		authGroup.POST("/register/employer", r.authHandler.RegisterEmployer)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/validate", r.authHandler.ValidateToken)
	}

	employerGroup := api.Group("/employer")
	employerGroup.Use(r.authMiddleware.RequireRole(entity.RoleEmployer))
	{
		employerGroup.GET("/profile", r.employerHandler.GetProfile)
		employerGroup.PUT("/profile", r.employerHandler.UpdateProfile)
		employerGroup.POST("/jobs", r.employerHandler.CreateJob)
		employerGroup.GET("/jobs", r.employerHandler.GetMyJobs)
		employerGroup.GET("/jobs/:jobId", r.employerHandler.GetMyJob)
		employerGroup.PUT("/jobs/:jobId", r.employerHandler.UpdateJob)
		employerGroup.DELETE("/jobs/:jobId", r.employerHandler.CloseJob)
		employerGroup.GET("/jobs/:jobId/applications", r.employerHandler.GetJobApplications)
		employerGroup.GET("/candidates/search", r.employerHandler.SearchCandidates)
		employerGroup.GET("/applications", r.employerHandler.GetAllMyJobApplications)
		employerGroup.PUT("/applications/:applicationId/status", r.employerHandler.UpdateApplicationStatus)
	}

	jobSeekerGroup := api.Group("/jobseeker")
	jobSeekerGroup.Use(r.authMiddleware.RequireRole(entity.RoleJobSeeker))
	{
		jobSeekerGroup.GET("/profile", r.jobSeekerHandler.GetProfile)
		jobSeekerGroup.PUT("/profile", r.jobSeekerHandler.UpdateProfile)
		jobSeekerGroup.POST("/jobs/:jobId/apply", r.jobSeekerHandler.ApplyForJob)
		jobSeekerGroup.GET("/applications", r.jobSeekerHandler.GetMyApplications)
	}

	// Public listing; /search and /all are static so they win over /:jobId
	jobsGroup := api.Group("/jobs")
	{
		jobsGroup.GET("/search", r.jobHandler.SearchJobs)
		jobsGroup.GET("/all", r.jobHandler.GetAllActiveJobs)
		jobsGroup.GET("/:jobId", r.jobHandler.GetJob)
		jobsGroup.GET("/:jobId/qr", r.jobHandler.JobQRCode)
	}
}
