package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/response"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler serves the public job listing.
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler.
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// SearchJobs handles GET /api/jobs/search?jobTitle=&location=&skills=.
func (h *JobHandler) SearchJobs(c echo.Context) error {
	query := service.JobSearchQuery{
		JobTitle: c.QueryParam("jobTitle"),
		Location: c.QueryParam("location"),
		Skills:   c.QueryParam("skills"),
	}

	output, err := h.jobUC.SearchJobs(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *JobHandler) GetAllActiveJobs(c echo.Context) error {
	output, err := h.jobUC.GetAllActiveJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	output, err := h.jobUC.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// JobQRCode handles GET /api/jobs/:jobId/qr.
func (h *JobHandler) JobQRCode(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	png, err := h.jobUC.JobQRCode(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}
