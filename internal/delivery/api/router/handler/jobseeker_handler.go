package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/response"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobSeekerHandlerParams holds dependencies for JobSeekerHandler, injected by Fx.
type JobSeekerHandlerParams struct {
	fx.In

	JobSeekerUC usecase.JobSeekerUsecase
	Logger      *slog.Logger
}

// JobSeekerHandler serves the /api/jobseeker routes.
type JobSeekerHandler struct {
	jobSeekerUC usecase.JobSeekerUsecase
	logger      *slog.Logger
}

// NewJobSeekerHandler is the constructor for JobSeekerHandler.
func NewJobSeekerHandler(params JobSeekerHandlerParams) *JobSeekerHandler {
	return &JobSeekerHandler{
		jobSeekerUC: params.JobSeekerUC,
		logger:      params.Logger,
	}
}

func (h *JobSeekerHandler) GetProfile(c echo.Context) error {
	output, err := h.jobSeekerUC.GetProfile(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *JobSeekerHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateJobSeekerProfileInput
	if handled, err := bindAndValidate(c, &input, "Invalid profile input"); handled {
		return err
	}

	output, err := h.jobSeekerUC.UpdateProfile(c.Request().Context(), deliverycontext.GetPrincipal(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *JobSeekerHandler) ApplyForJob(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	output, err := h.jobSeekerUC.ApplyForJob(c.Request().Context(), deliverycontext.GetPrincipal(c), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *JobSeekerHandler) GetMyApplications(c echo.Context) error {
	output, err := h.jobSeekerUC.GetMyApplications(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
