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

// EmployerHandlerParams holds dependencies for EmployerHandler, injected by Fx.
type EmployerHandlerParams struct {
	fx.In

	EmployerUC usecase.EmployerUsecase
	Logger     *slog.Logger
}

// EmployerHandler serves the /api/employer routes.
type EmployerHandler struct {
	employerUC usecase.EmployerUsecase
	logger     *slog.Logger
}

// NewEmployerHandler is the constructor for EmployerHandler.
func NewEmployerHandler(params EmployerHandlerParams) *EmployerHandler {
	return &EmployerHandler{
		employerUC: params.EmployerUC,
		logger:     params.Logger,
	}
}

func (h *EmployerHandler) GetProfile(c echo.Context) error {
	output, err := h.employerUC.GetProfile(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *EmployerHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateEmployerProfileInput
	if handled, err := bindAndValidate(c, &input, "Invalid profile input"); handled {
		return err
	}

	output, err := h.employerUC.UpdateProfile(c.Request().Context(), deliverycontext.GetPrincipal(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *EmployerHandler) CreateJob(c echo.Context) error {
	var input usecase.JobInput
	if handled, err := bindAndValidate(c, &input, "Invalid job input"); handled {
		return err
	}

	output, err := h.employerUC.CreateJob(c.Request().Context(), deliverycontext.GetPrincipal(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

func (h *EmployerHandler) GetMyJobs(c echo.Context) error {
	output, err := h.employerUC.GetMyJobs(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *EmployerHandler) GetMyJob(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	output, err := h.employerUC.GetMyJob(c.Request().Context(), deliverycontext.GetPrincipal(c), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *EmployerHandler) UpdateJob(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	var input usecase.JobInput
	if handled, err := bindAndValidate(c, &input, "Invalid job input"); handled {
		return err
	}

	output, err := h.employerUC.UpdateJob(c.Request().Context(), deliverycontext.GetPrincipal(c), jobID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// CloseJob handles DELETE /api/employer/jobs/:jobId. The job is closed, not removed.
func (h *EmployerHandler) CloseJob(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.employerUC.CloseJob(c.Request().Context(), deliverycontext.GetPrincipal(c), jobID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *EmployerHandler) SearchCandidates(c echo.Context) error {
	var input usecase.CandidateSearchInput
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &input); err != nil {
		return response.BindingError(c, "Invalid search parameters")
	}

	output, err := h.employerUC.SearchCandidates(c.Request().Context(), deliverycontext.GetPrincipal(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *EmployerHandler) GetJobApplications(c echo.Context) error {
	jobID, err := pathUUID(c, "jobId")
	if err != nil {
		return err
	}

	output, err := h.employerUC.GetJobApplications(c.Request().Context(), deliverycontext.GetPrincipal(c), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *EmployerHandler) GetAllMyJobApplications(c echo.Context) error {
	output, err := h.employerUC.GetAllMyJobApplications(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateApplicationStatus handles PUT /api/employer/applications/:applicationId/status?status=.
func (h *EmployerHandler) UpdateApplicationStatus(c echo.Context) error {
	applicationID, err := pathUUID(c, "applicationId")
	if err != nil {
		return err
	}

	output, err := h.employerUC.UpdateApplicationStatus(c.Request().Context(), deliverycontext.GetPrincipal(c), applicationID, c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
