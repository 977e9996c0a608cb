package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/delivery/api/validator"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/delivery/middleware"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/mocks/usecase"
	uc "jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	employerToken  = "employer-token"
	jobSeekerToken = "jobseeker-token"
)

type testAPI struct {
	echo        *echo.Echo
	authUC      *usecase.MockAuthUsecase
	employerUC  *usecase.MockEmployerUsecase
	jobSeekerUC *usecase.MockJobSeekerUsecase
	jobUC       *usecase.MockJobUsecase
	employer    *entity.Principal
	jobSeeker   *entity.Principal
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		echo:        echo.New(),
		authUC:      usecase.NewMockAuthUsecase(t),
		employerUC:  usecase.NewMockEmployerUsecase(t),
		jobSeekerUC: usecase.NewMockJobSeekerUsecase(t),
		jobUC:       usecase.NewMockJobUsecase(t),
		employer: &entity.Principal{
			UserID: uuid.New(),
			Email:  "grace@acme.io",
			Role:   entity.RoleEmployer,
		},
		jobSeeker: &entity.Principal{
			UserID: uuid.New(),
			Email:  "ada@example.com",
			Role:   entity.RoleJobSeeker,
		},
	}

	api.echo.Use(middleware.NewRequestIDMiddleware(logger).Process)
	api.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	api.echo.Validator = validator.New()

	r := NewRouter(RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: api.authUC, Logger: logger}),
		EmployerHandler:  handler.NewEmployerHandler(handler.EmployerHandlerParams{EmployerUC: api.employerUC, Logger: logger}),
		JobSeekerHandler: handler.NewJobSeekerHandler(handler.JobSeekerHandlerParams{JobSeekerUC: api.jobSeekerUC, Logger: logger}),
		JobHandler:       handler.NewJobHandler(handler.JobHandlerParams{JobUC: api.jobUC, Logger: logger}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: api.authUC, Logger: logger}),
	})
	r.RegisterRoutes(api.echo)

	return api
}

// loginAs makes the token resolve to the principal for any number of requests.
func (api *testAPI) loginAs(token string, principal *entity.Principal) {
	api.authUC.EXPECT().ResolvePrincipal(mock.Anything, token).Return(principal, nil).Maybe()
}

func (api *testAPI) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

const validJobBody = `{
	"jobTitle": "Backend Engineer",
	"jobDescription": "Build APIs",
	"requiredSkills": ["go", "sql"],
	"minExperience": 2,
	"maxExperience": 5,
	"minSalary": 100000,
	"maxSalary": 150000,
	"location": "Remote"
}`

func TestRouter_HealthCheck(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"UP"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/employer/profile", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decodeError(t, rec).Meta.RequestID)
}

func TestRouter_RoleGuards(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		token      string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "anonymous employer route",
			target:     "/api/employer/profile",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "job seeker on employer route",
			target:     "/api/employer/profile",
			token:      jobSeekerToken,
			wantStatus: http.StatusForbidden,
			wantCode:   "ACCESS_DENIED",
		},
		{
			name:       "employer on job seeker route",
			target:     "/api/jobseeker/applications",
			token:      employerToken,
			wantStatus: http.StatusForbidden,
			wantCode:   "ACCESS_DENIED",
		},
		{
			name:       "unknown token is anonymous",
			target:     "/api/jobseeker/profile",
			token:      "forged",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.loginAs(employerToken, api.employer)
			api.loginAs(jobSeekerToken, api.jobSeeker)
			api.authUC.EXPECT().ResolvePrincipal(mock.Anything, "forged").Return(nil, nil).Maybe()

			rec := api.do(http.MethodGet, tt.target, tt.token, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestRouter_ResolvePrincipalFailureIsAnonymous(t *testing.T) {
	api := newTestAPI(t)
	api.authUC.EXPECT().ResolvePrincipal(mock.Anything, employerToken).Return(nil, errors.New("db down")).Once()

	rec := api.do(http.MethodGet, "/api/employer/jobs", employerToken, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	api := newTestAPI(t)
	result := &uc.AuthResult{
		Token: "jwt",
		Type:  uc.TokenTypeBearer,
		ID:    api.jobSeeker.UserID,
		Email: api.jobSeeker.Email,
		Role:  entity.RoleJobSeeker,
	}
	api.authUC.EXPECT().
		Login(mock.Anything, &uc.LoginInput{Email: "ada@example.com", Password: "secret1"}).
		Return(result, nil).Once()

	rec := api.do(http.MethodPost, "/api/auth/login", "", `{"email":"ada@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
	assert.Contains(t, rec.Body.String(), `"type":"Bearer"`)
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	rec := api.do(http.MethodPost, "/api/auth/login", "", `{"email":"ada@example.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)
}

func TestRouter_RegisterEmployer(t *testing.T) {
	api := newTestAPI(t)
	api.authUC.EXPECT().
		RegisterEmployer(mock.Anything, mock.MatchedBy(func(input *uc.RegisterEmployerInput) bool {
			return input.Email == "grace@acme.io" && input.CompanyName == "Acme"
		})).
		Return(&uc.AuthResult{Token: "jwt", Type: uc.TokenTypeBearer, Role: entity.RoleEmployer}, nil).Once()

	rec := api.do(http.MethodPost, "/api/auth/register/employer", "",
		`{"email":"grace@acme.io","password":"secret1","companyName":"Acme"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"EMPLOYER"`)
}

func TestRouter_RegisterJobSeekerValidation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/auth/register/jobseeker", "",
		`{"firstName":"Ada","lastName":"Lovelace","email":"not-an-email","password":"secret1","skills":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "email")
	assert.Contains(t, body.Error.Details, "skills")
}

func TestRouter_RegisterEmployerOverlongPassword(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/auth/register/employer", "",
		`{"email":"grace@acme.io","password":"`+strings.Repeat("a", 73)+`","companyName":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "password: must be at most 72")
}

func TestRouter_MalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/auth/login", "", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestRouter_ValidateToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		api := newTestAPI(t)
		api.authUC.EXPECT().ValidateToken(mock.Anything, employerToken).Return("grace@acme.io", nil).Once()

		rec := api.do(http.MethodGet, "/api/auth/validate", employerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token valid for: grace@acme.io")
	})

	t.Run("missing header", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/auth/validate", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		api := newTestAPI(t)
		api.authUC.EXPECT().ValidateToken(mock.Anything, "expired").
			Return("", errors.WithStack(domainerrors.ErrInvalidToken)).Once()

		rec := api.do(http.MethodGet, "/api/auth/validate", "expired", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Error.Code)
	})
}

func TestRouter_CreateJob(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	jobID := uuid.New()
	api.employerUC.EXPECT().
		CreateJob(mock.Anything, api.employer, mock.MatchedBy(func(input *uc.JobInput) bool {
			return input.JobTitle == "Backend Engineer" && len(input.RequiredSkills) == 2
		})).
		Return(&uc.JobDTO{ID: jobID, JobTitle: "Backend Engineer", Status: entity.JobStatusActive}, nil).Once()

	rec := api.do(http.MethodPost, "/api/employer/jobs", employerToken, validJobBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), jobID.String())
	assert.Contains(t, rec.Body.String(), `"status":"ACTIVE"`)
}

func TestRouter_CreateJobValidation(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	rec := api.do(http.MethodPost, "/api/employer/jobs", employerToken, `{"jobTitle":"Backend Engineer"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "location")
}

func TestRouter_UpdateJobNotOwned(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	jobID := uuid.New()
	api.employerUC.EXPECT().UpdateJob(mock.Anything, api.employer, jobID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrNotFound)).Once()

	rec := api.do(http.MethodPut, "/api/employer/jobs/"+jobID.String(), employerToken, validJobBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestRouter_CloseJob(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	jobID := uuid.New()
	api.employerUC.EXPECT().CloseJob(mock.Anything, api.employer, jobID).Return(nil).Once()

	rec := api.do(http.MethodDelete, "/api/employer/jobs/"+jobID.String(), employerToken, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_InvalidPathUUID(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	rec := api.do(http.MethodGet, "/api/employer/jobs/42", employerToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "jobId: must be a UUID", body.Error.Details)
}

func TestRouter_SearchCandidates(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	api.employerUC.EXPECT().
		SearchCandidates(mock.Anything, api.employer, &uc.CandidateSearchInput{Skills: "java,python", JobRole: "developer"}).
		Return([]*uc.JobSeekerDTO{{FirstName: "Ada", Skills: []string{"java"}}}, nil).Once()

	rec := api.do(http.MethodGet, "/api/employer/candidates/search?skills=java,python&jobRole=developer", employerToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Ada"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRouter_UpdateApplicationStatus(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	applicationID := uuid.New()
	api.employerUC.EXPECT().
		UpdateApplicationStatus(mock.Anything, api.employer, applicationID, "SHORTLISTED").
		Return(&uc.ApplicationDTO{ID: applicationID, Status: entity.ApplicationStatusShortlisted}, nil).Once()

	rec := api.do(http.MethodPut, "/api/employer/applications/"+applicationID.String()+"/status?status=SHORTLISTED", employerToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"SHORTLISTED"`)
}

func TestRouter_UpdateApplicationStatusInvalid(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(employerToken, api.employer)

	applicationID := uuid.New()
	api.employerUC.EXPECT().
		UpdateApplicationStatus(mock.Anything, api.employer, applicationID, "PROMOTED").
		Return(nil, errors.WithStack(domainerrors.ErrInvalidApplicationStatus.WithDetails("status: PROMOTED"))).Once()

	rec := api.do(http.MethodPut, "/api/employer/applications/"+applicationID.String()+"/status?status=PROMOTED", employerToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_APPLICATION_STATUS", body.Error.Code)
	assert.Equal(t, "status: PROMOTED", body.Error.Details)
}

func TestRouter_ApplyForJob(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(jobSeekerToken, api.jobSeeker)

	jobID := uuid.New()
	api.jobSeekerUC.EXPECT().ApplyForJob(mock.Anything, api.jobSeeker, jobID).
		Return(&uc.ApplicationDTO{JobID: jobID, Status: entity.ApplicationStatusApplied}, nil).Once()

	rec := api.do(http.MethodPost, "/api/jobseeker/jobs/"+jobID.String()+"/apply", jobSeekerToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"APPLIED"`)
}

func TestRouter_ApplyForJobTwice(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(jobSeekerToken, api.jobSeeker)

	jobID := uuid.New()
	api.jobSeekerUC.EXPECT().ApplyForJob(mock.Anything, api.jobSeeker, jobID).
		Return(nil, errors.WithStack(domainerrors.ErrAlreadyApplied)).Once()

	rec := api.do(http.MethodPost, "/api/jobseeker/jobs/"+jobID.String()+"/apply", jobSeekerToken, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_APPLIED", decodeError(t, rec).Error.Code)
}

func TestRouter_UpdateJobSeekerProfile(t *testing.T) {
	api := newTestAPI(t)
	api.loginAs(jobSeekerToken, api.jobSeeker)

	api.jobSeekerUC.EXPECT().
		UpdateProfile(mock.Anything, api.jobSeeker, mock.MatchedBy(func(input *uc.UpdateJobSeekerProfileInput) bool {
			return input.DateOfBirth == "1990-12-10" && input.DesiredJobRole == "backend engineer"
		})).
		Return(&uc.JobSeekerDTO{FirstName: "Ada", DateOfBirth: "1990-12-10"}, nil).Once()

	rec := api.do(http.MethodPut, "/api/jobseeker/profile", jobSeekerToken,
		`{"firstName":"Ada","lastName":"Lovelace","dateOfBirth":"1990-12-10","desiredJobRole":"backend engineer","skills":["go"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dateOfBirth":"1990-12-10"`)
}

func TestRouter_PublicJobsAreAnonymous(t *testing.T) {
	api := newTestAPI(t)

	query := service.JobSearchQuery{JobTitle: "engineer", Location: "remote", Skills: "go,sql"}
	api.jobUC.EXPECT().SearchJobs(mock.Anything, query).
		Return([]*uc.JobDTO{{JobTitle: "Backend Engineer"}}, nil).Once()
	api.jobUC.EXPECT().GetAllActiveJobs(mock.Anything).Return([]*uc.JobDTO{}, nil).Once()

	rec := api.do(http.MethodGet, "/api/jobs/search?jobTitle=engineer&location=remote&skills=go,sql", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Backend Engineer")

	rec = api.do(http.MethodGet, "/api/jobs/all", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestRouter_GetJobNotFound(t *testing.T) {
	api := newTestAPI(t)

	jobID := uuid.New()
	api.jobUC.EXPECT().GetJob(mock.Anything, jobID).Return(nil, errors.WithStack(domainerrors.ErrJobNotFound)).Once()

	rec := api.do(http.MethodGet, "/api/jobs/"+jobID.String(), "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "JOB_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestRouter_JobQRCode(t *testing.T) {
	api := newTestAPI(t)

	jobID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	api.jobUC.EXPECT().JobQRCode(mock.Anything, jobID).Return(png, nil).Once()

	rec := api.do(http.MethodGet, "/api/jobs/"+jobID.String()+"/qr", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRouter_UnhandledErrorIsHidden(t *testing.T) {
	api := newTestAPI(t)
	api.jobUC.EXPECT().GetAllActiveJobs(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rec := api.do(http.MethodGet, "/api/jobs/all", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRouter_UnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/nothing-here", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}
