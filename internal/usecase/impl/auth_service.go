package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) RegisterJobSeeker(ctx context.Context, input *usecase.RegisterJobSeekerInput) (*usecase.AuthResult, error) {
	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        util.NormalizeEmail(input.Email),
		MobileNumber: input.MobileNumber,
		Role:         entity.RoleJobSeeker,
		JobSeekerProfile: &entity.JobSeekerProfile{
			DateOfBirth:    dateOfBirth,
			Degree:         input.Degree,
			LinkedinID:     input.LinkedinID,
			DesiredJobRole: input.DesiredJobRole,
			Skills:         util.NormalizeSkills(input.Skills),
			PassedOutYear:  input.PassedOutYear,
			CurrentSalary:  input.CurrentSalary,
			ExpectedSalary: input.ExpectedSalary,
		},
	}

	return srv.register(ctx, user, input.Password)
}

func (srv *authService) RegisterEmployer(ctx context.Context, input *usecase.RegisterEmployerInput) (*usecase.AuthResult, error) {
	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        util.NormalizeEmail(input.Email),
		MobileNumber: input.MobileNumber,
		Role:         entity.RoleEmployer,
		EmployerProfile: &entity.EmployerProfile{
			Designation: input.Designation,
			CompanyName: input.CompanyName,
		},
	}

	return srv.register(ctx, user, input.Password)
}

// register rejects taken emails before hashing, then writes the user and its
// profile in one transaction.
func (srv *authService) register(ctx context.Context, user *entity.User, password string) (*usecase.AuthResult, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", user.Role), slog.String("email", user.Email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		srv.log(ctx).Warn("Email already registered", slog.String("email", user.Email))

		return nil, errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
	}

	passwordHash, err := srv.hasher.Hash(password)
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return nil, err
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = passwordHash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateEmail, "email registered concurrently")
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", user.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.Any("role", user.Role), slog.Any("userID", user.ID))

	return srv.issue(user)
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issue(user)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthResult, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.Email, map[string]any{
		"role": user.Role.String(),
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthResult{
		Token:     token,
		Type:      usecase.TokenTypeBearer,
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

func (srv *authService) ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error) {
	if token == "" || !srv.tokenService.Validate(token) {
		return nil, nil
	}

	subject, err := srv.tokenService.ExtractSubject(token)
	if err != nil {
		srv.log(ctx).Debug("Failed to extract token subject", slog.Any("error", err))

		return nil, nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, util.NormalizeEmail(subject))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return entity.NewPrincipal(user), nil
}

func (srv *authService) GetCurrentUser(ctx context.Context, principal *entity.Principal) (*entity.User, bool) {
	if principal == nil {
		return nil, false
	}

	user, err := srv.userRepo.FindByEmail(ctx, principal.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to load current user", slog.String("email", principal.Email), slog.Any("error", err))
		}

		return nil, false
	}

	return user, true
}

func (srv *authService) ValidateToken(ctx context.Context, token string) (string, error) {
	principal, err := srv.ResolvePrincipal(ctx, token)
	if err != nil {
		return "", err
	}
	if principal == nil {
		return "", errors.WithStack(domainerrors.ErrInvalidToken)
	}

	return principal.Email, nil
}
