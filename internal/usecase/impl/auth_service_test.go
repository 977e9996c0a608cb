package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterJobSeeker_Success(t *testing.T) {
	fx := newServiceFixtures(t)
	srv := fx.authService()

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)
	input := &usecase.RegisterJobSeekerInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "  Ada@Example.COM ",
		Password:    "secret1",
		DateOfBirth: "1990-05-01",
		Skills:      []string{"Go", " JAVA ", "go"},
	}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, "ada@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.expectTx(ctx)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "ada@example.com" &&
				user.PasswordHash == "hashed" &&
				user.Role == entity.RoleJobSeeker &&
				user.EmployerProfile == nil &&
				assert.ObjectsAreEqual([]string{"go", "java"}, user.JobSeekerProfile.Skills)
		})).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.tokens.EXPECT().
		Issue("ada@example.com", map[string]any{"role": "JOB_SEEKER"}).
		Return("signed-token", expiresAt, nil)

	result, err := srv.RegisterJobSeeker(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, usecase.TokenTypeBearer, result.Type)
	assert.Equal(t, userID, result.ID)
	assert.Equal(t, "ada@example.com", result.Email)
	assert.Equal(t, entity.RoleJobSeeker, result.Role)
	assert.Equal(t, expiresAt, result.ExpiresAt)
}

func TestAuthService_RegisterJobSeeker_BadDate(t *testing.T) {
	fx := newServiceFixtures(t)
	srv := fx.authService()

	_, err := srv.RegisterJobSeeker(context.Background(), &usecase.RegisterJobSeekerInput{
		Email:       "ada@example.com",
		DateOfBirth: "01/05/1990",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_RegisterEmployer_DuplicateEmailWritesNothing(t *testing.T) {
	fx := newServiceFixtures(t)
	srv := fx.authService()

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "grace@acme.io").Return(true, nil)

	_, err := srv.RegisterEmployer(ctx, &usecase.RegisterEmployerInput{
		Email:       "GRACE@acme.io",
		Password:    "secret1",
		CompanyName: "Acme",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterEmployer_ConcurrentDuplicate(t *testing.T) {
	fx := newServiceFixtures(t)
	srv := fx.authService()

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "grace@acme.io").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.expectTx(ctx)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleEmployer && user.EmployerProfile.CompanyName == "Acme"
		})).
		Return(repository.ErrDuplicateEmail)

	_, err := srv.RegisterEmployer(ctx, &usecase.RegisterEmployerInput{
		Email:       "grace@acme.io",
		Password:    "secret1",
		CompanyName: "Acme",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAuthService_RegisterEmployer_OverlongPassword(t *testing.T) {
	fx := newServiceFixtures(t)
	srv := fx.authService()

	ctx := context.Background()
	password := strings.Repeat("é", 40)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "grace@acme.io").Return(false, nil)
	fx.hasher.EXPECT().
		Hash(password).
		Return("", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")))

	_, err := srv.RegisterEmployer(ctx, &usecase.RegisterEmployerInput{
		Email:       "grace@acme.io",
		Password:    password,
		CompanyName: "Acme",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterEmployer_TokenFailure(t *testing.T) {
	fx := newServiceFixtures(t)
	srv := fx.authService()

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "grace@acme.io").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.expectTx(ctx)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokens.EXPECT().
		Issue("grace@acme.io", mock.Anything).
		Return("", time.Time{}, errors.New("empty secret"))

	_, err := srv.RegisterEmployer(ctx, &usecase.RegisterEmployerInput{
		Email:       "grace@acme.io",
		Password:    "secret1",
		CompanyName: "Acme",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestAuthService_Login(t *testing.T) {
	user := newEmployer()
	user.PasswordHash = "hashed"

	tests := []struct {
		name    string
		setup   func(fx *serviceFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name: "success",
			setup: func(fx *serviceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
				fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
				fx.tokens.EXPECT().
					Issue(user.Email, map[string]any{"role": "EMPLOYER"}).
					Return("signed-token", time.Now().Add(time.Hour), nil)
			},
		},
		{
			name: "unknown email",
			setup: func(fx *serviceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx *serviceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
				fx.hasher.EXPECT().Check("secret1", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newServiceFixtures(t)
			srv := fx.authService()
			ctx := context.Background()
			tt.setup(fx, ctx)

			result, err := srv.Login(ctx, &usecase.LoginInput{Email: " Grace@Acme.io", Password: "secret1"})

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed-token", result.Token)
			assert.Equal(t, entity.RoleEmployer, result.Role)
		})
	}
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	user := newJobSeeker()

	t.Run("valid token", func(t *testing.T) {
		fx := newServiceFixtures(t)
		srv := fx.authService()
		ctx := context.Background()

		fx.tokens.EXPECT().Validate("tok").Return(true)
		fx.tokens.EXPECT().ExtractSubject("tok").Return(user.Email, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		principal, err := srv.ResolvePrincipal(ctx, "tok")

		require.NoError(t, err)
		require.NotNil(t, principal)
		assert.Equal(t, user.ID, principal.UserID)
		assert.Equal(t, "ROLE_JOB_SEEKER", principal.Authority)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := newServiceFixtures(t)
		srv := fx.authService()

		fx.tokens.EXPECT().Validate("tok").Return(false)

		principal, err := srv.ResolvePrincipal(context.Background(), "tok")

		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("unknown subject", func(t *testing.T) {
		fx := newServiceFixtures(t)
		srv := fx.authService()
		ctx := context.Background()

		fx.tokens.EXPECT().Validate("tok").Return(true)
		fx.tokens.EXPECT().ExtractSubject("tok").Return("gone@example.com", nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		principal, err := srv.ResolvePrincipal(ctx, "tok")

		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := newServiceFixtures(t)
		srv := fx.authService()
		ctx := context.Background()
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find user")

		fx.tokens.EXPECT().Validate("tok").Return(true)
		fx.tokens.EXPECT().ExtractSubject("tok").Return(user.Email, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, dbErr)

		_, err := srv.ResolvePrincipal(ctx, "tok")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	user := newEmployer()

	fx := newServiceFixtures(t)
	srv := fx.authService()
	ctx := context.Background()

	fx.tokens.EXPECT().Validate("good").Return(true)
	fx.tokens.EXPECT().ExtractSubject("good").Return(user.Email, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokens.EXPECT().Validate("bad").Return(false)

	email, err := srv.ValidateToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, user.Email, email)

	_, err = srv.ValidateToken(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = srv.ValidateToken(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	user := newJobSeeker()

	fx := newServiceFixtures(t)
	srv := fx.authService()
	ctx := context.Background()

	got, ok := srv.GetCurrentUser(ctx, nil)
	assert.False(t, ok)
	assert.Nil(t, got)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil).Once()
	got, ok = srv.GetCurrentUser(ctx, entity.NewPrincipal(user))
	assert.True(t, ok)
	assert.Equal(t, user, got)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, errors.New("connection reset")).Once()
	got, ok = srv.GetCurrentUser(ctx, entity.NewPrincipal(user))
	assert.False(t, ok, "lookup errors are reported as no user")
	assert.Nil(t, got)
}
