package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	mockRepo "jobboard/internal/mocks/repository"
	mockSvc "jobboard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// serviceFixtures holds the doubles shared by the usecase service tests.
type serviceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	jobRepo   *mockRepo.MockJobRepository
	appRepo   *mockRepo.MockApplicationRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	jobCache  *mockSvc.MockJobCache
	publisher *mockSvc.MockEventPublisher
	qrCode    *mockSvc.MockQRCodeService
	logger    *slog.Logger
}

func newServiceFixtures(t *testing.T) *serviceFixtures {
	return &serviceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		jobRepo:   mockRepo.NewMockJobRepository(t),
		appRepo:   mockRepo.NewMockApplicationRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		jobCache:  mockSvc.NewMockJobCache(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		qrCode:    mockSvc.NewMockQRCodeService(t),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// expectTx runs the unit of work against the fixture repositories.
func (f *serviceFixtures) expectTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().JobRepo().Return(f.jobRepo).Maybe()
	f.factory.EXPECT().ApplicationRepo().Return(f.appRepo).Maybe()
}

func (f *serviceFixtures) expectEvent(eventType string) {
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == eventType
		})).
		Return(nil).
		Once()
}

func (f *serviceFixtures) authService() *authService {
	return NewAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Logger:       f.logger,
	}).(*authService)
}

func (f *serviceFixtures) employerService() *employerService {
	return NewEmployerService(EmployerServiceParams{
		TxManager: f.txManager,
		AuthUC:    f.authService(),
		UserRepo:  f.userRepo,
		JobRepo:   f.jobRepo,
		AppRepo:   f.appRepo,
		JobCache:  f.jobCache,
		Publisher: f.publisher,
		Logger:    f.logger,
	}).(*employerService)
}

func (f *serviceFixtures) jobSeekerService() *jobSeekerService {
	return NewJobSeekerService(JobSeekerServiceParams{
		TxManager: f.txManager,
		AuthUC:    f.authService(),
		JobRepo:   f.jobRepo,
		AppRepo:   f.appRepo,
		Publisher: f.publisher,
		Logger:    f.logger,
	}).(*jobSeekerService)
}

func (f *serviceFixtures) jobService() *jobService {
	return NewJobService(JobServiceParams{
		JobRepo:  f.jobRepo,
		JobCache: f.jobCache,
		QRCode:   f.qrCode,
		Logger:   f.logger,
	}).(*jobService)
}

func newEmployer() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:        id,
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@acme.io",
		Role:      entity.RoleEmployer,
		EmployerProfile: &entity.EmployerProfile{
			UserID:      id,
			Designation: "CTO",
			CompanyName: "Acme",
		},
	}
}

func newJobSeeker() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      entity.RoleJobSeeker,
		JobSeekerProfile: &entity.JobSeekerProfile{
			UserID:         id,
			DesiredJobRole: "backend engineer",
			Skills:         []string{"go", "sql"},
		},
	}
}

// principalFor registers the principal lookup every role-scoped call performs.
func (f *serviceFixtures) principalFor(ctx context.Context, user *entity.User) *entity.Principal {
	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	return entity.NewPrincipal(user)
}
