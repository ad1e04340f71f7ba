package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"megaskyshop/config"
	"megaskyshop/internal/domain/repository"
	mockRepo "megaskyshop/internal/mocks/repository"
	mockSvc "megaskyshop/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{
			DefaultCategoryID: 1,
			MaxOrderItems:     2,
			CategoryAliases: []config.CategoryAlias{
				{Label: "Smartphone", CategoryID: 7},
			},
			LegacyUploadPrefix:  "/uploads/",
			ImageBasePath:       "storage/images",
			MaxReportedFailures: 10,
		},
	}
}

// importServiceFixtures holds all test dependencies for the mock-based import service tests.
type importServiceFixtures struct {
	params       ImportServiceParams
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	orderRepo    *mockRepo.MockOrderRepository
	sectionRepo  *mockRepo.MockHomepageSectionRepository
	opener       *mockSvc.MockSourceOpener
	publisher    *mockSvc.MockEventPublisher
}

func createTestImportFixtures(t *testing.T) importServiceFixtures {
	fx := importServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		sectionRepo:  mockRepo.NewMockHomepageSectionRepository(t),
		opener:       mockSvc.NewMockSourceOpener(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.params = ImportServiceParams{
		TxManager:    fx.txManager,
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		SectionRepo:  fx.sectionRepo,
		Opener:       fx.opener,
		Publisher:    fx.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}

	return fx
}

// serveCSV makes the opener return content for location.
func (fx importServiceFixtures) serveCSV(location, content string) {
	fx.opener.EXPECT().
		Open(mock.Anything, location).
		Return(io.NopCloser(strings.NewReader(content)), nil)
}

// runTransactions executes every transaction against the mock factory.
func (fx importServiceFixtures) runTransactions() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}
