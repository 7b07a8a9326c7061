package impl

import (
	"context"
	"io"
	"log/slog"

	"menudash/config"
	"menudash/internal/domain/repository"
	mockRepo "menudash/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100},
		QRCode: &config.QRCodeConfig{
			Size:                 512,
			ErrorCorrectionLevel: "M",
			BaseURL:              "https://menu.example.com/",
			PublicMenuPath:       "/menu/view",
		},
		Restaurant: &config.RestaurantConfig{
			Name:  "Mama's Kitchen",
			Phone: "+2348000000000",
			Email: "hello@example.com",
		},
	}
}

// expectTransaction runs the transactional callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}

