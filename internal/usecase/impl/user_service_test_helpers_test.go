package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/config"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxFiles int, maxFileSize int64) *config.Config {
	return &config.Config{
		Media: &config.MediaConfig{
			MaxFiles:    maxFiles,
			MaxFileSize: maxFileSize,
		},
	}
}

// expectTransaction makes txManager run the callback against a factory handing out postRepo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, postRepo *mockRepo.MockPostRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewPostRepository().Return(postRepo)

			return fn(factory)
		}).
		Once()
}
