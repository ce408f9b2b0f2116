package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	author := createTestUser(t, db, "alice")
	txManager := NewTransactionManager(db)

	post := newTestPost(author.ID, "Hello", time.Now().UTC())
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewPostRepository().Create(ctx, post)
	})
	require.NoError(t, err)

	_, err = NewPostRepository(db).FindByID(ctx, post.ID)
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	author := createTestUser(t, db, "alice")
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	post := newTestPost(author.ID, "Hello", time.Now().UTC())
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewPostRepository().Create(ctx, post); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewPostRepository(db).FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	user := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hash"}
	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewUserRepository().Create(ctx, user); err != nil {
				return err
			}
			panic("handler bug")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
