package users

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
)

func TestInMemoryRepository_CreateAndLookup(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Username: "alice", Email: "alice@x.com", PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_DuplicateEmailOrUsername(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Username: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	// same email, different username
	_, err = repo.Create(ctx, &models.User{Username: "alice2", Email: "alice@x.com"})
	assert.ErrorIs(t, err, common.ErrorDuplicateCredential)

	// same username, different email
	_, err = repo.Create(ctx, &models.User{Username: "alice", Email: "other@x.com"})
	assert.ErrorIs(t, err, common.ErrorDuplicateCredential)
}

func TestInMemoryRepository_ConcurrentDuplicateCreate(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, &models.User{
				Username: fmt.Sprintf("user-%d", i), Email: "shared@x.com",
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, common.ErrorDuplicateCredential)
		}
	}
	assert.Equal(t, 1, successes)
}
