package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"calshare/internal/domain/entity"
	"calshare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_PutGetRemove(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex()

	entry := &entity.ReverseIndexEntry{
		LookupKey: "key-1",
		UserID:    uuid.New(),
		ShareID:   "share-1",
	}

	require.NoError(t, idx.Put(ctx, entry))

	got, err := idx.Get(ctx, "key-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.UserID, got.UserID)
	assert.Equal(t, entry.ShareID, got.ShareID)

	require.NoError(t, idx.Remove(ctx, "key-1"))

	got, err = idx.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIndex_Get_MissIsNotAnError(t *testing.T) {
	idx := NewIndex()

	got, err := idx.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIndex_Put_IdenticalReputIsNoop(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex()

	entry := &entity.ReverseIndexEntry{
		LookupKey: "key-1",
		UserID:    uuid.New(),
		ShareID:   "share-1",
	}

	require.NoError(t, idx.Put(ctx, entry))
	require.NoError(t, idx.Put(ctx, entry))
}

func TestIndex_Put_ConflictOnDifferentOwner(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex()

	require.NoError(t, idx.Put(ctx, &entity.ReverseIndexEntry{
		LookupKey: "key-1",
		UserID:    uuid.New(),
		ShareID:   "share-1",
	}))

	err := idx.Put(ctx, &entity.ReverseIndexEntry{
		LookupKey: "key-1",
		UserID:    uuid.New(),
		ShareID:   "share-2",
	})
	assert.ErrorIs(t, err, repository.ErrIndexConflict)
}

func TestIndex_RemoveByShareID(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex()

	userID := uuid.New()
	require.NoError(t, idx.Put(ctx, &entity.ReverseIndexEntry{LookupKey: "key-1", UserID: userID, ShareID: "share-1"}))
	require.NoError(t, idx.Put(ctx, &entity.ReverseIndexEntry{LookupKey: "key-2", UserID: userID, ShareID: "share-2"}))

	require.NoError(t, idx.RemoveByShareID(ctx, "share-1"))

	got, err := idx.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = idx.Get(ctx, "key-2")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestIndex_Remove_AbsentKeyIsIdempotent(t *testing.T) {
	idx := NewIndex()

	assert.NoError(t, idx.Remove(context.Background(), "absent"))
	assert.NoError(t, idx.Remove(context.Background(), "absent"))
}

func TestIndex_ConcurrentUnrelatedKeys(t *testing.T) {
	ctx := context.Background()
	idx := NewIndex()

	const workers = 32

	var wg sync.WaitGroup
	for n := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			key := fmt.Sprintf("key-%d", n)
			entry := &entity.ReverseIndexEntry{
				LookupKey: key,
				UserID:    uuid.New(),
				ShareID:   fmt.Sprintf("share-%d", n),
			}

			assert.NoError(t, idx.Put(ctx, entry))

			got, err := idx.Get(ctx, key)
			assert.NoError(t, err)
			assert.NotNil(t, got)

			assert.NoError(t, idx.Remove(ctx, key))
		}()
	}
	wg.Wait()
}
