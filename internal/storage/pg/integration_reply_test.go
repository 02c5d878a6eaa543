package pg

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-dev/agora/internal/domain"
	internal_errors "github.com/agora-dev/agora/internal/errors"
)

func mustCreateThread(t *testing.T, title domain.ThreadTitle) domain.ThreadId {
	t.Helper()
	id, err := storage.CreateThread(domain.ThreadCreationData{Title: title})
	require.NoError(t, err)
	return id
}

func TestCreateReply(t *testing.T) {
	truncateContent(t)
	threadId := mustCreateThread(t, "replies here")

	replyId, err := storage.CreateReply(context.Background(), domain.ReplyCreationData{
		ThreadId: threadId,
		Content:  "me too",
		Author:   strPtr("bob"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, replyId)

	thread, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, 1, thread.ReplyCount)

	replies, err := storage.Replies(threadId, 1000)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, replyId, replies[0].Id)
	assert.Equal(t, threadId, replies[0].ThreadId)
	assert.Equal(t, "me too", replies[0].Content)
	require.NotNil(t, replies[0].Author)
	assert.Equal(t, "bob", *replies[0].Author)
}

func TestCreateReplyMissingThread(t *testing.T) {
	truncateContent(t)
	threadId := mustCreateThread(t, "the only thread")

	_, err := storage.CreateReply(context.Background(), domain.ReplyCreationData{
		ThreadId: "no-such-thread",
		Content:  "into the void",
	})
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))

	// the failed insert must not leak an increment anywhere
	thread, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, 0, thread.ReplyCount)

	replies, err := storage.Replies("no-such-thread", 1000)
	require.NoError(t, err)
	assert.Empty(t, replies)
}

func TestCreateReplyCanceledContext(t *testing.T) {
	truncateContent(t)
	threadId := mustCreateThread(t, "abandoned request")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.CreateReply(ctx, domain.ReplyCreationData{ThreadId: threadId, Content: "too late"})
	require.Error(t, err)

	// the aborted transaction must leave no trace
	thread, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, 0, thread.ReplyCount)

	replies, err := storage.Replies(threadId, 1000)
	require.NoError(t, err)
	assert.Empty(t, replies)
}

func TestRepliesOrdering(t *testing.T) {
	truncateContent(t)
	threadId := mustCreateThread(t, "ordered")

	var ids []domain.ReplyId
	for _, content := range []string{"first", "second", "third"} {
		id, err := storage.CreateReply(context.Background(), domain.ReplyCreationData{ThreadId: threadId, Content: content})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	replies, err := storage.Replies(threadId, 1000)
	require.NoError(t, err)
	require.Len(t, replies, 3)

	// oldest first
	assert.Equal(t, ids[0], replies[0].Id)
	assert.Equal(t, ids[1], replies[1].Id)
	assert.Equal(t, ids[2], replies[2].Id)
}

func TestRepliesLimit(t *testing.T) {
	truncateContent(t)
	threadId := mustCreateThread(t, "capped replies")

	for i := 0; i < 5; i++ {
		_, err := storage.CreateReply(context.Background(), domain.ReplyCreationData{ThreadId: threadId, Content: "r"})
		require.NoError(t, err)
	}

	replies, err := storage.Replies(threadId, 3)
	require.NoError(t, err)
	assert.Len(t, replies, 3)
}

func TestConcurrentRepliesCountExactly(t *testing.T) {
	truncateContent(t)
	threadId := mustCreateThread(t, "contended")

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := storage.CreateReply(context.Background(), domain.ReplyCreationData{ThreadId: threadId, Content: "race"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	thread, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, n, thread.ReplyCount, "no increment may be lost under concurrency")

	replies, err := storage.Replies(threadId, 1000)
	require.NoError(t, err)
	assert.Len(t, replies, n)
}
