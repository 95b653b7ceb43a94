package events

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryPublisher(t *testing.T) {
	pub := NewInMemoryPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, UserCreated("new@example.com")))

	recorded := pub.Events()
	require.Len(t, recorded, 1)
	assert.Equal(t, KeyUserCreated, recorded[0].Key)
	assert.Equal(t, "new@example.com", recorded[0].Payload.Email)
}

func TestInMemoryPublisher_ConcurrentPublish(t *testing.T) {
	pub := NewInMemoryPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	const publishers = 20
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Publish(ctx, UserCreated("concurrent@example.com"))
		}()
	}
	wg.Wait()

	assert.Len(t, pub.Events(), publishers)
}
