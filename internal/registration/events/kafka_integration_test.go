//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"registrar/internal/registration/events"
	"registrar/pkg/testutil/containers"
)

func TestKafkaPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	const topic = "registrar.user-events"

	redpanda := containers.NewRedpandaContainer(t)
	redpanda.EnsureTopic(t, topic)

	publisher, err := events.NewKafkaPublisher([]string{redpanda.Broker}, topic)
	require.NoError(t, err)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, publisher.Publish(ctx, events.UserCreated("new@example.com")))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, string(events.KeyUserCreated), string(records[0].Key))

	var payload events.Payload
	require.NoError(t, json.Unmarshal(records[0].Value, &payload))
	assert.Equal(t, "new@example.com", payload.Email)
}
