package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"techmart-be/internal/pkg/logger"
	pkgEvents "techmart-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFeed struct {
	mu       sync.Mutex
	channels []string
}

func (f *recordingFeed) Publish(ctx context.Context, channel string, message []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels = append(f.channels, channel)
}

func (f *recordingFeed) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.channels...)
}

func TestConsumerForwardsToLiveFeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "consumer.log"))
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	feed := &recordingFeed{}
	require.NoError(t, NewConsumerService(pubSub, LiveFeedTopic, feed, log).Consume(ctx))

	publisher := NewPublisherService(pubSub, LiveFeedTopic)
	require.NoError(t, publisher.Publish(ctx, pkgEvents.New(pkgEvents.StockUpdated, map[string]interface{}{"product_id": "P001"})))
	require.NoError(t, publisher.Publish(ctx, pkgEvents.New(pkgEvents.OrderPlaced, map[string]interface{}{"session_id": "s1"})))

	assert.Eventually(t, func() bool { return len(feed.seen()) == 3 }, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"admin", "admin", "session:s1"}, feed.seen())
}
