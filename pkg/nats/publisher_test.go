package nats

import (
	"context"
	"os"
	"testing"

	"techmart-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "storefront.ORDER_PLACED", Subject(events.OrderPlaced))
}

func TestPublisherAgainstServer(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set")
	}

	p, err := NewPublisher(url)
	require.NoError(t, err)
	defer p.Close()

	err = p.Publish(context.Background(), events.New(events.StockUpdated, map[string]interface{}{"product_id": "P001"}))
	assert.NoError(t, err)
}
