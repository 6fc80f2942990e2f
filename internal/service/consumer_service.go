package service

import (
	"context"
	"encoding/json"

	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/websocket"
	"techmart-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// LiveFeed delivers raw messages to websocket channels.
type LiveFeed interface {
	Publish(ctx context.Context, channel string, message []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	feed      LiveFeed
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, feed LiveFeed, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		feed:      feed,
		logger:    log,
	}
}

// Consume forwards bus events to the live feed until ctx is done. Every event
// goes to the admin channel; events carrying a session id also go to that
// shopper's channel.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Malformed payloads are acked so they are not redelivered forever.
	defer msg.Ack()

	var envelope events.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("CONSUMER", "Failed to decode event", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		return
	}

	cs.feed.Publish(ctx, websocket.AdminChannel, msg.Payload)

	if sid, ok := envelope.Data["session_id"].(string); ok && sid != "" {
		cs.feed.Publish(ctx, websocket.SessionChannel(sid), msg.Payload)
	}

	cs.logger.Debug("CONSUMER", "Event forwarded", map[string]interface{}{"type": envelope.Type})
}
