package pubsub

import (
	"context"
	"errors"
	"sync"

	"creator-dashboard/infrastructure/logger"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// NewPubSub creates a Pub/Sub client for projectID.
func NewPubSub(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("pubsub: project id is required")
	}
	return pubsub.NewClient(ctx, projectID, opts...)
}

// Publisher publishes payloads to Pub/Sub topics, creating a topic on first use
// when it does not exist yet.
type Publisher struct {
	client *pubsub.Client

	mu     sync.Mutex
	topics map[string]*pubsub.Topic
}

func NewPublisher(client *pubsub.Client) *Publisher {
	return &Publisher{client: client, topics: make(map[string]*pubsub.Topic)}
}

func (p *Publisher) Publish(ctx context.Context, topicName string, payload []byte) (string, error) {
	if p.client == nil {
		return "", errors.New("pubsub: client not initialised")
	}
	topic, err := p.topic(ctx, topicName)
	if err != nil {
		return "", err
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return "", err
	}
	logger.GetLogger().WithField("server_id", serverID).WithField("topic", topicName).Info("Message published")
	return serverID, nil
}

func (p *Publisher) topic(ctx context.Context, name string) (*pubsub.Topic, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.topics[name]; ok {
		return t, nil
	}

	t := p.client.Topic(name)
	exists, err := t.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.GetLogger().WithField("topic", name).Info("Topic doesn't exist - creating it")
		if t, err = p.client.CreateTopic(ctx, name); err != nil {
			return nil, err
		}
	}
	p.topics[name] = t
	return t, nil
}

// Close flushes pending messages of every topic used so far.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.topics {
		t.Stop()
	}
}
