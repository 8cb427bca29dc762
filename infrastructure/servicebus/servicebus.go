package servicebus

import (
	"context"
	"errors"

	"creator-dashboard/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/google/uuid"
)

// NewServiceBus creates a client for namespace (e.g. my-ns.servicebus.windows.net)
// authenticated with the default Azure credential chain.
func NewServiceBus(ctx context.Context, namespace string) (*azservicebus.Client, error) {
	if namespace == "" {
		return nil, errors.New("servicebus: namespace is required")
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, cred, nil)
}

type messageSender interface {
	SendMessage(ctx context.Context, message *azservicebus.Message, options *azservicebus.SendMessageOptions) error
	Close(ctx context.Context) error
}

// Publisher sends payloads to a queue or topic. A sender is opened per call.
type Publisher struct {
	newSender func(queueOrTopic string) (messageSender, error)
}

func NewPublisher(client *azservicebus.Client) *Publisher {
	return &Publisher{newSender: func(queueOrTopic string) (messageSender, error) {
		if client == nil {
			return nil, errors.New("servicebus: client not initialised")
		}
		return client.NewSender(queueOrTopic, nil)
	}}
}

func (p *Publisher) Publish(ctx context.Context, queueOrTopic string, payload []byte) (string, error) {
	sender, err := p.newSender(queueOrTopic)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return "", err
	}
	defer func() {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}()

	id := uuid.NewString()
	contentType := "application/json"
	err = sender.SendMessage(ctx, &azservicebus.Message{
		Body:        payload,
		MessageID:   &id,
		ContentType: &contentType,
	}, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return "", err
	}
	return id, nil
}
