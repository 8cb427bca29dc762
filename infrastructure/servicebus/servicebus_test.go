package servicebus

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent    []*azservicebus.Message
	sendErr error
	closed  bool
}

func (f *fakeSender) SendMessage(_ context.Context, m *azservicebus.Message, _ *azservicebus.SendMessageOptions) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeSender) Close(context.Context) error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	sender := &fakeSender{}
	var queue string
	p := &Publisher{newSender: func(q string) (messageSender, error) {
		queue = q
		return sender, nil
	}}

	id, err := p.Publish(context.Background(), "script-requests", []byte(`{"a":1}`))
	require.NoError(t, err)

	assert.Equal(t, "script-requests", queue)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, id, *sender.sent[0].MessageID)
	assert.Equal(t, `{"a":1}`, string(sender.sent[0].Body))
	assert.True(t, sender.closed)
}

func TestPublisher_SendFailure(t *testing.T) {
	sender := &fakeSender{sendErr: errors.New("unauthorized")}
	p := &Publisher{newSender: func(string) (messageSender, error) { return sender, nil }}

	_, err := p.Publish(context.Background(), "q", nil)
	assert.EqualError(t, err, "unauthorized")
	assert.True(t, sender.closed)
}

func TestPublisher_NilClient(t *testing.T) {
	_, err := NewPublisher(nil).Publish(context.Background(), "q", nil)
	assert.Error(t, err)
}

func TestNewServiceBus_RequiresNamespace(t *testing.T) {
	_, err := NewServiceBus(context.Background(), "")
	assert.Error(t, err)
}
