package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/logger"
)

const ScriptRequestedEventType = "script.requested"

// publishTimeout bounds a background event publish.
const publishTimeout = 5 * time.Second

type IScriptUsecase interface {
	Generate(ctx context.Context, req model.ScriptRequest) (string, error)
}

type scriptUsecase struct {
	generator repository.IScriptGenerator
	publisher repository.IEventPublisher // optional
	topic     string
	now       func() time.Time
}

// NewScriptUsecase wires a generator and an optional event publisher.
// A nil publisher disables script.requested events.
func NewScriptUsecase(generator repository.IScriptGenerator, publisher repository.IEventPublisher, topic string) IScriptUsecase {
	return &scriptUsecase{generator: generator, publisher: publisher, topic: topic, now: time.Now}
}

func (u *scriptUsecase) Generate(ctx context.Context, req model.ScriptRequest) (string, error) {
	if req.MissingFields() {
		return "", model.NewValidationError("Missing required fields")
	}

	prompt := BuildScriptPrompt(req)
	logger.GetLogger().WithField("platform", req.Platform).Debugf("Script prompt:\n%s", prompt)

	script, err := u.generator.Generate(ctx, req, prompt)
	if err != nil {
		return "", &model.UnexpectedError{Err: err}
	}

	u.publish(ctx, req)
	return script, nil
}

func (u *scriptUsecase) publish(ctx context.Context, req model.ScriptRequest) {
	if u.publisher == nil {
		return
	}
	payload, err := json.Marshal(struct {
		Type string                     `json:"type"`
		Data model.ScriptRequestedEvent `json:"data"`
	}{
		Type: ScriptRequestedEventType,
		Data: model.ScriptRequestedEvent{
			Topic:          req.Topic,
			Platform:       req.Platform,
			VideoLength:    req.VideoLength,
			Tone:           req.Tone,
			ContentStyle:   req.ContentStyle,
			ReferenceCount: len(req.References),
			RequestedAt:    u.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to encode script event")
		return
	}
	// the response does not wait for the broker
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	go func() {
		defer cancel()
		id, err := u.publisher.Publish(pubCtx, u.topic, payload)
		if err != nil {
			logger.GetLogger().WithError(err).Warn("Failed to publish script event")
			return
		}
		logger.GetLogger().WithField("message_id", id).Debug("Published script event")
	}()
}

// BuildScriptPrompt renders the instruction a text generator receives for req.
func BuildScriptPrompt(req model.ScriptRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s second video script for %s with the following details:\n\n", req.VideoLength, req.Platform)
	fmt.Fprintf(&b, "Topic: %s\nTone: %s\nContent Style: %s\n\n", req.Topic, req.Tone, req.ContentStyle)
	if len(req.References) > 0 {
		b.WriteString("Reference materials:\n")
		for i, ref := range req.References {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "- %s: %s", ref.Title, ref.URL)
		}
	}
	b.WriteString("\n\nPlease provide a well-structured script that includes:\n")
	b.WriteString("1. Hook/Opening\n2. Main content\n3. Call to action\n4. Suggested visuals/transitions\n\n")
	fmt.Fprintf(&b, "Make it engaging and optimized for %s's format.", req.Platform)
	return b.String()
}
