package repository

import (
	"context"

	"creator-dashboard/domain/model"
)

// IContent is the user-scoped row store behind the content library.
type IContent interface {
	// ListScripts returns the user's rows of the scripts table.
	ListScripts(ctx context.Context, userID string) ([]model.Script, error)
	// ListItems returns the user's rows of the content_items table.
	ListItems(ctx context.Context, userID string) ([]model.ContentItem, error)
	// SaveScript inserts a script and returns it with generated fields set.
	SaveScript(ctx context.Context, script model.Script) (model.Script, error)
	// DeleteScript and DeleteItem return model.ErrNotFound when no row of the user matched.
	DeleteScript(ctx context.Context, userID, id string) error
	DeleteItem(ctx context.Context, userID, id string) error
}
