package repository

import (
	"context"

	"creator-dashboard/domain/model"
)

// ICatalog fetches the most popular videos for a query from the video catalog.
type ICatalog interface {
	MostPopular(ctx context.Context, params model.QueryParameters) ([]model.NormalizedVideo, error)
}
