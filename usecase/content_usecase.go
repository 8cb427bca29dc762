package usecase

import (
	"context"
	"errors"
	"strings"

	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/logger"
)

type IContentUsecase interface {
	List(ctx context.Context, userID string, filter model.ContentFilter) ([]model.ContentItem, error)
	SaveScript(ctx context.Context, userID string, script model.Script) (model.Script, error)
	Delete(ctx context.Context, userID string, contentType model.ContentType, id string) error
}

type contentUsecase struct {
	repo repository.IContent
}

func NewContentUsecase(repo repository.IContent) IContentUsecase {
	return &contentUsecase{repo: repo}
}

// List returns the user's scripts followed by their content items, narrowed by filter.
func (u *contentUsecase) List(ctx context.Context, userID string, filter model.ContentFilter) ([]model.ContentItem, error) {
	if userID == "" {
		return nil, errors.New("userID required")
	}
	if filter.Type == "" {
		filter.Type = model.ContentAll
	}
	if !model.IsKnownContentType(filter.Type) {
		return nil, model.NewValidationError("unsupported content type: " + string(filter.Type))
	}

	scripts, err := u.repo.ListScripts(ctx, userID)
	if err != nil {
		logger.GetLogger().WithField("user_id", userID).WithError(err).Error("Failed to list scripts")
		return nil, err
	}
	items, err := u.repo.ListItems(ctx, userID)
	if err != nil {
		logger.GetLogger().WithField("user_id", userID).WithError(err).Error("Failed to list content items")
		return nil, err
	}

	all := make([]model.ContentItem, 0, len(scripts)+len(items))
	for _, s := range scripts {
		all = append(all, s.AsContentItem())
	}
	all = append(all, items...)

	return FilterContent(all, filter), nil
}

// FilterContent keeps items whose title contains filter.Search (case-insensitive)
// and whose type matches filter.Type. "all" matches every type.
func FilterContent(items []model.ContentItem, filter model.ContentFilter) []model.ContentItem {
	needle := strings.ToLower(filter.Search)
	out := make([]model.ContentItem, 0, len(items))
	for _, it := range items {
		if needle != "" && !strings.Contains(strings.ToLower(it.Title), needle) {
			continue
		}
		if filter.Type != "" && filter.Type != model.ContentAll && it.Type != filter.Type {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (u *contentUsecase) SaveScript(ctx context.Context, userID string, script model.Script) (model.Script, error) {
	if userID == "" {
		return model.Script{}, errors.New("userID required")
	}
	if strings.TrimSpace(script.Title) == "" || strings.TrimSpace(script.Content) == "" {
		return model.Script{}, model.NewValidationError("title and content are required")
	}
	script.UserID = userID
	saved, err := u.repo.SaveScript(ctx, script)
	if err != nil {
		logger.GetLogger().WithField("user_id", userID).WithError(err).Error("Failed to save script")
		return model.Script{}, err
	}
	return saved, nil
}

func (u *contentUsecase) Delete(ctx context.Context, userID string, contentType model.ContentType, id string) error {
	if userID == "" || id == "" {
		return model.NewValidationError("userID and id required")
	}
	switch contentType {
	case model.ContentScript:
		return u.repo.DeleteScript(ctx, userID, id)
	case model.ContentDocument, model.ContentImage, model.ContentVideo, model.ContentOther:
		return u.repo.DeleteItem(ctx, userID, id)
	}
	return model.NewValidationError("unsupported content type: " + string(contentType))
}
