package persistence

import (
	"context"

	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepositoryGorm implements repository.IContent with gorm (MySQL).
type ContentRepositoryGorm struct {
	db *gorm.DB
}

func NewContentRepositoryGorm(db *gorm.DB) repository.IContent {
	return &ContentRepositoryGorm{db: db}
}

func (r *ContentRepositoryGorm) ListScripts(ctx context.Context, userID string) ([]model.Script, error) {
	list := make([]model.Script, 0)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	if err != nil {
		logger.GetLogger().WithField("vendor", "mysql").WithError(err).Error("query scripts failed")
		return nil, err
	}
	return list, nil
}

func (r *ContentRepositoryGorm) ListItems(ctx context.Context, userID string) ([]model.ContentItem, error) {
	list := make([]model.ContentItem, 0)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	if err != nil {
		logger.GetLogger().WithField("vendor", "mysql").WithError(err).Error("query content items failed")
		return nil, err
	}
	return list, nil
}

func (r *ContentRepositoryGorm) SaveScript(ctx context.Context, script model.Script) (model.Script, error) {
	if script.ID == "" {
		script.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&script).Error; err != nil {
		logger.GetLogger().WithField("vendor", "mysql").WithField("user_id", script.UserID).WithError(err).Error("insert script failed")
		return model.Script{}, err
	}
	return script, nil
}

func (r *ContentRepositoryGorm) DeleteScript(ctx context.Context, userID, id string) error {
	return r.deleteOne(ctx, &model.Script{}, userID, id)
}

func (r *ContentRepositoryGorm) DeleteItem(ctx context.Context, userID, id string) error {
	return r.deleteOne(ctx, &model.ContentItem{}, userID, id)
}

func (r *ContentRepositoryGorm) deleteOne(ctx context.Context, value interface{}, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
