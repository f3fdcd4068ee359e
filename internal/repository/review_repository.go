package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
)

type ReviewRepository interface {
	// Создать отзыв; второй отзыв на заявку даёт Conflict.
	Create(ctx context.Context, rv *model.Review) error
	ExistsForRequest(ctx context.Context, requestID int64) (bool, error)
	// Отзывы об исполнителе, новые первыми.
	ListByProvider(ctx context.Context, providerID int64) ([]model.Review, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64]*model.Review, error)
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(ctx context.Context, rv *model.Review) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return marketplace.WithCause(marketplace.Conflict("service request %d already has a review", rv.RequestID), err)
	}
	return translate(err, "review")
}

func (r *GormReviewRepository) ExistsForRequest(ctx context.Context, requestID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("request_id = ?", requestID).
		Count(&n).Error
	return n > 0, err
}

func (r *GormReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64]*model.Review, error) {
	return LoadByIDs(ctx, r.db, "request_id", requestIDs, func(rv *model.Review) int64 { return rv.RequestID })
}
