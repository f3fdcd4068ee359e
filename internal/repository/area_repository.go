package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/homeservice-platform/internal/model"
)

type AreaRepository interface {
	// Создать район; тройка город/район/индекс уникальна.
	Create(ctx context.Context, a *model.ServiceArea) error
	GetByID(ctx context.Context, id int64) (*model.ServiceArea, error)
	// Все районы, по городу и району.
	List(ctx context.Context) ([]model.ServiceArea, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.ServiceArea, error)
}

type GormAreaRepository struct {
	db *gorm.DB
}

func NewGormAreaRepository(db *gorm.DB) *GormAreaRepository {
	return &GormAreaRepository{db: db}
}

func (r *GormAreaRepository) Create(ctx context.Context, a *model.ServiceArea) error {
	return translate(r.db.WithContext(ctx).Create(a).Error, "service area")
}

func (r *GormAreaRepository) GetByID(ctx context.Context, id int64) (*model.ServiceArea, error) {
	var a model.ServiceArea
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err, "service area")
	}
	return &a, nil
}

func (r *GormAreaRepository) List(ctx context.Context) ([]model.ServiceArea, error) {
	var areas []model.ServiceArea
	err := r.db.WithContext(ctx).
		Order("city ASC").
		Order("district ASC").
		Order("postal_code ASC").
		Find(&areas).Error
	return areas, err
}

func (r *GormAreaRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.ServiceArea, error) {
	return LoadByIDs(ctx, r.db, "id", ids, func(a *model.ServiceArea) int64 { return a.ID })
}
