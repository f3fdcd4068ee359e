package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/homeservice-platform/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *model.ServiceCategory) error
	GetByID(ctx context.Context, id int64) (*model.ServiceCategory, error)
	List(ctx context.Context) ([]model.ServiceCategory, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.ServiceCategory, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, c *model.ServiceCategory) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "service category")
}

func (r *GormCategoryRepository) GetByID(ctx context.Context, id int64) (*model.ServiceCategory, error) {
	var c model.ServiceCategory
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err, "service category")
	}
	return &c, nil
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]model.ServiceCategory, error) {
	var cats []model.ServiceCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *GormCategoryRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.ServiceCategory, error) {
	return LoadByIDs(ctx, r.db, "id", ids, func(c *model.ServiceCategory) int64 { return c.ID })
}
