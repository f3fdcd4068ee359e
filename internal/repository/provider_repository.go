package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/homeservice-platform/internal/model"
)

// ProviderFilter — условия поиска исполнителей; nil означает «без фильтра».
type ProviderFilter struct {
	AreaID     *int64
	CategoryID *int64
}

type ProviderRepository interface {
	// Создать исполнителя и привязать его к категориям.
	Create(ctx context.Context, p *model.Provider, categoryIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.Provider, error)
	GetByEmail(ctx context.Context, email string) (*model.Provider, error)
	// Поиск: сначала доступные, затем по ставке и фамилии.
	ListFiltered(ctx context.Context, f ProviderFilter) ([]model.Provider, error)
	CategoryIDs(ctx context.Context, providerID int64) ([]int64, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.Provider, error)
}

type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

func (r *GormProviderRepository) Create(ctx context.Context, p *model.Provider, categoryIDs []int64) error {
	p.Email = NormalizeEmail(p.Email)
	if p.AvailabilityStatus == "" {
		p.AvailabilityStatus = model.AvailabilityAvailable
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return translate(err, "provider")
		}
		ids := uniqueIDs(categoryIDs)
		if len(ids) == 0 {
			return nil
		}
		links := make([]model.ProviderCategory, 0, len(ids))
		for _, id := range ids {
			links = append(links, model.ProviderCategory{ProviderID: p.ID, CategoryID: id})
		}
		if err := tx.Create(&links).Error; err != nil {
			return translate(err, "service category")
		}
		return nil
	})
	return err
}

func (r *GormProviderRepository) GetByID(ctx context.Context, id int64) (*model.Provider, error) {
	var p model.Provider
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, "provider")
	}
	return &p, nil
}

func (r *GormProviderRepository) GetByEmail(ctx context.Context, email string) (*model.Provider, error) {
	var p model.Provider
	if err := r.db.WithContext(ctx).First(&p, "email = ?", NormalizeEmail(email)).Error; err != nil {
		return nil, translate(err, "provider")
	}
	return &p, nil
}

func (r *GormProviderRepository) ListFiltered(ctx context.Context, f ProviderFilter) ([]model.Provider, error) {
	q := r.db.WithContext(ctx).Model(&model.Provider{})
	if f.AreaID != nil {
		q = q.Where("area_id = ?", *f.AreaID)
	}
	if f.CategoryID != nil {
		sub := r.db.Model(&model.ProviderCategory{}).
			Select("provider_id").
			Where("category_id = ?", *f.CategoryID)
		q = q.Where("id IN (?)", sub)
	}

	var providers []model.Provider
	err := q.
		Order("CASE WHEN availability_status = '"+string(model.AvailabilityAvailable)+"' THEN 0 ELSE 1 END").
		Order("hourly_rate ASC").
		Order("last_name ASC").
		Order("id ASC").
		Find(&providers).Error
	return providers, err
}

func (r *GormProviderRepository) CategoryIDs(ctx context.Context, providerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.ProviderCategory{}).
		Where("provider_id = ?", providerID).
		Order("category_id ASC").
		Pluck("category_id", &ids).Error
	return ids, err
}

func (r *GormProviderRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.Provider, error) {
	return LoadByIDs(ctx, r.db, "id", ids, func(p *model.Provider) int64 { return p.ID })
}
