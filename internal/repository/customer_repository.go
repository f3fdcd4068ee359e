package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Leganyst/homeservice-platform/internal/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.Customer, error)
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	c.Email = NormalizeEmail(c.Email)
	return translate(r.db.WithContext(ctx).Create(c).Error, "customer")
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err, "customer")
	}
	return &c, nil
}

func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "email = ?", NormalizeEmail(email)).Error; err != nil {
		return nil, translate(err, "customer")
	}
	return &c, nil
}

func (r *GormCustomerRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.Customer, error) {
	return LoadByIDs(ctx, r.db, "id", ids, func(c *model.Customer) int64 { return c.ID })
}
