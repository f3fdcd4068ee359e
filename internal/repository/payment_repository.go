package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
)

type PaymentRepository interface {
	// Платёж по заявке; nil, nil если его нет.
	GetByRequestID(ctx context.Context, requestID int64) (*model.Payment, error)
	// Вставить новый платёж или перезаписать существующий (дата платежа сохраняется).
	Upsert(ctx context.Context, p *model.Payment) error
	// Перевести статус платежа from -> to.
	CompareAndSwapStatus(ctx context.Context, requestID int64, from, to model.PaymentStatus) error
	ListByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64]*model.Payment, error)
}

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) GetByRequestID(ctx context.Context, requestID int64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).First(&p, "request_id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert ищет платёж по request_id. Найденный обновляется по сумме, способу и статусу,
// иначе создаётся новый; при гонке на вставке уникальный индекс даёт Conflict.
func (r *GormPaymentRepository) Upsert(ctx context.Context, p *model.Payment) error {
	existing, err := r.GetByRequestID(ctx, p.RequestID)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return marketplace.WithCause(marketplace.Conflict("service request %d is already paid", p.RequestID), err)
			}
			return translate(err, "payment")
		}
		return nil
	}

	update := map[string]any{
		"amount":         p.Amount,
		"payment_method": p.PaymentMethod,
		"payment_status": p.PaymentStatus,
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", existing.ID).
		Updates(update).Error; err != nil {
		return translate(err, "payment")
	}

	p.ID = existing.ID
	p.PaymentDate = existing.PaymentDate
	return nil
}

func (r *GormPaymentRepository) CompareAndSwapStatus(
	ctx context.Context,
	requestID int64,
	from, to model.PaymentStatus,
) error {
	res := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("request_id = ? AND payment_status = ?", requestID, from).
		Update("payment_status", to)
	if res.Error != nil {
		return translate(res.Error, "payment")
	}
	if res.RowsAffected == 0 {
		return marketplace.StaleWrite("payment for service request %d was modified concurrently", requestID)
	}
	return nil
}

func (r *GormPaymentRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64]*model.Payment, error) {
	return LoadByIDs(ctx, r.db, "request_id", requestIDs, func(p *model.Payment) int64 { return p.RequestID })
}
