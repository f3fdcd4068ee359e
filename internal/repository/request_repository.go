package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
)

type RequestRepository interface {
	// Создать заявку.
	Create(ctx context.Context, req *model.ServiceRequest) error
	// Получить заявку по ID без связей.
	GetByID(ctx context.Context, id int64) (*model.ServiceRequest, error)
	// Получить заявку с блокировкой строки (SELECT ... FOR UPDATE); только внутри транзакции.
	GetForUpdate(ctx context.Context, id int64) (*model.ServiceRequest, error)
	// Перевести статус from -> to; если статус уже изменился, возвращает Conflict.
	CompareAndSwapStatus(ctx context.Context, id int64, from, to model.RequestStatus, cancelledAt *time.Time) error
	// Назначить цену, пока статус равен expected.
	UpdateCost(ctx context.Context, id int64, expected model.RequestStatus, cost float64) error
	// Заявки заказчика или исполнителя, новые первыми, с пагинацией.
	ListByParticipant(ctx context.Context, role marketplace.Role, userID int64, limit, offset int) ([]model.ServiceRequest, int64, error)
}

type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) Create(ctx context.Context, req *model.ServiceRequest) error {
	if req.Status == "" {
		req.Status = model.RequestStatusPending
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error, "service request")
}

func (r *GormRequestRepository) GetByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	var req model.ServiceRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, translate(err, "service request")
	}
	return &req, nil
}

func (r *GormRequestRepository) GetForUpdate(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	var req model.ServiceRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "service request")
	}
	return &req, nil
}

func (r *GormRequestRepository) CompareAndSwapStatus(
	ctx context.Context,
	id int64,
	from, to model.RequestStatus,
	cancelledAt *time.Time,
) error {
	update := map[string]any{
		"status": to,
	}
	if cancelledAt != nil {
		update["cancellation_date"] = *cancelledAt
	}
	res := r.db.WithContext(ctx).
		Model(&model.ServiceRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(update)
	if res.Error != nil {
		return translate(res.Error, "service request")
	}
	if res.RowsAffected == 0 {
		return marketplace.StaleWrite("service request %d was modified concurrently", id)
	}
	return nil
}

func (r *GormRequestRepository) UpdateCost(
	ctx context.Context,
	id int64,
	expected model.RequestStatus,
	cost float64,
) error {
	res := r.db.WithContext(ctx).
		Model(&model.ServiceRequest{}).
		Where("id = ? AND status = ?", id, expected).
		Update("cost", cost)
	if res.Error != nil {
		return translate(res.Error, "service request")
	}
	if res.RowsAffected == 0 {
		return marketplace.StaleWrite("service request %d was modified concurrently", id)
	}
	return nil
}

func (r *GormRequestRepository) ListByParticipant(
	ctx context.Context,
	role marketplace.Role,
	userID int64,
	limit, offset int,
) ([]model.ServiceRequest, int64, error) {
	var (
		reqs  []model.ServiceRequest
		total int64
	)

	column := "customer_id"
	if role == marketplace.RoleProvider {
		column = "provider_id"
	}

	q := r.db.WithContext(ctx).
		Model(&model.ServiceRequest{}).
		Where(column+" = ?", userID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.
		Order("request_date DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}
