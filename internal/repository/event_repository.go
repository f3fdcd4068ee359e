package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
)

type EventRepository interface {
	// Записать событие аудита; details сериализуется в JSON.
	Append(ctx context.Context, eventType model.EventType, requestID int64, actor marketplace.Actor, details map[string]any) error
	// События по заявке в порядке записи.
	ListByRequest(ctx context.Context, requestID int64) ([]model.Event, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Append(
	ctx context.Context,
	eventType model.EventType,
	requestID int64,
	actor marketplace.Actor,
	details map[string]any,
) error {
	var raw datatypes.JSON
	if len(details) > 0 {
		b, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshal event details: %w", err)
		}
		raw = datatypes.JSON(b)
	}

	ev := model.Event{
		EventType: eventType,
		RequestID: &requestID,
		ActorID:   actor.UserID,
		ActorRole: string(actor.Role),
		Details:   raw,
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(&ev).Error, "event")
}

func (r *GormEventRepository) ListByRequest(ctx context.Context, requestID int64) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&events).Error
	return events, err
}
