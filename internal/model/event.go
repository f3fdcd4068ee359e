package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Тип события аудита.
type EventType string

const (
	EventTypeRequestCreated   EventType = "request_created"
	EventTypeRequestQuoted    EventType = "request_quoted"
	EventTypeRequestAccepted  EventType = "request_accepted"
	EventTypeRequestCompleted EventType = "request_completed"
	EventTypeRequestCancelled EventType = "request_cancelled"
	EventTypePaymentCompleted EventType = "payment_completed"
	EventTypePaymentRefunded  EventType = "payment_refunded"
	EventTypeReviewAdded      EventType = "review_added"
)

// events — журнал изменений жизненного цикла заявок.
// Пишется в той же транзакции, что и само изменение.
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	RequestID *int64 `gorm:"index"`
	ActorID   int64  `gorm:"not null"`
	ActorRole string `gorm:"type:varchar(32);not null"`

	Details datatypes.JSON `gorm:"type:jsonb"`

	Request *ServiceRequest `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// BeforeCreate выдаёт идентификатор на стороне приложения:
// gen_random_uuid() есть не во всех диалектах. UUIDv7 растёт монотонно,
// поэтому id упорядочивает события с одинаковым created_at.
func (e *Event) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		e.ID = id
	}
	return nil
}
