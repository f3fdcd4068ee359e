package model

import (
	"fmt"
	"time"
)

// Статус заявки.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted" // устаревшее значение, переходами не порождается
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// Terminal сообщает, что переходов из статуса нет.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

func ParseRequestStatus(s string) (RequestStatus, error) {
	v := RequestStatus(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown request status %q", s)
	}
	return v, nil
}

// service_requests
type ServiceRequest struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID int64  `gorm:"not null;index"`
	ProviderID *int64 `gorm:"index"`
	CategoryID int64  `gorm:"not null;index"`
	AreaID     int64  `gorm:"not null;index"`

	Address     string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	Status RequestStatus `gorm:"type:varchar(32);not null;default:'pending';index"`

	// Согласованная цена; nil — цена ещё не назначена.
	Cost *float64 `gorm:"type:numeric(10,2);check:chk_service_requests_cost,cost >= 0"`

	RequestDate      time.Time  `gorm:"not null;index"`
	CancellationDate *time.Time

	// Навигационные поля; заполняются загрузчиком составного представления.
	Customer *Customer        `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Provider *Provider        `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Category *ServiceCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Area     *ServiceArea     `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Payment  *Payment         `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Review   *Review          `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// AssignedTo сообщает, назначена ли заявка данному исполнителю.
func (r *ServiceRequest) AssignedTo(providerID int64) bool {
	return r.ProviderID != nil && *r.ProviderID == providerID
}
