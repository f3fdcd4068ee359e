package model

import (
	"fmt"
	"time"
)

// Доступность исполнителя.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// ParseAvailabilityStatus разбирает строковое значение; пустая строка — available.
func ParseAvailabilityStatus(s string) (AvailabilityStatus, error) {
	if s == "" {
		return AvailabilityAvailable, nil
	}
	v := AvailabilityStatus(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown availability status %q", s)
	}
	return v, nil
}

// Provider — исполнитель услуг (мастер, электрик и т.п.).
type Provider struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(50);not null"`
	LastName  string `gorm:"type:varchar(50);not null"`
	Email     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Phone     string `gorm:"type:varchar(30);not null"`
	Address   string `gorm:"type:varchar(255);not null"`

	AreaID *int64 `gorm:"index"`

	// Ставка в час, numeric(10,2), не отрицательная.
	HourlyRate float64 `gorm:"type:numeric(10,2);not null;check:chk_providers_hourly_rate,hourly_rate >= 0"`

	AvailabilityStatus AvailabilityStatus `gorm:"type:varchar(32);not null;default:'available';index"`

	DateJoined   time.Time `gorm:"not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	Area *ServiceArea `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (p *Provider) FullName() string {
	return p.FirstName + " " + p.LastName
}

// provider_categories — join-таблица многие-ко-многим.
type ProviderCategory struct {
	ProviderID int64 `gorm:"primaryKey"`
	CategoryID int64 `gorm:"primaryKey;index"`

	Provider *Provider        `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Category *ServiceCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
