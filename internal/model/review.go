package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// reviews — один отзыв на заявку. CustomerID и ProviderID копируются из заявки.
type Review struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	RequestID  int64     `gorm:"not null;uniqueIndex:uk_review_request"`
	CustomerID int64     `gorm:"not null;index"`
	ProviderID int64     `gorm:"not null;index"`
	Rating     int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Provider *Provider `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
