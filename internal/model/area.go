package model

// service_areas — город/район/индекс, уникальны в совокупности.
type ServiceArea struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	City       string `gorm:"type:varchar(100);not null;uniqueIndex:uk_area_location"`
	District   string `gorm:"type:varchar(100);not null;uniqueIndex:uk_area_location"`
	PostalCode string `gorm:"type:varchar(20);not null;uniqueIndex:uk_area_location"`
}
