package model

import "time"

// customers
type Customer struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(50);not null"`
	LastName  string `gorm:"type:varchar(50);not null"`
	Email     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Phone     string `gorm:"type:varchar(30);not null"`
	Address   string `gorm:"type:varchar(255);not null"`

	// Район может быть удалён — тогда ссылка обнуляется.
	AreaID *int64 `gorm:"index"`

	RegistrationDate time.Time `gorm:"not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`

	Area *ServiceArea `gorm:"foreignKey:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// FullName возвращает имя для отображения.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
