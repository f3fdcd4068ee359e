package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store объединяет репозитории над одним соединением или транзакцией.
type Store struct {
	db *gorm.DB

	Areas      AreaRepository
	Categories CategoryRepository
	Customers  CustomerRepository
	Providers  ProviderRepository
	Requests   RequestRepository
	Payments   PaymentRepository
	Reviews    ReviewRepository
	Events     EventRepository
	Views      *RequestViews
}

func NewStore(db *gorm.DB) *Store {
	s := &Store{
		db:         db,
		Areas:      NewGormAreaRepository(db),
		Categories: NewGormCategoryRepository(db),
		Customers:  NewGormCustomerRepository(db),
		Providers:  NewGormProviderRepository(db),
		Requests:   NewGormRequestRepository(db),
		Payments:   NewGormPaymentRepository(db),
		Reviews:    NewGormReviewRepository(db),
		Events:     NewGormEventRepository(db),
	}
	s.Views = NewRequestViews(s)
	return s
}

// DB — исходное соединение (для health-check и тестов).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction выполняет fn в одной транзакции; все репозитории tx работают внутри неё.
// Ошибка fn откатывает транзакцию целиком.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
