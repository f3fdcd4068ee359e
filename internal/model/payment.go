package model

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash,
		PaymentMethodPaypal, PaymentMethodBankTransfer:
		return true
	}
	return false
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	v := PaymentMethod(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown payment method %q", s)
	}
	return v, nil
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// payments — не более одного платежа на заявку.
type Payment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement"`
	RequestID     int64         `gorm:"not null;uniqueIndex"`
	Amount        float64       `gorm:"type:numeric(10,2);not null;check:chk_payments_amount,amount >= 0"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(32);not null"`
	PaymentDate   time.Time     `gorm:"not null"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(32);not null;default:'pending';index"`
}

func (p *Payment) Completed() bool {
	return p != nil && p.PaymentStatus == PaymentStatusCompleted
}
