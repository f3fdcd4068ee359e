package service

import (
	"encoding/json"

	marketplacev1 "github.com/Leganyst/homeservice-platform/internal/api/marketplace/v1"
	"github.com/Leganyst/homeservice-platform/internal/model"
)

func mapArea(a *model.ServiceArea) *marketplacev1.ServiceArea {
	if a == nil {
		return nil
	}
	return &marketplacev1.ServiceArea{
		ID:         a.ID,
		City:       a.City,
		District:   a.District,
		PostalCode: a.PostalCode,
	}
}

func mapCategory(c *model.ServiceCategory) *marketplacev1.ServiceCategory {
	if c == nil {
		return nil
	}
	return &marketplacev1.ServiceCategory{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// Хэш пароля наружу не отдаётся.
func mapCustomer(c *model.Customer) *marketplacev1.Customer {
	if c == nil {
		return nil
	}
	return &marketplacev1.Customer{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		Area:             mapArea(c.Area),
		RegistrationDate: c.RegistrationDate,
	}
}

func mapProvider(p *model.Provider, categoryIDs []int64) *marketplacev1.Provider {
	if p == nil {
		return nil
	}
	return &marketplacev1.Provider{
		ID:                 p.ID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		Phone:              p.Phone,
		Address:            p.Address,
		Area:               mapArea(p.Area),
		HourlyRate:         p.HourlyRate,
		AvailabilityStatus: string(p.AvailabilityStatus),
		DateJoined:         p.DateJoined,
		CategoryIDs:        categoryIDs,
	}
}

func mapPayment(p *model.Payment) *marketplacev1.Payment {
	if p == nil {
		return nil
	}
	return &marketplacev1.Payment{
		ID:            p.ID,
		RequestID:     p.RequestID,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		PaymentDate:   p.PaymentDate,
		PaymentStatus: string(p.PaymentStatus),
	}
}

func mapReview(r *model.Review) *marketplacev1.Review {
	if r == nil {
		return nil
	}
	return &marketplacev1.Review{
		ID:         r.ID,
		RequestID:  r.RequestID,
		CustomerID: r.CustomerID,
		ProviderID: r.ProviderID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func mapRequest(r *model.ServiceRequest) *marketplacev1.ServiceRequest {
	if r == nil {
		return nil
	}
	return &marketplacev1.ServiceRequest{
		ID:               r.ID,
		Status:           string(r.Status),
		Address:          r.Address,
		Description:      r.Description,
		Cost:             r.Cost,
		RequestDate:      r.RequestDate,
		CancellationDate: r.CancellationDate,
		Customer:         mapCustomer(r.Customer),
		Provider:         mapProvider(r.Provider, nil),
		Category:         mapCategory(r.Category),
		Area:             mapArea(r.Area),
		Payment:          mapPayment(r.Payment),
		Review:           mapReview(r.Review),
	}
}

func mapEvent(e *model.Event) *marketplacev1.Event {
	out := &marketplacev1.Event{
		ID:        e.ID.String(),
		EventType: string(e.EventType),
		ActorID:   e.ActorID,
		ActorRole: e.ActorRole,
		CreatedAt: e.CreatedAt,
	}
	if e.RequestID != nil {
		out.RequestID = *e.RequestID
	}
	if len(e.Details) > 0 {
		out.Details = json.RawMessage(e.Details)
	}
	return out
}
