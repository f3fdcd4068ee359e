package repository

import (
	"context"
	"fmt"

	"github.com/Leganyst/homeservice-platform/internal/model"
)

// RequestViews собирает составное представление заявок:
// заказчик, исполнитель, категория, район, платёж и отзыв.
// Один запрос на связь независимо от числа заявок, плюс один на районы участников.
type RequestViews struct {
	store *Store
}

func NewRequestViews(store *Store) *RequestViews {
	return &RequestViews{store: store}
}

// Assemble заполняет навигационные поля у копий reqs и возвращает их в том же порядке.
// Ничего не пишет в БД.
func (v *RequestViews) Assemble(ctx context.Context, reqs []model.ServiceRequest) ([]model.ServiceRequest, error) {
	out := make([]model.ServiceRequest, len(reqs))
	copy(out, reqs)
	if len(out) == 0 {
		return out, nil
	}

	var (
		customerIDs = make([]int64, 0, len(out))
		providerIDs = make([]int64, 0, len(out))
		categoryIDs = make([]int64, 0, len(out))
		areaIDs     = make([]int64, 0, len(out))
		requestIDs  = make([]int64, 0, len(out))
	)
	for _, r := range out {
		customerIDs = append(customerIDs, r.CustomerID)
		if r.ProviderID != nil {
			providerIDs = append(providerIDs, *r.ProviderID)
		}
		categoryIDs = append(categoryIDs, r.CategoryID)
		areaIDs = append(areaIDs, r.AreaID)
		requestIDs = append(requestIDs, r.ID)
	}

	customers, err := v.store.Customers.ListByIDs(ctx, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	providers, err := v.store.Providers.ListByIDs(ctx, providerIDs)
	if err != nil {
		return nil, fmt.Errorf("load providers: %w", err)
	}
	categories, err := v.store.Categories.ListByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	payments, err := v.store.Payments.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	reviews, err := v.store.Reviews.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	// районы заявок и участников одним запросом
	for _, c := range customers {
		if c.AreaID != nil {
			areaIDs = append(areaIDs, *c.AreaID)
		}
	}
	for _, p := range providers {
		if p.AreaID != nil {
			areaIDs = append(areaIDs, *p.AreaID)
		}
	}
	areas, err := v.store.Areas.ListByIDs(ctx, areaIDs)
	if err != nil {
		return nil, fmt.Errorf("load areas: %w", err)
	}
	for _, c := range customers {
		if c.AreaID != nil {
			c.Area = areas[*c.AreaID]
		}
	}
	for _, p := range providers {
		if p.AreaID != nil {
			p.Area = areas[*p.AreaID]
		}
	}

	for i := range out {
		r := &out[i]
		r.Customer = customers[r.CustomerID]
		r.Provider = nil
		if r.ProviderID != nil {
			r.Provider = providers[*r.ProviderID]
		}
		r.Category = categories[r.CategoryID]
		r.Area = areas[r.AreaID]
		r.Payment = payments[r.ID]
		r.Review = reviews[r.ID]
	}
	return out, nil
}

// One собирает представление одной заявки.
func (v *RequestViews) One(ctx context.Context, req *model.ServiceRequest) (*model.ServiceRequest, error) {
	views, err := v.Assemble(ctx, []model.ServiceRequest{*req})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
