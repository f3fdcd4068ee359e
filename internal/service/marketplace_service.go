package service

import (
	"context"
	"strings"

	marketplacev1 "github.com/Leganyst/homeservice-platform/internal/api/marketplace/v1"
	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/lifecycle"
	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

// MarketplaceService — заявки, оплата, отзывы и справочники.
// Бизнес-правила живут в lifecycle.Engine, здесь только разбор запроса и маппинг ответа.
type MarketplaceService struct {
	marketplacev1.UnimplementedMarketplaceServiceServer

	engine *lifecycle.Engine
	store  *repository.Store
}

func NewMarketplaceService(engine *lifecycle.Engine, store *repository.Store) *MarketplaceService {
	return &MarketplaceService{engine: engine, store: store}
}

// actor возвращает участника из контекста; пустой участник отклоняется движком.
func actor(ctx context.Context) marketplace.Actor {
	a, _ := auth.ActorFromContext(ctx)
	return a
}

func requireRequestID(id int64) error {
	if id <= 0 {
		return marketplace.Invalid("request_id", "is required")
	}
	return nil
}

func requestResponse(view *model.ServiceRequest, err error) (*marketplacev1.RequestResponse, error) {
	if err != nil {
		return nil, err
	}
	return &marketplacev1.RequestResponse{Request: mapRequest(view)}, nil
}

func (s *MarketplaceService) CreateRequest(ctx context.Context, req *marketplacev1.CreateRequestRequest) (*marketplacev1.RequestResponse, error) {
	if req.CategoryID <= 0 {
		return nil, marketplace.Invalid("category_id", "is required")
	}
	if req.AreaID <= 0 {
		return nil, marketplace.Invalid("area_id", "is required")
	}
	return requestResponse(s.engine.CreateRequest(ctx, actor(ctx), lifecycle.CreateRequestInput{
		ProviderID:  req.ProviderID,
		CategoryID:  req.CategoryID,
		AreaID:      req.AreaID,
		Address:     req.Address,
		Description: req.Description,
		Cost:        req.Cost,
	}))
}

func (s *MarketplaceService) GetRequest(ctx context.Context, req *marketplacev1.RequestIDRequest) (*marketplacev1.RequestResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	return requestResponse(s.engine.GetRequest(ctx, req.RequestID, actor(ctx)))
}

func (s *MarketplaceService) ListRequests(ctx context.Context, req *marketplacev1.ListRequestsRequest) (*marketplacev1.ListRequestsResponse, error) {
	page, err := s.engine.ListRequests(ctx, actor(ctx), req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	out := &marketplacev1.ListRequestsResponse{
		Requests: make([]*marketplacev1.ServiceRequest, 0, len(page.Items)),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		HasNext:  page.HasNext,
	}
	for i := range page.Items {
		out.Requests = append(out.Requests, mapRequest(&page.Items[i]))
	}
	return out, nil
}

func (s *MarketplaceService) QuoteRequest(ctx context.Context, req *marketplacev1.QuoteRequestRequest) (*marketplacev1.RequestResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	return requestResponse(s.engine.QuoteRequest(ctx, req.RequestID, actor(ctx), req.Cost))
}

func (s *MarketplaceService) AcceptRequest(ctx context.Context, req *marketplacev1.RequestIDRequest) (*marketplacev1.RequestResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	return requestResponse(s.engine.AcceptRequest(ctx, req.RequestID, actor(ctx)))
}

func (s *MarketplaceService) CompleteRequest(ctx context.Context, req *marketplacev1.RequestIDRequest) (*marketplacev1.RequestResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	return requestResponse(s.engine.CompleteRequest(ctx, req.RequestID, actor(ctx)))
}

func (s *MarketplaceService) CancelRequest(ctx context.Context, req *marketplacev1.RequestIDRequest) (*marketplacev1.RequestResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	return requestResponse(s.engine.CancelRequest(ctx, req.RequestID, actor(ctx)))
}

func (s *MarketplaceService) PayRequest(ctx context.Context, req *marketplacev1.PayRequestRequest) (*marketplacev1.PaymentResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	p, err := s.engine.PayRequest(ctx, req.RequestID, actor(ctx), req.PaymentMethod, req.Amount)
	if err != nil {
		return nil, err
	}
	return &marketplacev1.PaymentResponse{Payment: mapPayment(p)}, nil
}

func (s *MarketplaceService) RefundPayment(ctx context.Context, req *marketplacev1.RequestIDRequest) (*marketplacev1.PaymentResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	p, err := s.engine.RefundPayment(ctx, req.RequestID, actor(ctx))
	if err != nil {
		return nil, err
	}
	return &marketplacev1.PaymentResponse{Payment: mapPayment(p)}, nil
}

func (s *MarketplaceService) AddReview(ctx context.Context, req *marketplacev1.AddReviewRequest) (*marketplacev1.ReviewResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	rv, err := s.engine.AddReview(ctx, req.RequestID, actor(ctx), req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}
	return &marketplacev1.ReviewResponse{Review: mapReview(rv)}, nil
}

func (s *MarketplaceService) ListRequestEvents(ctx context.Context, req *marketplacev1.RequestIDRequest) (*marketplacev1.ListEventsResponse, error) {
	if err := requireRequestID(req.RequestID); err != nil {
		return nil, err
	}
	events, err := s.engine.Events(ctx, req.RequestID, actor(ctx))
	if err != nil {
		return nil, err
	}
	out := &marketplacev1.ListEventsResponse{Events: make([]*marketplacev1.Event, 0, len(events))}
	for i := range events {
		out.Events = append(out.Events, mapEvent(&events[i]))
	}
	return out, nil
}

// --- справочники ---

// CreateArea доступна любому вошедшему участнику.
func (s *MarketplaceService) CreateArea(ctx context.Context, req *marketplacev1.CreateAreaRequest) (*marketplacev1.AreaResponse, error) {
	if _, ok := auth.ActorFromContext(ctx); !ok {
		return nil, auth.ErrMissingCredentials
	}
	area := model.ServiceArea{
		City:       strings.TrimSpace(req.City),
		District:   strings.TrimSpace(req.District),
		PostalCode: strings.TrimSpace(req.PostalCode),
	}
	switch {
	case area.City == "":
		return nil, marketplace.Invalid("city", "is required")
	case area.District == "":
		return nil, marketplace.Invalid("district", "is required")
	case area.PostalCode == "":
		return nil, marketplace.Invalid("postal_code", "is required")
	}
	if err := s.store.Areas.Create(ctx, &area); err != nil {
		return nil, err
	}
	return &marketplacev1.AreaResponse{Area: mapArea(&area)}, nil
}

func (s *MarketplaceService) ListAreas(ctx context.Context, _ *marketplacev1.ListAreasRequest) (*marketplacev1.ListAreasResponse, error) {
	areas, err := s.store.Areas.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &marketplacev1.ListAreasResponse{Areas: make([]*marketplacev1.ServiceArea, 0, len(areas))}
	for i := range areas {
		out.Areas = append(out.Areas, mapArea(&areas[i]))
	}
	return out, nil
}

// CreateCategory доступна любому вошедшему участнику.
func (s *MarketplaceService) CreateCategory(ctx context.Context, req *marketplacev1.CreateCategoryRequest) (*marketplacev1.CategoryResponse, error) {
	if _, ok := auth.ActorFromContext(ctx); !ok {
		return nil, auth.ErrMissingCredentials
	}
	c := model.ServiceCategory{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if c.Name == "" {
		return nil, marketplace.Invalid("name", "is required")
	}
	if err := s.store.Categories.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &marketplacev1.CategoryResponse{Category: mapCategory(&c)}, nil
}

func (s *MarketplaceService) ListCategories(ctx context.Context, _ *marketplacev1.ListCategoriesRequest) (*marketplacev1.ListCategoriesResponse, error) {
	cats, err := s.store.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &marketplacev1.ListCategoriesResponse{Categories: make([]*marketplacev1.ServiceCategory, 0, len(cats))}
	for i := range cats {
		out.Categories = append(out.Categories, mapCategory(&cats[i]))
	}
	return out, nil
}

// SearchProviders ищет исполнителей по району и/или категории: сначала доступные,
// затем дешевле, затем по фамилии.
func (s *MarketplaceService) SearchProviders(ctx context.Context, req *marketplacev1.SearchProvidersRequest) (*marketplacev1.ListProvidersResponse, error) {
	providers, err := s.store.Providers.ListFiltered(ctx, repository.ProviderFilter{
		AreaID:     req.AreaID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	areaIDs := make([]int64, 0, len(providers))
	for _, p := range providers {
		if p.AreaID != nil {
			areaIDs = append(areaIDs, *p.AreaID)
		}
	}
	areas, err := s.store.Areas.ListByIDs(ctx, areaIDs)
	if err != nil {
		return nil, err
	}

	out := &marketplacev1.ListProvidersResponse{Providers: make([]*marketplacev1.Provider, 0, len(providers))}
	for i := range providers {
		p := &providers[i]
		if p.AreaID != nil {
			p.Area = areas[*p.AreaID]
		}
		out.Providers = append(out.Providers, mapProvider(p, nil))
	}
	return out, nil
}

func (s *MarketplaceService) GetProvider(ctx context.Context, req *marketplacev1.ProviderIDRequest) (*marketplacev1.ProviderResponse, error) {
	if req.ProviderID <= 0 {
		return nil, marketplace.Invalid("provider_id", "is required")
	}
	p, err := s.loadProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	ids, err := s.store.Providers.CategoryIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &marketplacev1.ProviderResponse{Provider: mapProvider(p, ids)}, nil
}

func (s *MarketplaceService) loadProvider(ctx context.Context, id int64) (*model.Provider, error) {
	p, err := s.store.Providers.GetByID(ctx, id)
	if err != nil {
		if marketplace.IsNotFound(err) {
			return nil, marketplace.WithCause(marketplace.NotFound("provider %d not found", id), err)
		}
		return nil, err
	}
	if p.AreaID != nil {
		area, err := s.store.Areas.GetByID(ctx, *p.AreaID)
		if err != nil && !marketplace.IsNotFound(err) {
			return nil, err
		}
		p.Area = area
	}
	return p, nil
}

// ListProviderReviews возвращает отзывы об исполнителе и среднюю оценку (0 без отзывов).
func (s *MarketplaceService) ListProviderReviews(ctx context.Context, req *marketplacev1.ProviderIDRequest) (*marketplacev1.ListReviewsResponse, error) {
	if req.ProviderID <= 0 {
		return nil, marketplace.Invalid("provider_id", "is required")
	}
	if _, err := s.loadProvider(ctx, req.ProviderID); err != nil {
		return nil, err
	}
	reviews, err := s.store.Reviews.ListByProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	out := &marketplacev1.ListReviewsResponse{Reviews: make([]*marketplacev1.Review, 0, len(reviews))}
	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
		out.Reviews = append(out.Reviews, mapReview(&reviews[i]))
	}
	if len(reviews) > 0 {
		out.AverageRating = marketplace.RoundCents(float64(sum) / float64(len(reviews)))
	}
	return out, nil
}
