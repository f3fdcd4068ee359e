package marketplacev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const MarketplaceService_ServiceName = "marketplace.v1.MarketplaceService"

const (
	MarketplaceService_CreateRequest_FullMethodName       = "/marketplace.v1.MarketplaceService/CreateRequest"
	MarketplaceService_GetRequest_FullMethodName          = "/marketplace.v1.MarketplaceService/GetRequest"
	MarketplaceService_ListRequests_FullMethodName        = "/marketplace.v1.MarketplaceService/ListRequests"
	MarketplaceService_QuoteRequest_FullMethodName        = "/marketplace.v1.MarketplaceService/QuoteRequest"
	MarketplaceService_AcceptRequest_FullMethodName       = "/marketplace.v1.MarketplaceService/AcceptRequest"
	MarketplaceService_CompleteRequest_FullMethodName     = "/marketplace.v1.MarketplaceService/CompleteRequest"
	MarketplaceService_CancelRequest_FullMethodName       = "/marketplace.v1.MarketplaceService/CancelRequest"
	MarketplaceService_PayRequest_FullMethodName          = "/marketplace.v1.MarketplaceService/PayRequest"
	MarketplaceService_RefundPayment_FullMethodName       = "/marketplace.v1.MarketplaceService/RefundPayment"
	MarketplaceService_AddReview_FullMethodName           = "/marketplace.v1.MarketplaceService/AddReview"
	MarketplaceService_ListRequestEvents_FullMethodName   = "/marketplace.v1.MarketplaceService/ListRequestEvents"
	MarketplaceService_CreateArea_FullMethodName          = "/marketplace.v1.MarketplaceService/CreateArea"
	MarketplaceService_ListAreas_FullMethodName           = "/marketplace.v1.MarketplaceService/ListAreas"
	MarketplaceService_CreateCategory_FullMethodName      = "/marketplace.v1.MarketplaceService/CreateCategory"
	MarketplaceService_ListCategories_FullMethodName      = "/marketplace.v1.MarketplaceService/ListCategories"
	MarketplaceService_SearchProviders_FullMethodName     = "/marketplace.v1.MarketplaceService/SearchProviders"
	MarketplaceService_GetProvider_FullMethodName         = "/marketplace.v1.MarketplaceService/GetProvider"
	MarketplaceService_ListProviderReviews_FullMethodName = "/marketplace.v1.MarketplaceService/ListProviderReviews"
)

// MarketplaceServiceServer — серверная часть marketplace.v1.MarketplaceService.
type MarketplaceServiceServer interface {
	CreateRequest(context.Context, *CreateRequestRequest) (*RequestResponse, error)
	GetRequest(context.Context, *RequestIDRequest) (*RequestResponse, error)
	ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error)
	QuoteRequest(context.Context, *QuoteRequestRequest) (*RequestResponse, error)
	AcceptRequest(context.Context, *RequestIDRequest) (*RequestResponse, error)
	CompleteRequest(context.Context, *RequestIDRequest) (*RequestResponse, error)
	CancelRequest(context.Context, *RequestIDRequest) (*RequestResponse, error)
	PayRequest(context.Context, *PayRequestRequest) (*PaymentResponse, error)
	RefundPayment(context.Context, *RequestIDRequest) (*PaymentResponse, error)
	AddReview(context.Context, *AddReviewRequest) (*ReviewResponse, error)
	ListRequestEvents(context.Context, *RequestIDRequest) (*ListEventsResponse, error)
	CreateArea(context.Context, *CreateAreaRequest) (*AreaResponse, error)
	ListAreas(context.Context, *ListAreasRequest) (*ListAreasResponse, error)
	CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	SearchProviders(context.Context, *SearchProvidersRequest) (*ListProvidersResponse, error)
	GetProvider(context.Context, *ProviderIDRequest) (*ProviderResponse, error)
	ListProviderReviews(context.Context, *ProviderIDRequest) (*ListReviewsResponse, error)
}

// UnimplementedMarketplaceServiceServer отвечает Unimplemented на все методы; встраивается в реализации.
type UnimplementedMarketplaceServiceServer struct{}

func (UnimplementedMarketplaceServiceServer) CreateRequest(context.Context, *CreateRequestRequest) (*RequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) GetRequest(context.Context, *RequestIDRequest) (*RequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRequests not implemented")
}

func (UnimplementedMarketplaceServiceServer) QuoteRequest(context.Context, *QuoteRequestRequest) (*RequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QuoteRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) AcceptRequest(context.Context, *RequestIDRequest) (*RequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) CompleteRequest(context.Context, *RequestIDRequest) (*RequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) CancelRequest(context.Context, *RequestIDRequest) (*RequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) PayRequest(context.Context, *PayRequestRequest) (*PaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PayRequest not implemented")
}

func (UnimplementedMarketplaceServiceServer) RefundPayment(context.Context, *RequestIDRequest) (*PaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefundPayment not implemented")
}

func (UnimplementedMarketplaceServiceServer) AddReview(context.Context, *AddReviewRequest) (*ReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddReview not implemented")
}

func (UnimplementedMarketplaceServiceServer) ListRequestEvents(context.Context, *RequestIDRequest) (*ListEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRequestEvents not implemented")
}

func (UnimplementedMarketplaceServiceServer) CreateArea(context.Context, *CreateAreaRequest) (*AreaResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateArea not implemented")
}

func (UnimplementedMarketplaceServiceServer) ListAreas(context.Context, *ListAreasRequest) (*ListAreasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAreas not implemented")
}

func (UnimplementedMarketplaceServiceServer) CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCategory not implemented")
}

func (UnimplementedMarketplaceServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

func (UnimplementedMarketplaceServiceServer) SearchProviders(context.Context, *SearchProvidersRequest) (*ListProvidersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchProviders not implemented")
}

func (UnimplementedMarketplaceServiceServer) GetProvider(context.Context, *ProviderIDRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProvider not implemented")
}

func (UnimplementedMarketplaceServiceServer) ListProviderReviews(context.Context, *ProviderIDRequest) (*ListReviewsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviderReviews not implemented")
}

func RegisterMarketplaceServiceServer(s grpc.ServiceRegistrar, srv MarketplaceServiceServer) {
	s.RegisterService(&MarketplaceService_ServiceDesc, srv)
}

var MarketplaceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MarketplaceService_ServiceName,
	HandlerType: (*MarketplaceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRequest",
			Handler:    unary(MarketplaceService_CreateRequest_FullMethodName, MarketplaceServiceServer.CreateRequest),
		},
		{
			MethodName: "GetRequest",
			Handler:    unary(MarketplaceService_GetRequest_FullMethodName, MarketplaceServiceServer.GetRequest),
		},
		{
			MethodName: "ListRequests",
			Handler:    unary(MarketplaceService_ListRequests_FullMethodName, MarketplaceServiceServer.ListRequests),
		},
		{
			MethodName: "QuoteRequest",
			Handler:    unary(MarketplaceService_QuoteRequest_FullMethodName, MarketplaceServiceServer.QuoteRequest),
		},
		{
			MethodName: "AcceptRequest",
			Handler:    unary(MarketplaceService_AcceptRequest_FullMethodName, MarketplaceServiceServer.AcceptRequest),
		},
		{
			MethodName: "CompleteRequest",
			Handler:    unary(MarketplaceService_CompleteRequest_FullMethodName, MarketplaceServiceServer.CompleteRequest),
		},
		{
			MethodName: "CancelRequest",
			Handler:    unary(MarketplaceService_CancelRequest_FullMethodName, MarketplaceServiceServer.CancelRequest),
		},
		{
			MethodName: "PayRequest",
			Handler:    unary(MarketplaceService_PayRequest_FullMethodName, MarketplaceServiceServer.PayRequest),
		},
		{
			MethodName: "RefundPayment",
			Handler:    unary(MarketplaceService_RefundPayment_FullMethodName, MarketplaceServiceServer.RefundPayment),
		},
		{
			MethodName: "AddReview",
			Handler:    unary(MarketplaceService_AddReview_FullMethodName, MarketplaceServiceServer.AddReview),
		},
		{
			MethodName: "ListRequestEvents",
			Handler:    unary(MarketplaceService_ListRequestEvents_FullMethodName, MarketplaceServiceServer.ListRequestEvents),
		},
		{
			MethodName: "CreateArea",
			Handler:    unary(MarketplaceService_CreateArea_FullMethodName, MarketplaceServiceServer.CreateArea),
		},
		{
			MethodName: "ListAreas",
			Handler:    unary(MarketplaceService_ListAreas_FullMethodName, MarketplaceServiceServer.ListAreas),
		},
		{
			MethodName: "CreateCategory",
			Handler:    unary(MarketplaceService_CreateCategory_FullMethodName, MarketplaceServiceServer.CreateCategory),
		},
		{
			MethodName: "ListCategories",
			Handler:    unary(MarketplaceService_ListCategories_FullMethodName, MarketplaceServiceServer.ListCategories),
		},
		{
			MethodName: "SearchProviders",
			Handler:    unary(MarketplaceService_SearchProviders_FullMethodName, MarketplaceServiceServer.SearchProviders),
		},
		{
			MethodName: "GetProvider",
			Handler:    unary(MarketplaceService_GetProvider_FullMethodName, MarketplaceServiceServer.GetProvider),
		},
		{
			MethodName: "ListProviderReviews",
			Handler:    unary(MarketplaceService_ListProviderReviews_FullMethodName, MarketplaceServiceServer.ListProviderReviews),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// MarketplaceServiceClient — клиент marketplace.v1.MarketplaceService; все вызовы идут с JSON-кодеком.
type MarketplaceServiceClient interface {
	CreateRequest(ctx context.Context, in *CreateRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	GetRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	ListRequests(ctx context.Context, in *ListRequestsRequest, opts ...grpc.CallOption) (*ListRequestsResponse, error)
	QuoteRequest(ctx context.Context, in *QuoteRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	AcceptRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	CompleteRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	CancelRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	PayRequest(ctx context.Context, in *PayRequestRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	RefundPayment(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	AddReview(ctx context.Context, in *AddReviewRequest, opts ...grpc.CallOption) (*ReviewResponse, error)
	ListRequestEvents(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	CreateArea(ctx context.Context, in *CreateAreaRequest, opts ...grpc.CallOption) (*AreaResponse, error)
	ListAreas(ctx context.Context, in *ListAreasRequest, opts ...grpc.CallOption) (*ListAreasResponse, error)
	CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	SearchProviders(ctx context.Context, in *SearchProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error)
	GetProvider(ctx context.Context, in *ProviderIDRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
	ListProviderReviews(ctx context.Context, in *ProviderIDRequest, opts ...grpc.CallOption) (*ListReviewsResponse, error)
}

type marketplaceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketplaceServiceClient(cc grpc.ClientConnInterface) MarketplaceServiceClient {
	return &marketplaceServiceClient{cc: cc}
}

func (c *marketplaceServiceClient) CreateRequest(ctx context.Context, in *CreateRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RequestResponse](ctx, c.cc, MarketplaceService_CreateRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) GetRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RequestResponse](ctx, c.cc, MarketplaceService_GetRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) ListRequests(ctx context.Context, in *ListRequestsRequest, opts ...grpc.CallOption) (*ListRequestsResponse, error) {
	return invoke[ListRequestsResponse](ctx, c.cc, MarketplaceService_ListRequests_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) QuoteRequest(ctx context.Context, in *QuoteRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RequestResponse](ctx, c.cc, MarketplaceService_QuoteRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) AcceptRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RequestResponse](ctx, c.cc, MarketplaceService_AcceptRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) CompleteRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RequestResponse](ctx, c.cc, MarketplaceService_CompleteRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) CancelRequest(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RequestResponse](ctx, c.cc, MarketplaceService_CancelRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) PayRequest(ctx context.Context, in *PayRequestRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	return invoke[PaymentResponse](ctx, c.cc, MarketplaceService_PayRequest_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) RefundPayment(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	return invoke[PaymentResponse](ctx, c.cc, MarketplaceService_RefundPayment_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) AddReview(ctx context.Context, in *AddReviewRequest, opts ...grpc.CallOption) (*ReviewResponse, error) {
	return invoke[ReviewResponse](ctx, c.cc, MarketplaceService_AddReview_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) ListRequestEvents(ctx context.Context, in *RequestIDRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	return invoke[ListEventsResponse](ctx, c.cc, MarketplaceService_ListRequestEvents_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) CreateArea(ctx context.Context, in *CreateAreaRequest, opts ...grpc.CallOption) (*AreaResponse, error) {
	return invoke[AreaResponse](ctx, c.cc, MarketplaceService_CreateArea_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) ListAreas(ctx context.Context, in *ListAreasRequest, opts ...grpc.CallOption) (*ListAreasResponse, error) {
	return invoke[ListAreasResponse](ctx, c.cc, MarketplaceService_ListAreas_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CategoryResponse](ctx, c.cc, MarketplaceService_CreateCategory_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, MarketplaceService_ListCategories_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) SearchProviders(ctx context.Context, in *SearchProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error) {
	return invoke[ListProvidersResponse](ctx, c.cc, MarketplaceService_SearchProviders_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) GetProvider(ctx context.Context, in *ProviderIDRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	return invoke[ProviderResponse](ctx, c.cc, MarketplaceService_GetProvider_FullMethodName, in, opts)
}

func (c *marketplaceServiceClient) ListProviderReviews(ctx context.Context, in *ProviderIDRequest, opts ...grpc.CallOption) (*ListReviewsResponse, error) {
	return invoke[ListReviewsResponse](ctx, c.cc, MarketplaceService_ListProviderReviews_FullMethodName, in, opts)
}
