package service

import (
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	marketplacev1 "github.com/Leganyst/homeservice-platform/internal/api/marketplace/v1"
	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/config"
	"github.com/Leganyst/homeservice-platform/internal/lifecycle"
	"github.com/Leganyst/homeservice-platform/internal/metrics"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

// PublicMethods не требуют токена.
var PublicMethods = []string{
	marketplacev1.IdentityService_RegisterCustomer_FullMethodName,
	marketplacev1.IdentityService_RegisterProvider_FullMethodName,
	marketplacev1.IdentityService_Login_FullMethodName,
	marketplacev1.MarketplaceService_ListAreas_FullMethodName,
	marketplacev1.MarketplaceService_ListCategories_FullMethodName,
	marketplacev1.MarketplaceService_SearchProviders_FullMethodName,
	marketplacev1.MarketplaceService_GetProvider_FullMethodName,
	marketplacev1.MarketplaceService_ListProviderReviews_FullMethodName,
	healthpb.Health_Check_FullMethodName,
}

// Deps собирает зависимости gRPC-сервера.
type Deps struct {
	Engine    *lifecycle.Engine
	Store     *repository.Store
	Tokens    *auth.Tokens
	Metrics   *metrics.Metrics
	Log       logrus.FieldLogger
	RateLimit config.RateLimitConfig
}

// Server — gRPC-сервер вместе с health-сервисом, статусом которого управляет main.
type Server struct {
	GRPC   *grpc.Server
	Health *health.Server
}

// NewServer собирает цепочку перехватчиков и регистрирует сервисы.
// Порядок: лог -> метрики -> ошибки -> авторизация -> метка участника -> лимит.
func NewServer(d Deps, opts ...grpc.ServerOption) *Server {
	chain := []grpc.UnaryServerInterceptor{
		LoggingInterceptor(d.Log),
		MetricsInterceptor(d.Metrics),
		ErrorInterceptor(d.Log),
		auth.UnaryServerInterceptor(d.Tokens, PublicMethods...),
		ActorTagInterceptor(),
	}
	if d.RateLimit.RPS > 0 {
		chain = append(chain, NewRateLimiter(d.RateLimit.RPS, d.RateLimit.Burst, d.Log).UnaryServerInterceptor())
	}

	opts = append(opts, grpc.ChainUnaryInterceptor(chain...))
	grpcServer := grpc.NewServer(opts...)

	marketplacev1.RegisterMarketplaceServiceServer(grpcServer, NewMarketplaceService(d.Engine, d.Store))
	marketplacev1.RegisterIdentityServiceServer(grpcServer, NewIdentityService(d.Store, d.Tokens, d.Log))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(marketplacev1.MarketplaceService_ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(marketplacev1.IdentityService_ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)

	reflection.Register(grpcServer)

	return &Server{GRPC: grpcServer, Health: hs}
}
