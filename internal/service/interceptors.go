package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/metrics"
)

// RequestIDHeader — метаданные с идентификатором запроса (входящие и исходящие).
const RequestIDHeader = "x-request-id"

type callKey struct{}

// callInfo заполняется внутренними перехватчиками и читается логирующим.
type callInfo struct {
	requestID string
	actor     string
}

func callInfoFrom(ctx context.Context) *callInfo {
	ci, _ := ctx.Value(callKey{}).(*callInfo)
	return ci
}

// LoggingInterceptor выдаёт идентификатор запроса и пишет строку лога на каждый вызов.
func LoggingInterceptor(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ci := &callInfo{requestID: incomingRequestID(ctx)}
		if ci.requestID == "" {
			ci.requestID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, ci.requestID))

		start := time.Now()
		resp, err := handler(context.WithValue(ctx, callKey{}, ci), req)

		code := status.Code(err)
		entry := log.WithFields(logrus.Fields{
			"request_id": ci.requestID,
			"method":     info.FullMethod,
			"code":       code.String(),
			"duration":   time.Since(start).String(),
		})
		if ci.actor != "" {
			entry = entry.WithField("actor", ci.actor)
		}
		switch code {
		case codes.OK:
			entry.Info("grpc call")
		case codes.Internal, codes.Unknown:
			entry.Error("grpc call")
		default:
			entry.Warn("grpc call")
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(RequestIDHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}

// MetricsInterceptor считает вызовы по методу и коду ответа.
func MetricsInterceptor(m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.ObserveGRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// ActorTagInterceptor отмечает участника для строки лога; ставится после auth.
func ActorTagInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if ci := callInfoFrom(ctx); ci != nil {
			if actor, ok := auth.ActorFromContext(ctx); ok {
				ci.actor = actor.String()
			}
		}
		return handler(ctx, req)
	}
}

// RateLimiter — отдельный token bucket на участника, для анонимных вызовов на адрес клиента.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	log      logrus.FieldLogger
}

func NewRateLimiter(rps float64, burst int, log logrus.FieldLogger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		log:      log,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Allow расходует один токен ключа key.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// UnaryServerInterceptor отвечает ResourceExhausted при превышении лимита.
func (rl *RateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		key := limiterKey(ctx)
		if !rl.Allow(key) {
			rl.log.WithFields(logrus.Fields{"key": key, "method": info.FullMethod}).Warn("rate limit exceeded")
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

func limiterKey(ctx context.Context) string {
	if actor, ok := auth.ActorFromContext(ctx); ok {
		return actor.String()
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return "addr:" + p.Addr.String()
	}
	return "anonymous"
}
