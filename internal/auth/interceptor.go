package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
)

type ctxKey struct{}

// WithActor кладёт участника в контекст.
func WithActor(ctx context.Context, actor marketplace.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// ActorFromContext возвращает участника, установленного перехватчиком.
func ActorFromContext(ctx context.Context) (marketplace.Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(marketplace.Actor)
	return a, ok
}

// ErrMissingCredentials — в метаданных нет заголовка authorization.
var ErrMissingCredentials = marketplace.Unauthenticated("missing credentials")

// UnaryServerInterceptor читает "authorization: Bearer <jwt>" и кладёт участника в контекст.
// Методы из public пропускаются без токена; если токен всё же передан и валиден,
// участник тоже попадает в контекст.
// Ошибка возвращается доменной; перевод в gRPC-статус делает следующий слой.
func UnaryServerInterceptor(tokens *Tokens, public ...string) grpc.UnaryServerInterceptor {
	skip := make(map[string]struct{}, len(public))
	for _, m := range public {
		skip[m] = struct{}{}
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		_, isPublic := skip[info.FullMethod]

		token := bearerToken(ctx)
		if token == "" {
			if isPublic {
				return handler(ctx, req)
			}
			return nil, ErrMissingCredentials
		}

		actor, err := tokens.ResolveActor(token)
		if err != nil {
			if isPublic {
				return handler(ctx, req)
			}
			return nil, err
		}
		return handler(WithActor(ctx, actor), req)
	}
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get("authorization") {
		if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
			return strings.TrimSpace(v[7:])
		}
	}
	return ""
}
