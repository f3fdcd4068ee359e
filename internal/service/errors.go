package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
)

const errorDomain = "marketplace.v1"

// toStatus переводит доменную ошибку в gRPC-статус с ErrorInfo (reason = категория).
// Внутренние ошибки логируются, клиенту уходит только общий текст.
func toStatus(log logrus.FieldLogger, method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request cancelled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	kind := marketplace.KindOf(err)
	code := codes.Internal
	msg := err.Error()
	switch kind {
	case marketplace.KindNotFound:
		code = codes.NotFound
	case marketplace.KindAuthorization:
		code = codes.PermissionDenied
		if errors.Is(err, marketplace.ErrUnauthenticated) {
			code = codes.Unauthenticated
		}
	case marketplace.KindInvalidState:
		code = codes.FailedPrecondition
	case marketplace.KindConflict:
		code = codes.AlreadyExists
		if errors.Is(err, marketplace.ErrConcurrentUpdate) {
			code = codes.Aborted
		}
	case marketplace.KindValidation:
		code = codes.InvalidArgument
	default:
		log.WithFields(logrus.Fields{"method": method}).WithError(err).Error("internal error")
		msg = "internal error"
	}

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(kind)),
		Domain: errorDomain,
	}
	var de *marketplace.Error
	if errors.As(err, &de) && de.Field != "" {
		info.Metadata = map[string]string{"field": de.Field}
	}

	st, detErr := status.New(code, msg).WithDetails(info)
	if detErr != nil {
		return status.Error(code, msg)
	}
	return st.Err()
}

// ErrorInterceptor переводит ошибки всех нижележащих слоёв в gRPC-статусы.
func ErrorInterceptor(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, toStatus(log, info.FullMethod, err)
		}
		return resp, nil
	}
}
