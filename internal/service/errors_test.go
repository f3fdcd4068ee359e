package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/homeservice-platform/internal/logging"
	"github.com/Leganyst/homeservice-platform/internal/marketplace"
)

func TestToStatus(t *testing.T) {
	log := logging.Discard()
	cases := []struct {
		name   string
		err    error
		code   codes.Code
		reason string
	}{
		{"not found", marketplace.NotFound("request 1 not found"), codes.NotFound, "NOT_FOUND"},
		{"forbidden", marketplace.Unauthorized("not yours"), codes.PermissionDenied, "AUTHORIZATION"},
		{"unauthenticated", marketplace.Unauthenticated("missing credentials"), codes.Unauthenticated, "AUTHORIZATION"},
		{"invalid state", marketplace.InvalidState("cannot accept"), codes.FailedPrecondition, "INVALID_STATE"},
		{"conflict", marketplace.Conflict("already paid"), codes.AlreadyExists, "CONFLICT"},
		{"stale write", marketplace.StaleWrite("service request 1 was modified concurrently"), codes.Aborted, "CONFLICT"},
		{"validation", marketplace.Invalid("rating", "out of range"), codes.InvalidArgument, "VALIDATION"},
		{"wrapped", fmt.Errorf("pay: %w", marketplace.Conflict("already paid")), codes.AlreadyExists, "CONFLICT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := status.Convert(toStatus(log, "/m", tc.err))
			assert.Equal(t, tc.code, st.Code())
			require.Len(t, st.Details(), 1)
			info, ok := st.Details()[0].(*errdetails.ErrorInfo)
			require.True(t, ok)
			assert.Equal(t, tc.reason, info.Reason)
		})
	}
}

func TestToStatus_InternalIsNotLeaked(t *testing.T) {
	err := toStatus(logging.Discard(), "/m", errors.New("pq: connection refused to 10.0.0.5"))
	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestToStatus_PassesThroughStatusAndContext(t *testing.T) {
	log := logging.Discard()
	orig := status.Error(codes.ResourceExhausted, "slow down")
	assert.Equal(t, orig, toStatus(log, "/m", orig))
	assert.Equal(t, codes.Canceled, status.Code(toStatus(log, "/m", context.Canceled)))
	assert.NoError(t, toStatus(log, "/m", nil))
}

func TestErrorInterceptor(t *testing.T) {
	ic := ErrorInterceptor(logging.Discard())
	info := &grpc.UnaryServerInfo{FullMethod: "/m"}

	_, err := ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, marketplace.InvalidState("nope")
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	resp, err := ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestRateLimiter_PerKeyBuckets(t *testing.T) {
	rl := NewRateLimiter(0.0001, 2, logging.Discard())

	assert.True(t, rl.Allow("customer:1"))
	assert.True(t, rl.Allow("customer:1"))
	assert.False(t, rl.Allow("customer:1"))
	assert.True(t, rl.Allow("customer:2"), "other actors keep their own bucket")
}
