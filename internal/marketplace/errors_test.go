package marketplace

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"not found", NotFound("request %d not found", 7), KindNotFound},
		{"unauthorized", Unauthorized("nope"), KindAuthorization},
		{"invalid state", StatusMismatch("accept", "completed", "pending"), KindInvalidState},
		{"conflict", Conflict("already paid"), KindConflict},
		{"validation", Invalid("rating", "must be between 1 and 5"), KindValidation},
		{"wrapped", fmt.Errorf("outer: %w", Conflict("dup")), KindConflict},
		{"bare sentinel", fmt.Errorf("x: %w", ErrNotFound), KindNotFound},
		{"plain", errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestErrorIsSentinel(t *testing.T) {
	err := NotFound("provider %d not found", 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "provider 3 not found", err.Error())
}

func TestWithCauseKeepsKindAndCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := WithCause(Conflict("email already registered"), cause)

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)

	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindConflict, de.Kind)
}

func TestStatusMismatchMessage(t *testing.T) {
	err := StatusMismatch("accept", "completed", "pending")
	assert.Equal(t, "cannot accept request with status 'completed'; must be 'pending'", err.Error())

	err = StatusMismatch("cancel", "completed", "pending", "in_progress")
	assert.Equal(t, "cannot cancel request with status 'completed'; must be 'pending' or 'in_progress'", err.Error())
}

func TestInvalidIncludesField(t *testing.T) {
	err := Invalid("amount", "does not match quoted cost")
	assert.Equal(t, "amount: does not match quoted cost", err.Error())
	assert.True(t, IsValidation(err))
}

func TestActorRequire(t *testing.T) {
	customer := Actor{UserID: 1, Role: RoleCustomer}
	assert.NoError(t, customer.Require(RoleCustomer))
	assert.True(t, IsUnauthorized(customer.Require(RoleProvider)))
	assert.True(t, IsUnauthorized(Actor{}.Require(RoleCustomer)))

	_, err := ParseRole("admin")
	assert.True(t, IsValidation(err))
}

func TestAmountsMatch(t *testing.T) {
	assert.True(t, AmountsMatch(100, 100))
	assert.True(t, AmountsMatch(100.01, 100))
	assert.True(t, AmountsMatch(99.99, 100))
	assert.False(t, AmountsMatch(100.02, 100))
	assert.False(t, AmountsMatch(50, 100))
	assert.Equal(t, 12.35, RoundCents(12.345000001))
}

func TestCheckPrice(t *testing.T) {
	assert.NoError(t, CheckPrice("cost", 0))
	assert.NoError(t, CheckPrice("cost", 80.5))
	for _, v := range []float64{-0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckPrice("cost", v)
		assert.True(t, IsValidation(err), "%v: %v", v, err)
		var e *Error
		if assert.ErrorAs(t, err, &e) {
			assert.Equal(t, "cost", e.Field)
		}
	}
}

func TestRefinedCauses(t *testing.T) {
	stale := StaleWrite("service request %d was modified concurrently", 4)
	assert.True(t, IsConflict(stale))
	assert.ErrorIs(t, stale, ErrConcurrentUpdate)
	assert.NotErrorIs(t, Conflict("already paid"), ErrConcurrentUpdate)

	anon := Unauthenticated("missing credentials")
	assert.True(t, IsUnauthorized(anon))
	assert.ErrorIs(t, anon, ErrUnauthenticated)
	assert.NotErrorIs(t, Unauthorized("not yours"), ErrUnauthenticated)

	// добавленная причина не теряет уже имеющуюся
	jwtErr := errors.New("token is expired")
	err := WithCause(anon, jwtErr)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, jwtErr)
}
