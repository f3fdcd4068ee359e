package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
)

// Claims — содержимое токена: sub = id участника, role = его роль.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens выпускает и проверяет JWT (HS256).
type Tokens struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration, issuer string) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue выпускает токен для участника и возвращает его вместе со временем истечения.
func (t *Tokens) Issue(actor marketplace.Actor) (string, time.Time, error) {
	if actor.UserID <= 0 || !actor.Role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue token: invalid actor %s", actor)
	}
	now := t.now()
	exp := now.Add(t.ttl)

	claims := Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.UserID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// ResolveActor проверяет подпись и срок токена и возвращает участника.
// Любая проблема с токеном — ошибка авторизации.
func (t *Tokens) ResolveActor(token string) (marketplace.Actor, error) {
	if token == "" {
		return marketplace.Actor{}, marketplace.Unauthenticated("missing credentials")
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return marketplace.Actor{}, marketplace.WithCause(marketplace.Unauthenticated("%s", msg), err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return marketplace.Actor{}, marketplace.Unauthenticated("invalid token subject")
	}
	role, err := marketplace.ParseRole(claims.Role)
	if err != nil {
		return marketplace.Actor{}, marketplace.Unauthenticated("invalid token role")
	}
	return marketplace.Actor{UserID: id, Role: role}, nil
}
