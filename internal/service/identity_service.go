package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	marketplacev1 "github.com/Leganyst/homeservice-platform/internal/api/marketplace/v1"
	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

const tokenType = "Bearer"

// IdentityService реализует регистрацию заказчиков и исполнителей и выдачу токенов.
type IdentityService struct {
	marketplacev1.UnimplementedIdentityServiceServer

	store  *repository.Store
	tokens *auth.Tokens
	log    logrus.FieldLogger
}

func NewIdentityService(store *repository.Store, tokens *auth.Tokens, log logrus.FieldLogger) *IdentityService {
	return &IdentityService{store: store, tokens: tokens, log: log}
}

// profile — общие поля регистрации.
type profile struct {
	firstName, lastName, email, phone, address, password string
	areaID                                               *int64
}

func (s *IdentityService) validateProfile(ctx context.Context, p *profile) error {
	p.firstName = strings.TrimSpace(p.firstName)
	p.lastName = strings.TrimSpace(p.lastName)
	p.email = repository.NormalizeEmail(p.email)
	p.phone = strings.TrimSpace(p.phone)
	p.address = strings.TrimSpace(p.address)

	switch {
	case p.firstName == "":
		return marketplace.Invalid("first_name", "is required")
	case p.lastName == "":
		return marketplace.Invalid("last_name", "is required")
	case p.email == "":
		return marketplace.Invalid("email", "is required")
	case p.phone == "":
		return marketplace.Invalid("phone", "is required")
	case p.address == "":
		return marketplace.Invalid("address", "is required")
	case len(p.password) < auth.MinPasswordLength:
		return marketplace.Invalid("password", "must be at least %d characters", auth.MinPasswordLength)
	}
	if _, err := mail.ParseAddress(p.email); err != nil {
		return marketplace.Invalid("email", "is not a valid address")
	}
	if p.areaID != nil {
		if _, err := s.store.Areas.GetByID(ctx, *p.areaID); err != nil {
			if marketplace.IsNotFound(err) {
				return marketplace.WithCause(marketplace.NotFound("service area %d not found", *p.areaID), err)
			}
			return err
		}
	}
	return nil
}

// RegisterCustomer создаёт заказчика; занятый email даёт Conflict.
func (s *IdentityService) RegisterCustomer(ctx context.Context, req *marketplacev1.RegisterCustomerRequest) (*marketplacev1.CustomerResponse, error) {
	p := profile{
		firstName: req.FirstName,
		lastName:  req.LastName,
		email:     req.Email,
		phone:     req.Phone,
		address:   req.Address,
		password:  req.Password,
		areaID:    req.AreaID,
	}
	if err := s.validateProfile(ctx, &p); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(p.password)
	if err != nil {
		return nil, err
	}

	c := model.Customer{
		FirstName:        p.firstName,
		LastName:         p.lastName,
		Email:            p.email,
		Phone:            p.phone,
		Address:          p.address,
		AreaID:           p.areaID,
		RegistrationDate: time.Now().UTC(),
		PasswordHash:     hash,
	}
	if err := s.store.Customers.Create(ctx, &c); err != nil {
		if marketplace.IsConflict(err) {
			return nil, marketplace.WithCause(marketplace.Conflict("email %s is already registered", p.email), err)
		}
		return nil, err
	}
	if c.AreaID != nil {
		c.Area, _ = s.store.Areas.GetByID(ctx, *c.AreaID)
	}

	s.log.WithFields(logrus.Fields{"customer_id": c.ID}).Info("customer registered")
	return &marketplacev1.CustomerResponse{Customer: mapCustomer(&c)}, nil
}

// RegisterProvider создаёт исполнителя и привязывает его к категориям.
func (s *IdentityService) RegisterProvider(ctx context.Context, req *marketplacev1.RegisterProviderRequest) (*marketplacev1.ProviderResponse, error) {
	p := profile{
		firstName: req.FirstName,
		lastName:  req.LastName,
		email:     req.Email,
		phone:     req.Phone,
		address:   req.Address,
		password:  req.Password,
		areaID:    req.AreaID,
	}
	if err := s.validateProfile(ctx, &p); err != nil {
		return nil, err
	}
	if err := marketplace.CheckPrice("hourly_rate", req.HourlyRate); err != nil {
		return nil, err
	}
	availability, err := model.ParseAvailabilityStatus(req.AvailabilityStatus)
	if err != nil {
		return nil, marketplace.Invalid("availability_status", "unknown value %q", req.AvailabilityStatus)
	}
	if err := s.requireCategories(ctx, req.CategoryIDs); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(p.password)
	if err != nil {
		return nil, err
	}

	pr := model.Provider{
		FirstName:          p.firstName,
		LastName:           p.lastName,
		Email:              p.email,
		Phone:              p.phone,
		Address:            p.address,
		AreaID:             p.areaID,
		HourlyRate:         marketplace.RoundCents(req.HourlyRate),
		AvailabilityStatus: availability,
		DateJoined:         time.Now().UTC(),
		PasswordHash:       hash,
	}
	if err := s.store.Providers.Create(ctx, &pr, req.CategoryIDs); err != nil {
		if marketplace.IsConflict(err) {
			return nil, marketplace.WithCause(marketplace.Conflict("email %s is already registered", p.email), err)
		}
		return nil, err
	}
	if pr.AreaID != nil {
		pr.Area, _ = s.store.Areas.GetByID(ctx, *pr.AreaID)
	}
	ids, err := s.store.Providers.CategoryIDs(ctx, pr.ID)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"provider_id": pr.ID}).Info("provider registered")
	return &marketplacev1.ProviderResponse{Provider: mapProvider(&pr, ids)}, nil
}

func (s *IdentityService) requireCategories(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.store.Categories.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return marketplace.NotFound("service category %d not found", id)
		}
	}
	return nil
}

// Login проверяет пароль и выдаёт JWT. Неизвестный email и неверный пароль
// неразличимы для клиента.
func (s *IdentityService) Login(ctx context.Context, req *marketplacev1.LoginRequest) (*marketplacev1.LoginResponse, error) {
	role, err := marketplace.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, marketplace.Invalid("email", "is required")
	}
	if req.Password == "" {
		return nil, marketplace.Invalid("password", "is required")
	}

	var (
		userID int64
		hash   string
	)
	switch role {
	case marketplace.RoleCustomer:
		c, err := s.store.Customers.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, loginError(err)
		}
		userID, hash = c.ID, c.PasswordHash
	case marketplace.RoleProvider:
		p, err := s.store.Providers.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, loginError(err)
		}
		userID, hash = p.ID, p.PasswordHash
	}

	ok, err := auth.CheckPassword(hash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errInvalidCredentials
	}

	act := marketplace.Actor{UserID: userID, Role: role}
	token, exp, err := s.tokens.Issue(act)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"actor": act.String()}).Info("login")

	return &marketplacev1.LoginResponse{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresAt:   exp.UTC(),
		UserID:      userID,
		Role:        string(role),
	}, nil
}

var errInvalidCredentials = marketplace.Unauthenticated("invalid credentials")

func loginError(err error) error {
	if marketplace.IsNotFound(err) {
		return errInvalidCredentials
	}
	return err
}

// WhoAmI возвращает участника, установленного перехватчиком авторизации.
func (s *IdentityService) WhoAmI(ctx context.Context, _ *marketplacev1.WhoAmIRequest) (*marketplacev1.WhoAmIResponse, error) {
	a, ok := auth.ActorFromContext(ctx)
	if !ok {
		return nil, auth.ErrMissingCredentials
	}
	return &marketplacev1.WhoAmIResponse{UserID: a.UserID, Role: string(a.Role)}, nil
}
