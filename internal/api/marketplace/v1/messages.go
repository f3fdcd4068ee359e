package marketplacev1

import (
	"encoding/json"
	"time"
)

type ServiceArea struct {
	ID         int64  `json:"id"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}

type ServiceCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Customer struct {
	ID               int64        `json:"id"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	Area             *ServiceArea `json:"area,omitempty"`
	RegistrationDate time.Time    `json:"registration_date"`
}

type Provider struct {
	ID                 int64        `json:"id"`
	FirstName          string       `json:"first_name"`
	LastName           string       `json:"last_name"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address"`
	Area               *ServiceArea `json:"area,omitempty"`
	HourlyRate         float64      `json:"hourly_rate"`
	AvailabilityStatus string       `json:"availability_status"`
	DateJoined         time.Time    `json:"date_joined"`
	CategoryIDs        []int64      `json:"category_ids,omitempty"`
}

type Payment struct {
	ID            int64     `json:"id"`
	RequestID     int64     `json:"request_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentStatus string    `json:"payment_status"`
}

type Review struct {
	ID         int64     `json:"id"`
	RequestID  int64     `json:"request_id"`
	CustomerID int64     `json:"customer_id"`
	ProviderID int64     `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ServiceRequest — составное представление заявки.
type ServiceRequest struct {
	ID               int64            `json:"id"`
	Status           string           `json:"status"`
	Address          string           `json:"address"`
	Description      string           `json:"description,omitempty"`
	Cost             *float64         `json:"cost,omitempty"`
	RequestDate      time.Time        `json:"request_date"`
	CancellationDate *time.Time       `json:"cancellation_date,omitempty"`
	Customer         *Customer        `json:"customer,omitempty"`
	Provider         *Provider        `json:"provider,omitempty"`
	Category         *ServiceCategory `json:"category,omitempty"`
	Area             *ServiceArea     `json:"area,omitempty"`
	Payment          *Payment         `json:"payment,omitempty"`
	Review           *Review          `json:"review,omitempty"`
}

type Event struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	RequestID int64           `json:"request_id"`
	ActorID   int64           `json:"actor_id"`
	ActorRole string          `json:"actor_role"`
	CreatedAt time.Time       `json:"created_at"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// --- requests lifecycle ---

type CreateRequestRequest struct {
	ProviderID  *int64   `json:"provider_id,omitempty"`
	CategoryID  int64    `json:"category_id"`
	AreaID      int64    `json:"area_id"`
	Address     string   `json:"address"`
	Description string   `json:"description,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
}

// RequestIDRequest — операции над заявкой без дополнительных параметров.
type RequestIDRequest struct {
	RequestID int64 `json:"request_id"`
}

type QuoteRequestRequest struct {
	RequestID int64   `json:"request_id"`
	Cost      float64 `json:"cost"`
}

type PayRequestRequest struct {
	RequestID     int64    `json:"request_id"`
	PaymentMethod string   `json:"payment_method"`
	Amount        *float64 `json:"amount,omitempty"`
}

type AddReviewRequest struct {
	RequestID int64  `json:"request_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type ListRequestsRequest struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

type RequestResponse struct {
	Request *ServiceRequest `json:"request"`
}

type ListRequestsResponse struct {
	Requests []*ServiceRequest `json:"requests"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int               `json:"total"`
	HasNext  bool              `json:"has_next"`
}

type PaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ReviewResponse struct {
	Review *Review `json:"review"`
}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

// --- directory ---

type CreateAreaRequest struct {
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}

type AreaResponse struct {
	Area *ServiceArea `json:"area"`
}

type ListAreasRequest struct{}

type ListAreasResponse struct {
	Areas []*ServiceArea `json:"areas"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CategoryResponse struct {
	Category *ServiceCategory `json:"category"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*ServiceCategory `json:"categories"`
}

type SearchProvidersRequest struct {
	AreaID     *int64 `json:"area_id,omitempty"`
	CategoryID *int64 `json:"category_id,omitempty"`
}

type ListProvidersResponse struct {
	Providers []*Provider `json:"providers"`
}

type ProviderIDRequest struct {
	ProviderID int64 `json:"provider_id"`
}

type ProviderResponse struct {
	Provider *Provider `json:"provider"`
}

type ListReviewsResponse struct {
	Reviews       []*Review `json:"reviews"`
	AverageRating float64   `json:"average_rating"`
}

// --- identity ---

type RegisterCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AreaID    *int64 `json:"area_id,omitempty"`
	Password  string `json:"password"`
}

type CustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type RegisterProviderRequest struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Address            string  `json:"address"`
	AreaID             *int64  `json:"area_id,omitempty"`
	HourlyRate         float64 `json:"hourly_rate"`
	AvailabilityStatus string  `json:"availability_status,omitempty"`
	CategoryIDs        []int64 `json:"category_ids,omitempty"`
	Password           string  `json:"password"`
}

type LoginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      int64     `json:"user_id"`
	Role        string    `json:"role"`
}

type WhoAmIRequest struct{}

type WhoAmIResponse struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}
