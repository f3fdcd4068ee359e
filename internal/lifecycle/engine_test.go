package lifecycle

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/homeservice-platform/internal/db"
	"github.com/Leganyst/homeservice-platform/internal/logging"
	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/metrics"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type world struct {
	engine   *Engine
	store    *repository.Store
	clock    *time.Time
	customer marketplace.Actor
	other    marketplace.Actor
	provider marketplace.Actor
	rival    marketplace.Actor
	area     int64
	category int64
}

func newWorld(t *testing.T) *world {
	t.Helper()

	gdb, err := db.OpenSQLiteMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	store := repository.NewStore(gdb)
	ctx := context.Background()
	w := &world{store: store}

	clock := testNow
	w.clock = &clock
	w.engine = New(store,
		WithLogger(logging.Discard()),
		WithMetrics(metrics.New()),
		WithClock(func() time.Time { return *w.clock }),
	)

	area := model.ServiceArea{City: "Springfield", District: "Downtown", PostalCode: "10001"}
	if err := store.Areas.Create(ctx, &area); err != nil {
		t.Fatalf("seed area: %v", err)
	}
	cat := model.ServiceCategory{Name: "Plumbing"}
	if err := store.Categories.Create(ctx, &cat); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	w.area, w.category = area.ID, cat.ID

	for i, email := range []string{"ann@example.com", "ben@example.com"} {
		c := model.Customer{
			FirstName: "C", LastName: "Customer", Email: email, Phone: "1", Address: "1 Main St",
			RegistrationDate: testNow, PasswordHash: "x",
		}
		if err := store.Customers.Create(ctx, &c); err != nil {
			t.Fatalf("seed customer: %v", err)
		}
		a := marketplace.Actor{UserID: c.ID, Role: marketplace.RoleCustomer}
		if i == 0 {
			w.customer = a
		} else {
			w.other = a
		}
	}
	for i, email := range []string{"bob@example.com", "ray@example.com"} {
		p := model.Provider{
			FirstName: "P", LastName: "Provider", Email: email, Phone: "2", Address: "2 Main St",
			HourlyRate: 30, DateJoined: testNow, PasswordHash: "x",
		}
		if err := store.Providers.Create(ctx, &p, []int64{cat.ID}); err != nil {
			t.Fatalf("seed provider: %v", err)
		}
		a := marketplace.Actor{UserID: p.ID, Role: marketplace.RoleProvider}
		if i == 0 {
			w.provider = a
		} else {
			w.rival = a
		}
	}
	return w
}

// request creates a request assigned to w.provider with the given cost and
// moves it to status directly in the database.
func (w *world) request(t *testing.T, status model.RequestStatus, cost *float64) int64 {
	t.Helper()
	ctx := context.Background()

	view, err := w.engine.CreateRequest(ctx, w.customer, CreateRequestInput{
		ProviderID: &w.provider.UserID,
		CategoryID: w.category,
		AreaID:     w.area,
		Address:    "1 Main St",
		Cost:       cost,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if status != model.RequestStatusPending {
		if err := w.store.DB().Model(&model.ServiceRequest{}).
			Where("id = ?", view.ID).
			Update("status", status).Error; err != nil {
			t.Fatalf("set status: %v", err)
		}
	}
	return view.ID
}

func cost(v float64) *float64 { return &v }

func wantKind(t *testing.T, err error, kind marketplace.Kind) {
	t.Helper()
	if got := marketplace.KindOf(err); got != kind {
		t.Fatalf("error kind = %q (%v), want %q", got, err, kind)
	}
}

func TestCreateRequest_BuildsPendingView(t *testing.T) {
	w := newWorld(t)

	view, err := w.engine.CreateRequest(context.Background(), w.customer, CreateRequestInput{
		ProviderID:  &w.provider.UserID,
		CategoryID:  w.category,
		AreaID:      w.area,
		Address:     "  12 Elm St ",
		Description: "leaking tap",
		Cost:        cost(80.456),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.Status != model.RequestStatusPending {
		t.Fatalf("status = %s, want pending", view.Status)
	}
	if view.Address != "12 Elm St" {
		t.Fatalf("address = %q", view.Address)
	}
	if view.Cost == nil || *view.Cost != 80.46 {
		t.Fatalf("cost = %v, want 80.46", view.Cost)
	}
	if !view.RequestDate.Equal(testNow) {
		t.Fatalf("request date = %v, want %v", view.RequestDate, testNow)
	}
	if view.Customer == nil || view.Provider == nil || view.Category == nil || view.Area == nil {
		t.Fatalf("composite view incomplete: %+v", view)
	}

	events, err := w.store.Events.ListByRequest(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 1 || events[0].EventType != model.EventTypeRequestCreated {
		t.Fatalf("events = %+v, want one request_created", events)
	}
}

func TestCreateRequest_Validation(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	missing := int64(999)

	cases := []struct {
		name  string
		actor marketplace.Actor
		in    CreateRequestInput
		kind  marketplace.Kind
	}{
		{"provider role", w.provider, CreateRequestInput{CategoryID: w.category, AreaID: w.area, Address: "x"}, marketplace.KindAuthorization},
		{"empty address", w.customer, CreateRequestInput{CategoryID: w.category, AreaID: w.area, Address: "  "}, marketplace.KindValidation},
		{"negative cost", w.customer, CreateRequestInput{CategoryID: w.category, AreaID: w.area, Address: "x", Cost: cost(-1)}, marketplace.KindValidation},
		{"NaN cost", w.customer, CreateRequestInput{CategoryID: w.category, AreaID: w.area, Address: "x", Cost: cost(math.NaN())}, marketplace.KindValidation},
		{"infinite cost", w.customer, CreateRequestInput{CategoryID: w.category, AreaID: w.area, Address: "x", Cost: cost(math.Inf(1))}, marketplace.KindValidation},
		{"missing category", w.customer, CreateRequestInput{CategoryID: missing, AreaID: w.area, Address: "x"}, marketplace.KindNotFound},
		{"missing area", w.customer, CreateRequestInput{CategoryID: w.category, AreaID: missing, Address: "x"}, marketplace.KindNotFound},
		{"missing provider", w.customer, CreateRequestInput{ProviderID: &missing, CategoryID: w.category, AreaID: w.area, Address: "x"}, marketplace.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := w.engine.CreateRequest(ctx, tc.actor, tc.in)
			wantKind(t, err, tc.kind)
		})
	}
}

func TestAcceptRequest_MovesToInProgress(t *testing.T) {
	w := newWorld(t)
	id := w.request(t, model.RequestStatusPending, cost(50))

	view, err := w.engine.AcceptRequest(context.Background(), id, w.provider)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if view.Status != model.RequestStatusInProgress {
		t.Fatalf("status = %s, want in_progress", view.Status)
	}
	if view.Provider == nil || view.Provider.ID != w.provider.UserID {
		t.Fatalf("provider = %+v", view.Provider)
	}
}

func TestAcceptRequest_WrongProviderIsUnauthorizedRegardlessOfStatus(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	for _, st := range []model.RequestStatus{
		model.RequestStatusPending,
		model.RequestStatusInProgress,
		model.RequestStatusCompleted,
		model.RequestStatusCancelled,
	} {
		id := w.request(t, st, cost(50))
		_, err := w.engine.AcceptRequest(ctx, id, w.rival)
		wantKind(t, err, marketplace.KindAuthorization)
	}
}

func TestAcceptRequest_CustomerRoleIsUnauthorized(t *testing.T) {
	w := newWorld(t)
	id := w.request(t, model.RequestStatusPending, cost(50))

	_, err := w.engine.AcceptRequest(context.Background(), id, w.customer)
	wantKind(t, err, marketplace.KindAuthorization)
}

func TestAcceptRequest_NotFound(t *testing.T) {
	w := newWorld(t)
	_, err := w.engine.AcceptRequest(context.Background(), 4242, w.provider)
	wantKind(t, err, marketplace.KindNotFound)
	if !strings.Contains(err.Error(), "4242") {
		t.Fatalf("message %q does not name the request", err)
	}
}

func TestAcceptRequest_CompletedIsInvalidState(t *testing.T) {
	w := newWorld(t)
	id := w.request(t, model.RequestStatusCompleted, cost(50))

	_, err := w.engine.AcceptRequest(context.Background(), id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
	msg := err.Error()
	if !strings.Contains(msg, "completed") || !strings.Contains(msg, "pending") {
		t.Fatalf("message %q must mention both statuses", msg)
	}
}

func TestAcceptRequest_LegacyAcceptedHasNoOutgoingEdge(t *testing.T) {
	w := newWorld(t)
	id := w.request(t, model.RequestStatusAccepted, cost(50))

	_, err := w.engine.AcceptRequest(context.Background(), id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
	_, err = w.engine.CompleteRequest(context.Background(), id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
}

func TestCompleteRequest_RequiresInProgress(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusPending, cost(50))

	_, err := w.engine.CompleteRequest(ctx, id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
	if !strings.Contains(err.Error(), "'in_progress'") {
		t.Fatalf("message %q must name the required status", err)
	}

	if _, err := w.engine.AcceptRequest(ctx, id, w.provider); err != nil {
		t.Fatalf("accept: %v", err)
	}
	view, err := w.engine.CompleteRequest(ctx, id, w.provider)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if view.Status != model.RequestStatusCompleted {
		t.Fatalf("status = %s, want completed", view.Status)
	}

	// из терминального статуса переходов нет
	_, err = w.engine.CompleteRequest(ctx, id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
	_, err = w.engine.CancelRequest(ctx, id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
}

func TestAcceptRequest_ConcurrentCallsTransitionOnce(t *testing.T) {
	w := newWorld(t)
	id := w.request(t, model.RequestStatusPending, cost(50))

	const callers = 2
	errs := make([]error, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = w.engine.AcceptRequest(context.Background(), id, w.provider)
		}(i)
	}
	close(start)
	wg.Wait()

	ok := 0
	for _, err := range errs {
		switch marketplace.KindOf(err) {
		case "":
			ok++
		case marketplace.KindConflict, marketplace.KindInvalidState:
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("successful accepts = %d, want 1 (errs: %v)", ok, errs)
	}

	events, err := w.store.Events.ListByRequest(context.Background(), id)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	accepted := 0
	for _, ev := range events {
		if ev.EventType == model.EventTypeRequestAccepted {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("request_accepted events = %d, want 1", accepted)
	}
}

func TestQuoteRequest(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusPending, nil)

	view, err := w.engine.QuoteRequest(ctx, id, w.provider, 120.5)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if view.Cost == nil || *view.Cost != 120.5 {
		t.Fatalf("cost = %v, want 120.5", view.Cost)
	}

	_, err = w.engine.QuoteRequest(ctx, id, w.provider, -3)
	wantKind(t, err, marketplace.KindValidation)
	_, err = w.engine.QuoteRequest(ctx, id, w.provider, math.Inf(1))
	wantKind(t, err, marketplace.KindValidation)
	_, err = w.engine.QuoteRequest(ctx, id, w.provider, math.NaN())
	wantKind(t, err, marketplace.KindValidation)
	if again, err := w.engine.GetRequest(ctx, id, w.provider); err != nil || again.Cost == nil || *again.Cost != 120.5 {
		t.Fatalf("cost after rejected quotes = %v (%v), want 120.5", again, err)
	}
	_, err = w.engine.QuoteRequest(ctx, id, w.rival, 10)
	wantKind(t, err, marketplace.KindAuthorization)

	done := w.request(t, model.RequestStatusCompleted, cost(10))
	_, err = w.engine.QuoteRequest(ctx, done, w.provider, 20)
	wantKind(t, err, marketplace.KindInvalidState)
}

func TestCancelRequest_Policy(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	// заказчик: только pending
	pending := w.request(t, model.RequestStatusPending, cost(50))
	*w.clock = testNow.Add(time.Hour)
	view, err := w.engine.CancelRequest(ctx, pending, w.customer)
	if err != nil {
		t.Fatalf("customer cancel pending: %v", err)
	}
	if view.Status != model.RequestStatusCancelled {
		t.Fatalf("status = %s, want cancelled", view.Status)
	}
	if view.CancellationDate == nil || !view.CancellationDate.Equal(testNow.Add(time.Hour)) {
		t.Fatalf("cancellation date = %v", view.CancellationDate)
	}

	started := w.request(t, model.RequestStatusInProgress, cost(50))
	_, err = w.engine.CancelRequest(ctx, started, w.customer)
	wantKind(t, err, marketplace.KindInvalidState)

	// чужой заказчик
	_, err = w.engine.CancelRequest(ctx, started, w.other)
	wantKind(t, err, marketplace.KindAuthorization)

	// исполнитель: pending и in_progress
	view, err = w.engine.CancelRequest(ctx, started, w.provider)
	if err != nil {
		t.Fatalf("provider cancel in_progress: %v", err)
	}
	if view.Status != model.RequestStatusCancelled {
		t.Fatalf("status = %s, want cancelled", view.Status)
	}
	_, err = w.engine.CancelRequest(ctx, w.request(t, model.RequestStatusPending, nil), w.rival)
	wantKind(t, err, marketplace.KindAuthorization)

	// повторная отмена
	_, err = w.engine.CancelRequest(ctx, started, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)
}

func TestPayRequest_AmountTolerance(t *testing.T) {
	cases := []struct {
		name   string
		amount *float64
		kind   marketplace.Kind
	}{
		{"cost used when amount omitted", nil, ""},
		{"exact", cost(50), ""},
		{"within tolerance", cost(50.005), ""},
		{"over tolerance", cost(50.02), marketplace.KindValidation},
		{"far off", cost(10), marketplace.KindValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld(t)
			id := w.request(t, model.RequestStatusCompleted, cost(50))

			p, err := w.engine.PayRequest(context.Background(), id, w.customer, "credit_card", tc.amount)
			wantKind(t, err, tc.kind)
			if tc.kind != "" {
				return
			}
			if p.Amount != 50 {
				t.Fatalf("stored amount = %v, want quoted cost 50", p.Amount)
			}
			if p.PaymentStatus != model.PaymentStatusCompleted {
				t.Fatalf("payment status = %s, want completed", p.PaymentStatus)
			}
			if !p.PaymentDate.Equal(testNow) {
				t.Fatalf("payment date = %v, want %v", p.PaymentDate, testNow)
			}
		})
	}
}

func TestPayRequest_Preconditions(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	pending := w.request(t, model.RequestStatusPending, cost(50))
	_, err := w.engine.PayRequest(ctx, pending, w.customer, "cash", nil)
	wantKind(t, err, marketplace.KindInvalidState)

	unpriced := w.request(t, model.RequestStatusCompleted, nil)
	_, err = w.engine.PayRequest(ctx, unpriced, w.customer, "cash", nil)
	wantKind(t, err, marketplace.KindInvalidState)
	if !strings.Contains(err.Error(), "no quoted price") {
		t.Fatalf("message %q must mention the missing price", err)
	}

	done := w.request(t, model.RequestStatusCompleted, cost(50))
	_, err = w.engine.PayRequest(ctx, done, w.other, "cash", nil)
	wantKind(t, err, marketplace.KindAuthorization)
	_, err = w.engine.PayRequest(ctx, done, w.provider, "cash", nil)
	wantKind(t, err, marketplace.KindAuthorization)
	_, err = w.engine.PayRequest(ctx, done, w.customer, "bitcoin", nil)
	wantKind(t, err, marketplace.KindValidation)
	_, err = w.engine.PayRequest(ctx, 9999, w.customer, "cash", nil)
	wantKind(t, err, marketplace.KindNotFound)
}

func TestPayRequest_TwiceIsConflict(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusCompleted, cost(50))

	if _, err := w.engine.PayRequest(ctx, id, w.customer, "cash", nil); err != nil {
		t.Fatalf("first pay: %v", err)
	}
	_, err := w.engine.PayRequest(ctx, id, w.customer, "paypal", nil)
	wantKind(t, err, marketplace.KindConflict)
	if !strings.Contains(err.Error(), "already paid") {
		t.Fatalf("message %q must say already paid", err)
	}
}

func TestPayRequest_RepayAfterRefundKeepsPaymentDate(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusCompleted, cost(75))

	first, err := w.engine.PayRequest(ctx, id, w.customer, "credit_card", nil)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}

	*w.clock = testNow.Add(24 * time.Hour)
	refunded, err := w.engine.RefundPayment(ctx, id, w.provider)
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if refunded.PaymentStatus != model.PaymentStatusRefunded {
		t.Fatalf("status = %s, want refunded", refunded.PaymentStatus)
	}

	*w.clock = testNow.Add(48 * time.Hour)
	again, err := w.engine.PayRequest(ctx, id, w.customer, "bank_transfer", nil)
	if err != nil {
		t.Fatalf("pay again: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("payment id = %d, want %d (row reused)", again.ID, first.ID)
	}
	if !again.PaymentDate.Equal(first.PaymentDate) {
		t.Fatalf("payment date = %v, want original %v", again.PaymentDate, first.PaymentDate)
	}

	stored, err := w.store.Payments.GetByRequestID(ctx, id)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	if stored.PaymentMethod != model.PaymentMethodBankTransfer || stored.PaymentStatus != model.PaymentStatusCompleted {
		t.Fatalf("payment = %+v", stored)
	}
	if !stored.PaymentDate.Equal(testNow) {
		t.Fatalf("stored payment date = %v, want %v", stored.PaymentDate, testNow)
	}
}

func TestPayRequest_OverwritesFailedAttempt(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusCompleted, cost(40))

	original := testNow.Add(-72 * time.Hour)
	failed := model.Payment{
		RequestID: id, Amount: 39, PaymentMethod: model.PaymentMethodCash,
		PaymentDate: original, PaymentStatus: model.PaymentStatusFailed,
	}
	if err := w.store.Payments.Upsert(ctx, &failed); err != nil {
		t.Fatalf("seed failed payment: %v", err)
	}

	p, err := w.engine.PayRequest(ctx, id, w.customer, "debit_card", cost(40))
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if p.Amount != 40 || p.PaymentMethod != model.PaymentMethodDebitCard {
		t.Fatalf("payment = %+v", p)
	}
	if !p.PaymentDate.Equal(original) {
		t.Fatalf("payment date = %v, want %v", p.PaymentDate, original)
	}
}

func TestRefundPayment_Preconditions(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusCompleted, cost(20))

	_, err := w.engine.RefundPayment(ctx, id, w.provider)
	wantKind(t, err, marketplace.KindInvalidState)

	if _, err := w.engine.PayRequest(ctx, id, w.customer, "cash", nil); err != nil {
		t.Fatalf("pay: %v", err)
	}
	_, err = w.engine.RefundPayment(ctx, id, w.rival)
	wantKind(t, err, marketplace.KindAuthorization)
	_, err = w.engine.RefundPayment(ctx, id, w.customer)
	wantKind(t, err, marketplace.KindAuthorization)
}

func TestAddReview_RequiresCompletedPayment(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusCompleted, cost(50))

	_, err := w.engine.AddReview(ctx, id, w.customer, 5, "great")
	wantKind(t, err, marketplace.KindInvalidState)

	if _, err := w.engine.PayRequest(ctx, id, w.customer, "cash", nil); err != nil {
		t.Fatalf("pay: %v", err)
	}
	rv, err := w.engine.AddReview(ctx, id, w.customer, 5, "great")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if rv.ProviderID != w.provider.UserID {
		t.Fatalf("review provider = %d, want request provider %d", rv.ProviderID, w.provider.UserID)
	}
	if rv.Rating != 5 || rv.Comment != "great" {
		t.Fatalf("review = %+v", rv)
	}

	_, err = w.engine.AddReview(ctx, id, w.customer, 4, "again")
	wantKind(t, err, marketplace.KindConflict)

	view, err := w.engine.GetRequest(ctx, id, w.customer)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Review == nil || view.Review.ID != rv.ID {
		t.Fatalf("view review = %+v", view.Review)
	}
}

func TestAddReview_RatingAndOwnership(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusCompleted, cost(50))
	if _, err := w.engine.PayRequest(ctx, id, w.customer, "cash", nil); err != nil {
		t.Fatalf("pay: %v", err)
	}

	for _, rating := range []int{0, 6, -1} {
		_, err := w.engine.AddReview(ctx, id, w.customer, rating, "")
		wantKind(t, err, marketplace.KindValidation)
	}
	_, err := w.engine.AddReview(ctx, id, w.other, 5, "")
	wantKind(t, err, marketplace.KindAuthorization)
	_, err = w.engine.AddReview(ctx, id, w.provider, 5, "")
	wantKind(t, err, marketplace.KindAuthorization)

	inProgress := w.request(t, model.RequestStatusInProgress, cost(50))
	_, err = w.engine.AddReview(ctx, inProgress, w.customer, 5, "")
	wantKind(t, err, marketplace.KindInvalidState)
}

func TestGetRequest_Visibility(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusPending, cost(50))

	if _, err := w.engine.GetRequest(ctx, id, w.customer); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := w.engine.GetRequest(ctx, id, w.provider); err != nil {
		t.Fatalf("provider get: %v", err)
	}
	_, err := w.engine.GetRequest(ctx, id, w.other)
	wantKind(t, err, marketplace.KindAuthorization)
	_, err = w.engine.GetRequest(ctx, id, w.rival)
	wantKind(t, err, marketplace.KindAuthorization)
	_, err = w.engine.GetRequest(ctx, 777, w.customer)
	wantKind(t, err, marketplace.KindNotFound)
}

func TestListRequests_PaginatesNewestFirst(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		*w.clock = testNow.Add(time.Duration(i) * time.Minute)
		ids = append(ids, w.request(t, model.RequestStatusPending, cost(10)))
	}

	page, err := w.engine.ListRequests(ctx, w.customer, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 2 || !page.HasNext {
		t.Fatalf("page = total %d items %d hasNext %v", page.Total, len(page.Items), page.HasNext)
	}
	if page.Items[0].ID != ids[2] || page.Items[1].ID != ids[1] {
		t.Fatalf("order = [%d %d], want [%d %d]", page.Items[0].ID, page.Items[1].ID, ids[2], ids[1])
	}
	if page.Items[0].Customer == nil {
		t.Fatalf("list items are not composite views")
	}

	last, err := w.engine.ListRequests(ctx, w.provider, 2, 2)
	if err != nil {
		t.Fatalf("list provider: %v", err)
	}
	if len(last.Items) != 1 || last.HasNext || !last.HasPrev {
		t.Fatalf("last page = %+v", last)
	}

	none, err := w.engine.ListRequests(ctx, w.other, 1, 10)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if none.Total != 0 {
		t.Fatalf("other customer sees %d requests", none.Total)
	}
}

func TestEvents_RecordFullLifecycle(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	id := w.request(t, model.RequestStatusPending, cost(50))

	steps := []func() error{
		func() error { _, err := w.engine.AcceptRequest(ctx, id, w.provider); return err },
		func() error { _, err := w.engine.CompleteRequest(ctx, id, w.provider); return err },
		func() error { _, err := w.engine.PayRequest(ctx, id, w.customer, "cash", nil); return err },
		func() error { _, err := w.engine.AddReview(ctx, id, w.customer, 4, "ok"); return err },
	}
	for i, step := range steps {
		*w.clock = testNow.Add(time.Duration(i+1) * time.Minute)
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	events, err := w.engine.Events(ctx, id, w.customer)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	seen := map[model.EventType]bool{}
	for _, ev := range events {
		seen[ev.EventType] = true
		if ev.ID == uuid.Nil {
			t.Fatalf("event without id")
		}
	}
	for _, want := range []model.EventType{
		model.EventTypeRequestCreated,
		model.EventTypeRequestAccepted,
		model.EventTypeRequestCompleted,
		model.EventTypePaymentCompleted,
		model.EventTypeReviewAdded,
	} {
		if !seen[want] {
			t.Fatalf("missing event %s in %v", want, seen)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to model.RequestStatus
		want     bool
	}{
		{model.RequestStatusPending, model.RequestStatusInProgress, true},
		{model.RequestStatusPending, model.RequestStatusCancelled, true},
		{model.RequestStatusInProgress, model.RequestStatusCompleted, true},
		{model.RequestStatusInProgress, model.RequestStatusCancelled, true},
		{model.RequestStatusPending, model.RequestStatusCompleted, false},
		{model.RequestStatusCompleted, model.RequestStatusCancelled, false},
		{model.RequestStatusCancelled, model.RequestStatusPending, false},
		{model.RequestStatusAccepted, model.RequestStatusInProgress, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
