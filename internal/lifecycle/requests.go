package lifecycle

import (
	"context"
	"strings"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

// CreateRequestInput — данные новой заявки. ProviderID и Cost опциональны.
type CreateRequestInput struct {
	ProviderID  *int64
	CategoryID  int64
	AreaID      int64
	Address     string
	Description string
	Cost        *float64
}

// CreateRequest создаёт заявку заказчика в статусе pending.
func (e *Engine) CreateRequest(ctx context.Context, actor marketplace.Actor, in CreateRequestInput) (*model.ServiceRequest, error) {
	var id int64
	err := e.createRequest(ctx, actor, in, &id)
	if err != nil {
		return nil, e.observe("create", 0, actor, err)
	}
	view, err := e.loadView(ctx, id)
	return view, e.observe("create", id, actor, err)
}

func (e *Engine) createRequest(ctx context.Context, actor marketplace.Actor, in CreateRequestInput, id *int64) error {
	if err := actor.Require(marketplace.RoleCustomer); err != nil {
		return err
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return marketplace.Invalid("address", "must not be empty")
	}
	var cost *float64
	if in.Cost != nil {
		if err := marketplace.CheckPrice("cost", *in.Cost); err != nil {
			return err
		}
		c := marketplace.RoundCents(*in.Cost)
		cost = &c
	}

	return e.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Customers.GetByID(ctx, actor.UserID); err != nil {
			return notFoundAs(err, "customer %d not found", actor.UserID)
		}
		if _, err := tx.Categories.GetByID(ctx, in.CategoryID); err != nil {
			return notFoundAs(err, "service category %d not found", in.CategoryID)
		}
		if _, err := tx.Areas.GetByID(ctx, in.AreaID); err != nil {
			return notFoundAs(err, "service area %d not found", in.AreaID)
		}
		if in.ProviderID != nil {
			if _, err := tx.Providers.GetByID(ctx, *in.ProviderID); err != nil {
				return notFoundAs(err, "provider %d not found", *in.ProviderID)
			}
		}

		req := model.ServiceRequest{
			CustomerID:  actor.UserID,
			ProviderID:  in.ProviderID,
			CategoryID:  in.CategoryID,
			AreaID:      in.AreaID,
			Address:     address,
			Description: strings.TrimSpace(in.Description),
			Status:      model.RequestStatusPending,
			Cost:        cost,
			RequestDate: e.now(),
		}
		if err := tx.Requests.Create(ctx, &req); err != nil {
			return err
		}
		*id = req.ID

		details := map[string]any{"category_id": req.CategoryID, "area_id": req.AreaID}
		if req.ProviderID != nil {
			details["provider_id"] = *req.ProviderID
		}
		if req.Cost != nil {
			details["cost"] = *req.Cost
		}
		return tx.Events.Append(ctx, model.EventTypeRequestCreated, req.ID, actor, details)
	})
}

// QuoteRequest — назначенный исполнитель выставляет цену, пока работа не завершена.
func (e *Engine) QuoteRequest(ctx context.Context, requestID int64, actor marketplace.Actor, cost float64) (*model.ServiceRequest, error) {
	err := e.quoteRequest(ctx, requestID, actor, cost)
	if err != nil {
		return nil, e.observe("quote", requestID, actor, err)
	}
	view, err := e.loadView(ctx, requestID)
	return view, e.observe("quote", requestID, actor, err)
}

func (e *Engine) quoteRequest(ctx context.Context, requestID int64, actor marketplace.Actor, cost float64) error {
	if err := actor.Require(marketplace.RoleProvider); err != nil {
		return err
	}
	quotable := []model.RequestStatus{model.RequestStatusPending, model.RequestStatusInProgress}

	return e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := requireAssigned(req, actor); err != nil {
			return err
		}
		if !statusIn(req.Status, quotable) {
			return marketplace.StatusMismatch("quote", string(req.Status), statusNames(quotable)...)
		}
		if err := marketplace.CheckPrice("cost", cost); err != nil {
			return err
		}
		cost = marketplace.RoundCents(cost)
		if err := tx.Requests.UpdateCost(ctx, req.ID, req.Status, cost); err != nil {
			return err
		}
		details := map[string]any{"cost": cost}
		if req.Cost != nil {
			details["previous_cost"] = *req.Cost
		}
		return tx.Events.Append(ctx, model.EventTypeRequestQuoted, req.ID, actor, details)
	})
}

// CancelRequest отменяет заявку и проставляет дату отмены.
// Заказчик-владелец может отменить только заявку в статусе pending,
// назначенный исполнитель — в статусах pending и in_progress.
func (e *Engine) CancelRequest(ctx context.Context, requestID int64, actor marketplace.Actor) (*model.ServiceRequest, error) {
	err := e.cancelRequest(ctx, requestID, actor)
	if err != nil {
		return nil, e.observe("cancel", requestID, actor, err)
	}
	view, err := e.loadView(ctx, requestID)
	return view, e.observe("cancel", requestID, actor, err)
}

func (e *Engine) cancelRequest(ctx context.Context, requestID int64, actor marketplace.Actor) error {
	if actor.UserID <= 0 || !actor.Role.Valid() {
		return marketplace.Unauthenticated("authentication required")
	}

	return e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if actor.IsCustomer() {
			err = requireOwner(req, actor)
		} else {
			err = requireAssigned(req, actor)
		}
		if err != nil {
			return err
		}

		allowed := cancellableBy(actor.IsCustomer())
		if !statusIn(req.Status, allowed) || !CanTransition(req.Status, model.RequestStatusCancelled) {
			return marketplace.StatusMismatch("cancel", string(req.Status), statusNames(allowed)...)
		}

		now := e.now()
		if err := tx.Requests.CompareAndSwapStatus(ctx, req.ID, req.Status, model.RequestStatusCancelled, &now); err != nil {
			return err
		}
		return tx.Events.Append(ctx, model.EventTypeRequestCancelled, req.ID, actor, map[string]any{
			"from": req.Status,
			"to":   model.RequestStatusCancelled,
		})
	})
}

// GetRequest отдаёт составное представление заявки её заказчику или назначенному исполнителю.
func (e *Engine) GetRequest(ctx context.Context, requestID int64, actor marketplace.Actor) (*model.ServiceRequest, error) {
	if actor.UserID <= 0 || !actor.Role.Valid() {
		return nil, marketplace.Unauthenticated("authentication required")
	}
	req, err := e.store.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, notFoundAs(err, "service request %d not found", requestID)
	}
	if actor.IsCustomer() {
		err = requireOwner(req, actor)
	} else {
		err = requireAssigned(req, actor)
	}
	if err != nil {
		return nil, err
	}
	return e.store.Views.One(ctx, req)
}

// ListRequests возвращает заявки участника (по роли), новые первыми.
func (e *Engine) ListRequests(ctx context.Context, actor marketplace.Actor, page, pageSize int) (marketplace.Page[model.ServiceRequest], error) {
	if actor.UserID <= 0 || !actor.Role.Valid() {
		return marketplace.Page[model.ServiceRequest]{}, marketplace.Unauthenticated("authentication required")
	}
	page, pageSize = marketplace.NormalizePage(page, pageSize)

	reqs, total, err := e.store.Requests.ListByParticipant(ctx, actor.Role, actor.UserID, pageSize, marketplace.Offset(page, pageSize))
	if err != nil {
		return marketplace.Page[model.ServiceRequest]{}, err
	}
	views, err := e.store.Views.Assemble(ctx, reqs)
	if err != nil {
		return marketplace.Page[model.ServiceRequest]{}, err
	}
	return marketplace.NewPage(views, page, pageSize, int(total)), nil
}

// Events возвращает журнал заявки тем же участникам, кому видна сама заявка.
func (e *Engine) Events(ctx context.Context, requestID int64, actor marketplace.Actor) ([]model.Event, error) {
	if _, err := e.GetRequest(ctx, requestID, actor); err != nil {
		return nil, err
	}
	return e.store.Events.ListByRequest(ctx, requestID)
}

func notFoundAs(err error, format string, args ...any) error {
	if marketplace.IsNotFound(err) {
		return marketplace.WithCause(marketplace.NotFound(format, args...), err)
	}
	return err
}
