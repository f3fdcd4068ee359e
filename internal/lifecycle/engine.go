package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/metrics"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

// Engine — жизненный цикл заявки: создание, цена, принятие, завершение,
// отмена, оплата, возврат и отзыв.
//
// Каждая мутация идёт в одной транзакции: строка заявки читается под
// блокировкой, проверяются роль, владелец и статус, статус меняется через
// compare-and-set, событие аудита пишется там же. Составное представление
// перечитывается после коммита.
type Engine struct {
	store   *repository.Store
	log     logrus.FieldLogger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Engine)

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithClock подменяет источник текущего времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(store *repository.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   logrus.StandardLogger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AcceptRequest — исполнитель берёт заявку в работу: pending -> in_progress.
func (e *Engine) AcceptRequest(ctx context.Context, requestID int64, actor marketplace.Actor) (*model.ServiceRequest, error) {
	view, err := e.providerTransition(ctx, "accept", requestID, actor,
		model.RequestStatusPending, model.RequestStatusInProgress, model.EventTypeRequestAccepted)
	return view, e.observe("accept", requestID, actor, err)
}

// CompleteRequest — исполнитель завершает работу: in_progress -> completed.
func (e *Engine) CompleteRequest(ctx context.Context, requestID int64, actor marketplace.Actor) (*model.ServiceRequest, error) {
	view, err := e.providerTransition(ctx, "complete", requestID, actor,
		model.RequestStatusInProgress, model.RequestStatusCompleted, model.EventTypeRequestCompleted)
	return view, e.observe("complete", requestID, actor, err)
}

func (e *Engine) providerTransition(
	ctx context.Context,
	action string,
	requestID int64,
	actor marketplace.Actor,
	from, to model.RequestStatus,
	eventType model.EventType,
) (*model.ServiceRequest, error) {
	if !CanTransition(from, to) {
		return nil, fmt.Errorf("transition %s -> %s is not allowed", from, to)
	}
	if err := actor.Require(marketplace.RoleProvider); err != nil {
		return nil, err
	}

	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := requireAssigned(req, actor); err != nil {
			return err
		}
		if req.Status != from {
			return marketplace.StatusMismatch(action, string(req.Status), string(from))
		}
		if err := tx.Requests.CompareAndSwapStatus(ctx, req.ID, from, to, nil); err != nil {
			return err
		}
		return tx.Events.Append(ctx, eventType, req.ID, actor, map[string]any{
			"from": from,
			"to":   to,
		})
	})
	if err != nil {
		return nil, err
	}
	return e.loadView(ctx, requestID)
}

// lockRequest читает заявку под блокировкой строки.
func lockRequest(ctx context.Context, tx *repository.Store, requestID int64) (*model.ServiceRequest, error) {
	req, err := tx.Requests.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, notFoundAs(err, "service request %d not found", requestID)
	}
	return req, nil
}

func requireAssigned(req *model.ServiceRequest, actor marketplace.Actor) error {
	if !req.AssignedTo(actor.UserID) {
		return marketplace.Unauthorized("service request %d is not assigned to provider %d", req.ID, actor.UserID)
	}
	return nil
}

func requireOwner(req *model.ServiceRequest, actor marketplace.Actor) error {
	if req.CustomerID != actor.UserID {
		return marketplace.Unauthorized("service request %d does not belong to customer %d", req.ID, actor.UserID)
	}
	return nil
}

func (e *Engine) loadView(ctx context.Context, requestID int64) (*model.ServiceRequest, error) {
	req, err := e.store.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return e.store.Views.One(ctx, req)
}

// observe пишет метрику и лог по итогу операции и возвращает err без изменений.
func (e *Engine) observe(op string, requestID int64, actor marketplace.Actor, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = string(marketplace.KindOf(err))
	}
	e.metrics.ObserveOperation(op, outcome)

	entry := e.log.WithFields(logrus.Fields{
		"operation":  op,
		"request_id": requestID,
		"actor":      actor.String(),
		"outcome":    outcome,
	})
	switch {
	case err == nil:
		entry.Info("lifecycle operation applied")
	case outcome == string(marketplace.KindInternal):
		entry.WithError(err).Error("lifecycle operation failed")
	default:
		entry.WithError(err).Warn("lifecycle operation rejected")
	}
	return err
}
