package lifecycle

import (
	"context"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

// PayRequest — заказчик оплачивает завершённую заявку по согласованной цене.
//
// amount опционален; если задан, он должен совпадать с ценой с точностью
// marketplace.AmountTolerance. Сохраняется всегда цена заявки. Существующая
// строка платежа (после неудачи или возврата) перезаписывается, но дата
// платежа остаётся прежней.
func (e *Engine) PayRequest(
	ctx context.Context,
	requestID int64,
	actor marketplace.Actor,
	method string,
	amount *float64,
) (*model.Payment, error) {
	p, err := e.payRequest(ctx, requestID, actor, method, amount)
	return p, e.observe("pay", requestID, actor, err)
}

func (e *Engine) payRequest(
	ctx context.Context,
	requestID int64,
	actor marketplace.Actor,
	method string,
	amount *float64,
) (*model.Payment, error) {
	if err := actor.Require(marketplace.RoleCustomer); err != nil {
		return nil, err
	}

	var payment model.Payment
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := requireOwner(req, actor); err != nil {
			return err
		}
		if req.Status != model.RequestStatusCompleted {
			return marketplace.StatusMismatch("pay", string(req.Status), string(model.RequestStatusCompleted))
		}
		if req.Cost == nil {
			return marketplace.InvalidState("service request %d has no quoted price", req.ID)
		}

		existing, err := tx.Payments.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if existing.Completed() {
			return marketplace.Conflict("service request %d is already paid", req.ID)
		}

		pm, err := model.ParsePaymentMethod(method)
		if err != nil {
			return marketplace.Invalid("payment_method", "unknown payment method %q", method)
		}
		if amount != nil && !marketplace.AmountsMatch(*amount, *req.Cost) {
			return marketplace.Invalid("amount", "%.2f does not match quoted price %.2f", *amount, *req.Cost)
		}

		payment = model.Payment{
			RequestID:     req.ID,
			Amount:        *req.Cost,
			PaymentMethod: pm,
			PaymentDate:   e.now(),
			PaymentStatus: model.PaymentStatusCompleted,
		}
		if err := tx.Payments.Upsert(ctx, &payment); err != nil {
			return err
		}

		return tx.Events.Append(ctx, model.EventTypePaymentCompleted, req.ID, actor, map[string]any{
			"amount":         payment.Amount,
			"payment_method": payment.PaymentMethod,
			"repaid":         existing != nil,
		})
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// RefundPayment — назначенный исполнитель возвращает оплату: completed -> refunded.
// Заявка остаётся завершённой, её можно оплатить снова.
func (e *Engine) RefundPayment(ctx context.Context, requestID int64, actor marketplace.Actor) (*model.Payment, error) {
	p, err := e.refundPayment(ctx, requestID, actor)
	return p, e.observe("refund", requestID, actor, err)
}

func (e *Engine) refundPayment(ctx context.Context, requestID int64, actor marketplace.Actor) (*model.Payment, error) {
	if err := actor.Require(marketplace.RoleProvider); err != nil {
		return nil, err
	}

	var payment *model.Payment
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := requireAssigned(req, actor); err != nil {
			return err
		}

		existing, err := tx.Payments.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !existing.Completed() {
			return marketplace.InvalidState("service request %d has no completed payment", req.ID)
		}
		if err := tx.Payments.CompareAndSwapStatus(ctx, req.ID, model.PaymentStatusCompleted, model.PaymentStatusRefunded); err != nil {
			return err
		}
		existing.PaymentStatus = model.PaymentStatusRefunded
		payment = existing

		return tx.Events.Append(ctx, model.EventTypePaymentRefunded, req.ID, actor, map[string]any{
			"amount": existing.Amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}
