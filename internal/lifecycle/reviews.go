package lifecycle

import (
	"context"
	"strings"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

// AddReview — заказчик оставляет отзыв о завершённой и оплаченной заявке.
// Исполнитель в отзыве берётся из заявки.
func (e *Engine) AddReview(
	ctx context.Context,
	requestID int64,
	actor marketplace.Actor,
	rating int,
	comment string,
) (*model.Review, error) {
	rv, err := e.addReview(ctx, requestID, actor, rating, comment)
	return rv, e.observe("review", requestID, actor, err)
}

func (e *Engine) addReview(
	ctx context.Context,
	requestID int64,
	actor marketplace.Actor,
	rating int,
	comment string,
) (*model.Review, error) {
	if err := actor.Require(marketplace.RoleCustomer); err != nil {
		return nil, err
	}

	var review model.Review
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := requireOwner(req, actor); err != nil {
			return err
		}
		if req.Status != model.RequestStatusCompleted {
			return marketplace.StatusMismatch("review", string(req.Status), string(model.RequestStatusCompleted))
		}

		payment, err := tx.Payments.GetByRequestID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !payment.Completed() {
			return marketplace.InvalidState("service request %d has no completed payment", req.ID)
		}

		exists, err := tx.Reviews.ExistsForRequest(ctx, req.ID)
		if err != nil {
			return err
		}
		if exists {
			return marketplace.Conflict("service request %d already has a review", req.ID)
		}

		if rating < model.MinRating || rating > model.MaxRating {
			return marketplace.Invalid("rating", "must be between %d and %d, got %d", model.MinRating, model.MaxRating, rating)
		}
		if req.ProviderID == nil {
			return marketplace.InvalidState("service request %d has no assigned provider", req.ID)
		}

		review = model.Review{
			RequestID:  req.ID,
			CustomerID: req.CustomerID,
			ProviderID: *req.ProviderID,
			Rating:     rating,
			Comment:    strings.TrimSpace(comment),
			CreatedAt:  e.now(),
		}
		if err := tx.Reviews.Create(ctx, &review); err != nil {
			return err
		}

		return tx.Events.Append(ctx, model.EventTypeReviewAdded, req.ID, actor, map[string]any{
			"rating": rating,
		})
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}
