package order

import (
	"context"

	"github.com/gleamhub/carwash-booking/internal/audit"
	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type UpdateOrderInput struct {
	ID uint

	Status        *string
	PaymentStatus *string
	Notes         *string
}

type UpdateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateOrder(repo domain.Repository, audit *audit.Dispatcher) *UpdateOrder {
	return &UpdateOrder{repo: repo, audit: audit}
}

func (uc *UpdateOrder) Execute(
	ctx context.Context,
	actorEmail string,
	in UpdateOrderInput,
) (*models.Order, error) {

	o, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		if err := domain.CanTransition(
			domain.Status(o.Status),
			domain.Status(*in.Status),
		); err != nil {
			return nil, err
		}
		o.Status = *in.Status
	}

	if in.PaymentStatus != nil {
		if !domain.IsValidPaymentStatus(*in.PaymentStatus) {
			return nil, httperr.ErrBusiness("invalid_payment_status")
		}
		o.PaymentStatus = *in.PaymentStatus
	}

	if in.Notes != nil {
		o.Notes = *in.Notes
	}

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail,
		Action:     "order_updated",
		Entity:     "order",
		EntityID:   &o.ID,
	})

	return o, nil
}
