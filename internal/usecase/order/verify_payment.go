package order

import (
	"context"

	"github.com/gleamhub/carwash-booking/internal/audit"
	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
	"github.com/gleamhub/carwash-booking/internal/payment"
)

type VerifyPaymentInput struct {
	OrderID uint // 0 when the caller only knows the gateway order id

	RazorpayOrderID   string
	RazorpayPaymentID string
	Signature         string
}

type VerifyPayment struct {
	repo      domain.Repository
	keySecret string
	audit     *audit.Dispatcher
}

func NewVerifyPayment(
	repo domain.Repository,
	keySecret string,
	audit *audit.Dispatcher,
) *VerifyPayment {
	return &VerifyPayment{
		repo:      repo,
		keySecret: keySecret,
		audit:     audit,
	}
}

// Execute fails closed: a signature that does not verify leaves the order
// untouched and returns a business error.
func (uc *VerifyPayment) Execute(
	ctx context.Context,
	in VerifyPaymentInput,
) (*models.Order, error) {

	var (
		o   *models.Order
		err error
	)
	if in.OrderID != 0 {
		o, err = uc.repo.GetByID(ctx, in.OrderID)
	} else {
		o, err = uc.repo.GetByGatewayOrderID(ctx, in.RazorpayOrderID)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if !payment.VerifySignature(
		uc.keySecret,
		in.RazorpayOrderID,
		in.RazorpayPaymentID,
		in.Signature,
	) {
		uc.audit.Dispatch(audit.Event{
			ActorEmail: o.CustomerEmail,
			Action:     "payment_verification_failed",
			Entity:     "order",
			EntityID:   &o.ID,
		})
		return nil, httperr.ErrBusiness("signature_verification_failed")
	}

	o.PaymentStatus = string(domain.PaymentPaid)
	o.RazorpayOrderID = in.RazorpayOrderID
	o.RazorpayPaymentID = in.RazorpayPaymentID

	// COD-style orders stay wherever the admin moved them; a pending order
	// confirms on successful payment.
	if domain.Status(o.Status) == domain.StatusPending {
		o.Status = string(domain.StatusConfirmed)
	}

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: o.CustomerEmail,
		Action:     "payment_verified",
		Entity:     "order",
		EntityID:   &o.ID,
	})

	return o, nil
}
