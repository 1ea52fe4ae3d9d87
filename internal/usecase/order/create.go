package order

import (
	"context"
	"log"
	"time"

	"github.com/gleamhub/carwash-booking/internal/audit"
	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/domain/pricing"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
	"github.com/gleamhub/carwash-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	CarMake  string
	CarModel string
	CarYear  string
	CarPlate string

	// CarModelID references the catalog model the customer picked; its
	// segment drives pricing. Segment is the fallback when the customer
	// typed a car the catalog does not know.
	CarModelID uint
	Segment    string

	ServiceID uint

	// QuotedAmount is what the client displayed. The charged amount is
	// always resolved server-side; a disagreement is logged, not honored.
	QuotedAmount float64

	Date string // YYYY-MM-DD
	Time string // slot from the fixed catalog

	Address string
	City    string

	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo  domain.Repository
	tz    string
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	tz string,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		tz:    tz,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if !domain.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	if !domain.IsValidSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	amount, err := uc.resolveAmount(ctx, svc, in)
	if err != nil {
		return nil, err
	}

	if in.QuotedAmount != 0 && in.QuotedAmount != amount {
		log.Printf(
			"order quote mismatch: client sent %.2f, resolved %.2f (service %d)",
			in.QuotedAmount, amount, svc.ID,
		)
	}

	o := &models.Order{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		CarDetails: models.CarDetails{
			Make:  in.CarMake,
			Model: in.CarModel,
			Year:  in.CarYear,
			Plate: in.CarPlate,
		},
		ServiceID:       svc.ID,
		ServiceName:     svc.Title,
		Amount:          amount,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Address:         in.Address,
		City:            in.City,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   string(domain.PaymentPending),
		Status:          string(domain.StatusPending),
	}

	if err := uc.repo.CreateBooked(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.CustomerEmail,
		Action:     "order_created",
		Entity:     "order",
		EntityID:   &o.ID,
	})

	return o, nil
}

// resolveAmount recomputes the price server-side. Pricing rules win when the
// service has any; otherwise the legacy per-type surcharge table applies.
func (uc *CreateOrder) resolveAmount(
	ctx context.Context,
	svc *models.Service,
	in CreateOrderInput,
) (float64, error) {

	var model *models.CarModel
	if in.CarModelID != 0 {
		m, err := uc.repo.GetCarModel(ctx, in.CarModelID)
		if err != nil {
			return 0, httperr.ErrBusiness("car_model_not_found")
		}
		model = m
	}

	if len(svc.PricingRules) > 0 {
		if model != nil {
			return pricing.Resolve(svc, model), nil
		}
		return pricing.ResolveSegment(svc, in.Segment), nil
	}

	carType := ""
	if model != nil {
		carType = model.Type
	}
	if carType == "" {
		return svc.BasePrice, nil
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return svc.BasePrice, nil
	}

	return pricing.ResolveLegacy(svc.BasePrice, carType, settings), nil
}
