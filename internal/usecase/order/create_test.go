package order

import (
	"context"
	"testing"

	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
)

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.services[1] = &models.Service{
		ID:        1,
		Title:     "Basic Wash",
		BasePrice: 499,
		PricingRules: models.PricingRules{
			"Compact Sedan": 599,
			"Compact SUV":   699,
		},
	}
	repo.services[2] = &models.Service{
		ID:        2,
		Title:     "Full Detailing",
		BasePrice: 2999,
	}
	repo.carModels[10] = &models.CarModel{
		ID:      10,
		Name:    "Dzire",
		Type:    models.CarTypeSedan,
		Segment: "Compact Sedan",
	}
	repo.settings = map[string]string{
		"charge_sedan": "100",
		"charge_suv":   "200",
	}
	return repo
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Asha Patel",
		CustomerPhone: "9876543210",
		CarMake:       "Maruti Suzuki",
		CarModel:      "Dzire",
		CarModelID:    10,
		ServiceID:     1,
		Date:          "2026-09-15",
		Time:          "10:00",
		Address:       "12 Ring Road",
		City:          "Surat",
		PaymentMethod: "COD",
	}
}

func TestCreateOrder_ResolvesSegmentPrice(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateOrder(repo, "UTC", nil)

	o, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if o.Amount != 599 {
		t.Fatalf("expected the Compact Sedan rule price 599, got %.2f", o.Amount)
	}
	if o.ServiceName != "Basic Wash" {
		t.Fatalf("service name not snapshotted, got %q", o.ServiceName)
	}
	if o.Status != "Pending" || o.PaymentStatus != "Pending" {
		t.Fatalf("new orders start Pending/Pending, got %s/%s", o.Status, o.PaymentStatus)
	}
	if o.ID == 0 {
		t.Fatal("order was not persisted")
	}
}

func TestCreateOrder_IgnoresClientQuote(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateOrder(repo, "UTC", nil)

	in := validInput()
	in.QuotedAmount = 1 // lowball from a tampered client

	o, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if o.Amount != 599 {
		t.Fatalf("server-resolved price must win over the quote, got %.2f", o.Amount)
	}
}

func TestCreateOrder_SegmentFallbackWithoutModel(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateOrder(repo, "UTC", nil)

	in := validInput()
	in.CarModelID = 0
	in.Segment = "Compact SUV"

	o, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if o.Amount != 699 {
		t.Fatalf("segment label fallback should price at 699, got %.2f", o.Amount)
	}
}

func TestCreateOrder_LegacySurchargeWhenNoRules(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateOrder(repo, "UTC", nil)

	in := validInput()
	in.ServiceID = 2 // no pricing rules

	o, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if o.Amount != 3099 {
		t.Fatalf("expected base 2999 plus sedan surcharge 100, got %.2f", o.Amount)
	}
}

func TestCreateOrder_BasePriceWhenNoRulesAndNoModel(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateOrder(repo, "UTC", nil)

	in := validInput()
	in.ServiceID = 2
	in.CarModelID = 0

	o, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if o.Amount != 2999 {
		t.Fatalf("expected bare base price, got %.2f", o.Amount)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateOrder(repo, "UTC", nil)

	cases := []struct {
		name   string
		mutate func(*CreateOrderInput)
		code   string
	}{
		{"bad method", func(in *CreateOrderInput) { in.PaymentMethod = "UPI" }, "invalid_payment_method"},
		{"off-catalog slot", func(in *CreateOrderInput) { in.Time = "08:00" }, "invalid_time_slot"},
		{"bad date", func(in *CreateOrderInput) { in.Date = "15-09-2026" }, "invalid_date"},
		{"missing service", func(in *CreateOrderInput) { in.ServiceID = 99 }, "service_not_found"},
		{"missing car model", func(in *CreateOrderInput) { in.CarModelID = 99 }, "car_model_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if err == nil {
				t.Fatal("expected a business error")
			}
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected code %q, got %v", tc.code, err)
			}
		})
	}
}

func TestCreateOrder_SlotConflictPropagates(t *testing.T) {
	repo := seededRepo()
	repo.createErr = httperr.ErrBusiness("slot_already_booked")
	uc := NewCreateOrder(repo, "UTC", nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected the slot conflict to surface, got %v", err)
	}
}
