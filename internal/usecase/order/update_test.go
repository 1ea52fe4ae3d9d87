package order

import (
	"context"
	"testing"

	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
)

func strPtr(s string) *string { return &s }

func repoWithOrderInStatus(status string) *fakeRepo {
	repo := newFakeRepo()
	repo.orders[3] = &models.Order{
		ID:            3,
		Status:        status,
		PaymentStatus: "Pending",
	}
	return repo
}

func TestUpdateOrder_ConfirmsPendingOrder(t *testing.T) {
	repo := repoWithOrderInStatus("Pending")
	uc := NewUpdateOrder(repo, nil)

	o, err := uc.Execute(context.Background(), "admin@carwash.local", UpdateOrderInput{
		ID:     3,
		Status: strPtr("Confirmed"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if o.Status != "Confirmed" {
		t.Fatalf("status = %q, want Confirmed", o.Status)
	}
}

func TestUpdateOrder_RejectsBackwardTransition(t *testing.T) {
	repo := repoWithOrderInStatus("Completed")
	uc := NewUpdateOrder(repo, nil)

	_, err := uc.Execute(context.Background(), "admin@carwash.local", UpdateOrderInput{
		ID:     3,
		Status: strPtr("Pending"),
	})
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("expected invalid_status_transition, got %v", err)
	}
	if repo.orders[3].Status != "Completed" {
		t.Fatal("rejected transition must not persist")
	}
}

func TestUpdateOrder_RejectsUnknownStatus(t *testing.T) {
	repo := repoWithOrderInStatus("Pending")
	uc := NewUpdateOrder(repo, nil)

	_, err := uc.Execute(context.Background(), "admin@carwash.local", UpdateOrderInput{
		ID:     3,
		Status: strPtr("Archived"),
	})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestUpdateOrder_PaymentStatusAndNotes(t *testing.T) {
	repo := repoWithOrderInStatus("Confirmed")
	uc := NewUpdateOrder(repo, nil)

	o, err := uc.Execute(context.Background(), "admin@carwash.local", UpdateOrderInput{
		ID:            3,
		PaymentStatus: strPtr("Paid"),
		Notes:         strPtr("customer paid cash on site"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if o.PaymentStatus != "Paid" {
		t.Fatalf("payment status = %q", o.PaymentStatus)
	}
	if o.Notes != "customer paid cash on site" {
		t.Fatalf("notes = %q", o.Notes)
	}
	if o.Status != "Confirmed" {
		t.Fatal("untouched fields must survive a partial update")
	}
}

func TestUpdateOrder_UnknownOrder(t *testing.T) {
	uc := NewUpdateOrder(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), "admin@carwash.local", UpdateOrderInput{
		ID:     99,
		Status: strPtr("Confirmed"),
	})
	if !httperr.IsBusiness(err, "order_not_found") {
		t.Fatalf("expected order_not_found, got %v", err)
	}
}
