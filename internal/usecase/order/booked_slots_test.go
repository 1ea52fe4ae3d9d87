package order

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
)

func TestBookedSlots_ReturnsTakenTimes(t *testing.T) {
	repo := newFakeRepo()
	day := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	repo.orders[1] = &models.Order{ID: 1, AppointmentDate: day, AppointmentTime: "10:00", Status: "Pending"}
	repo.orders[2] = &models.Order{ID: 2, AppointmentDate: day, AppointmentTime: "14:00", Status: "Confirmed"}
	repo.orders[3] = &models.Order{ID: 3, AppointmentDate: day, AppointmentTime: "11:00", Status: "Cancelled"}
	repo.orders[4] = &models.Order{ID: 4, AppointmentDate: day.AddDate(0, 0, 1), AppointmentTime: "10:00", Status: "Pending"}

	uc := NewBookedSlots(repo, "UTC")

	booked, err := uc.Execute(context.Background(), "2026-09-15")
	if err != nil {
		t.Fatalf("booked slots failed: %v", err)
	}

	sort.Strings(booked)
	want := []string{"10:00", "14:00"}
	if len(booked) != len(want) {
		t.Fatalf("booked = %v, want %v", booked, want)
	}
	for i := range want {
		if booked[i] != want[i] {
			t.Fatalf("booked = %v, want %v", booked, want)
		}
	}
}

func TestBookedSlots_EmptyDay(t *testing.T) {
	uc := NewBookedSlots(newFakeRepo(), "UTC")

	booked, err := uc.Execute(context.Background(), "2026-09-15")
	if err != nil {
		t.Fatalf("booked slots failed: %v", err)
	}
	if booked == nil {
		t.Fatal("an empty day should yield an empty slice, not nil")
	}
	if len(booked) != 0 {
		t.Fatalf("expected no booked slots, got %v", booked)
	}
}

func TestBookedSlots_BadDate(t *testing.T) {
	uc := NewBookedSlots(newFakeRepo(), "UTC")

	_, err := uc.Execute(context.Background(), "15/09/2026")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}
