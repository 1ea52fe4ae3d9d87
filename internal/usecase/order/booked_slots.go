package order

import (
	"context"
	"time"

	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/timezone"
)

type BookedSlots struct {
	repo domain.Repository
	tz   string
}

func NewBookedSlots(repo domain.Repository, tz string) *BookedSlots {
	return &BookedSlots{repo: repo, tz: tz}
}

// Execute returns the appointment times already taken on the given day.
// It is advisory; creation re-checks the slot under lock.
func (uc *BookedSlots) Execute(
	ctx context.Context,
	dateStr string,
) ([]string, error) {

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, end := domain.DayBounds(date)

	orders, err := uc.repo.ListForDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	booked := make([]string, 0, len(orders))
	for _, o := range orders {
		booked = append(booked, o.AppointmentTime)
	}

	return booked, nil
}
