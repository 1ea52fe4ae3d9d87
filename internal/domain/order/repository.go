package order

import (
	"context"
	"time"

	"github.com/gleamhub/carwash-booking/internal/models"
)

type Repository interface {
	// -------- Catalog lookups --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetCarModel(
		ctx context.Context,
		id uint,
	) (*models.CarModel, error)

	GetSettings(
		ctx context.Context,
	) (map[string]string, error)

	// -------- Order (create / slot conflict) --------

	// CreateBooked persists the order after asserting, under lock, that the
	// (day, slot) pair is still free. Returns the slot_already_booked
	// business error on a conflict.
	CreateBooked(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Order (read / state change) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Order, error)

	GetByGatewayOrderID(
		ctx context.Context,
		gatewayOrderID string,
	) (*models.Order, error)

	Update(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Availability / listing --------
	ListForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Order, error)

	ListAll(
		ctx context.Context,
	) ([]models.Order, error)

	ListCreatedBetween(
		ctx context.Context,
		start *time.Time,
		end *time.Time,
	) ([]models.Order, error)

	DeleteAll(
		ctx context.Context,
	) (int64, error)
}
