package order

import (
	"context"
	"errors"
	"time"

	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/models"
)

// fakeRepo is an in-memory Repository for usecase tests. Create assigns ids
// sequentially; CreateBooked can be primed to fail with createErr.
type fakeRepo struct {
	services  map[uint]*models.Service
	carModels map[uint]*models.CarModel
	settings  map[string]string

	orders map[uint]*models.Order
	nextID uint

	createErr error
	updateErr error
	updated   []*models.Order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:  map[uint]*models.Service{},
		carModels: map[uint]*models.CarModel{},
		settings:  map[string]string{},
		orders:    map[uint]*models.Order{},
		nextID:    1,
	}
}

var errNotFound = errors.New("record not found")

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if svc, ok := f.services[id]; ok {
		return svc, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetCarModel(_ context.Context, id uint) (*models.CarModel, error) {
	if cm, ok := f.carModels[id]; ok {
		return cm, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetSettings(_ context.Context) (map[string]string, error) {
	return f.settings, nil
}

func (f *fakeRepo) CreateBooked(_ context.Context, o *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	o.ID = f.nextID
	f.nextID++
	f.orders[o.ID] = o
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetByGatewayOrderID(_ context.Context, gatewayOrderID string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.RazorpayOrderID == gatewayOrderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) Update(_ context.Context, o *models.Order) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.orders[o.ID] = o
	f.updated = append(f.updated, o)
	return nil
}

func (f *fakeRepo) ListForDay(_ context.Context, start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == "Cancelled" {
			continue
		}
		if !o.AppointmentDate.Before(start) && o.AppointmentDate.Before(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeRepo) ListCreatedBetween(_ context.Context, start, end *time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if start != nil && o.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && o.CreatedAt.After(*end) {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(f.orders))
	f.orders = map[uint]*models.Order{}
	return n, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
