package repository

import (
	"context"
	"hash/fnv"
	"time"

	"gorm.io/gorm"

	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *OrderGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *OrderGormRepository) GetCarModel(
	ctx context.Context,
	id uint,
) (*models.CarModel, error) {

	var cm models.CarModel
	if err := r.db.WithContext(ctx).First(&cm, id).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *OrderGormRepository) GetSettings(
	ctx context.Context,
) (map[string]string, error) {

	var rows []models.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// --------------------------------------------------
// Order (create / slot conflict)
// --------------------------------------------------

func (r *OrderGormRepository) CreateBooked(
	ctx context.Context,
	o *models.Order,
) error {

	start, end := domain.DayBounds(o.AppointmentDate)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serialize concurrent bookings of the same (day, slot) pair for the
		// duration of the transaction. Counting alone cannot do this: two
		// first bookings see zero rows each, and postgres rejects locking
		// clauses on aggregate queries anyway.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			slotLockKey(start, o.AppointmentTime),
		).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Order{}).
			Where(
				"appointment_date >= ? AND appointment_date < ? AND appointment_time = ? AND status <> ?",
				start, end, o.AppointmentTime, string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(o).Error
	})
}

// slotLockKey derives the advisory-lock key for a day/slot pair. The key only
// has to be stable within one database, so a 64-bit FNV hash is enough.
func slotLockKey(day time.Time, slot string) int64 {
	h := fnv.New64a()
	h.Write([]byte(day.Format("2006-01-02") + "|" + slot))
	return int64(h.Sum64())
}

// --------------------------------------------------
// Order (read / state change)
// --------------------------------------------------

func (r *OrderGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetByGatewayOrderID(
	ctx context.Context,
	gatewayOrderID string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Where("razorpay_order_id = ?", gatewayOrderID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) Update(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *OrderGormRepository) ListForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where(
			"appointment_date >= ? AND appointment_date < ? AND status <> ?",
			start, end, string(domain.StatusCancelled),
		).
		Order("appointment_time ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderGormRepository) ListAll(
	ctx context.Context,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListCreatedBetween(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
) ([]models.Order, error) {

	q := r.db.WithContext(ctx).Model(&models.Order{})
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}

	var orders []models.Order
	if err := q.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) DeleteAll(
	ctx context.Context,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Order{})

	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
