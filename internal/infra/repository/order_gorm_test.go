package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/models"
)

func mockedRepo(t *testing.T) (*OrderGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return NewOrderGormRepository(db), mock
}

func TestCreateBooked_FreeSlot(t *testing.T) {
	repo, mock := mockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	o := &models.Order{
		CustomerName:    "Asha Patel",
		AppointmentDate: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		Status:          "Pending",
	}

	if err := repo.CreateBooked(context.Background(), o); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if o.ID != 1 {
		t.Fatalf("order id not assigned, got %d", o.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooked_SlotConflictRollsBack(t *testing.T) {
	repo, mock := mockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	o := &models.Order{
		AppointmentDate: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
	}

	err := repo.CreateBooked(context.Background(), o)
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooked_TakesAdvisoryLockBeforeCounting(t *testing.T) {
	repo, mock := mockedRepo(t)

	date := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	start, _ := domain.DayBounds(date)

	mock.ExpectBegin()
	// two concurrent bookings of the same slot both count zero rows, so the
	// transaction serializes on a per-(day, slot) advisory lock first
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WithArgs(slotLockKey(start, "11:00")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// the availability count must stay a plain aggregate: postgres rejects
	// locking clauses on aggregate queries, so the regex is anchored to the
	// final placeholder
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE appointment_date >= \$1 AND appointment_date < \$2 AND appointment_time = \$3 AND status <> \$4$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	o := &models.Order{
		AppointmentDate: date,
		AppointmentTime: "11:00",
	}

	if err := repo.CreateBooked(context.Background(), o); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSlotLockKeyDistinguishesDayAndSlot(t *testing.T) {
	day := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	if slotLockKey(day, "10:00") != slotLockKey(day, "10:00") {
		t.Fatal("key not stable for identical day/slot")
	}
	if slotLockKey(day, "10:00") == slotLockKey(day, "11:00") {
		t.Fatal("different slots share a key")
	}
	if slotLockKey(day, "10:00") == slotLockKey(next, "10:00") {
		t.Fatal("different days share a key")
	}
}

func TestGetByGatewayOrderID(t *testing.T) {
	repo, mock := mockedRepo(t)

	rows := sqlmock.NewRows([]string{"id", "razorpay_order_id", "status"}).
		AddRow(9, "order_gw9", "Pending")
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE razorpay_order_id`).
		WithArgs("order_gw9", 1).
		WillReturnRows(rows)

	o, err := repo.GetByGatewayOrderID(context.Background(), "order_gw9")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if o.ID != 9 {
		t.Fatalf("wrong order resolved: %d", o.ID)
	}
}

func TestGetSettingsBuildsMap(t *testing.T) {
	repo, mock := mockedRepo(t)

	rows := sqlmock.NewRows([]string{"id", "key", "value"}).
		AddRow(1, "charge_sedan", "100").
		AddRow(2, "charge_suv", "200")
	mock.ExpectQuery(`SELECT \* FROM "settings"`).WillReturnRows(rows)

	settings, err := repo.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if settings["charge_sedan"] != "100" || settings["charge_suv"] != "200" {
		t.Fatalf("settings map wrong: %v", settings)
	}
}

func TestListForDayExcludesCancelled(t *testing.T) {
	repo, mock := mockedRepo(t)

	start := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	rows := sqlmock.NewRows([]string{"id", "appointment_time", "status"}).
		AddRow(1, "10:00", "Pending")
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE appointment_date >= .+ AND status <>`).
		WithArgs(start, end, "Cancelled").
		WillReturnRows(rows)

	orders, err := repo.ListForDay(context.Background(), start, end)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 || orders[0].AppointmentTime != "10:00" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteAllReportsCount(t *testing.T) {
	repo, mock := mockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := repo.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("deleted = %d, want 3", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
