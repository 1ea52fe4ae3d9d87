package order

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/models"
)

// csvHeader is the fixed export projection. Column order is part of the
// contract with the spreadsheets the business already uses.
var csvHeader = []string{
	"ID",
	"Created At",
	"Customer Name",
	"Email",
	"Phone",
	"Car Make",
	"Car Model",
	"Car Year",
	"Car Plate",
	"Service",
	"Amount",
	"Appointment Date",
	"Appointment Time",
	"Address",
	"City",
	"Payment Method",
	"Payment Status",
	"Status",
}

type ExportCSV struct {
	repo domain.Repository
}

func NewExportCSV(repo domain.Repository) *ExportCSV {
	return &ExportCSV{repo: repo}
}

func (uc *ExportCSV) Execute(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
) ([]byte, error) {

	orders, err := uc.repo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return RenderCSV(orders)
}

// RenderCSV serializes orders with the fixed projection. Split out so the
// projection can be tested without a repository.
func RenderCSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, o := range orders {
		record := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.CarDetails.Make,
			o.CarDetails.Model,
			o.CarDetails.Year,
			o.CarDetails.Plate,
			o.ServiceName,
			strconv.FormatFloat(o.Amount, 'f', 2, 64),
			o.AppointmentDate.Format("2006-01-02"),
			o.AppointmentTime,
			o.Address,
			o.City,
			o.PaymentMethod,
			o.PaymentStatus,
			o.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
