package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/gleamhub/carwash-booking/internal/models"
)

// BuildInvoice renders a single-page booking invoice. Amounts come from the
// order snapshot, never from the current service record.
func BuildInvoice(o *models.Order) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Invoice #%d", o.ID), false)
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.Cell(0, 10, "Car Wash Booking Invoice")
	doc.Ln(14)

	doc.SetFont("Arial", "", 11)
	line := func(label, value string) {
		doc.SetFont("Arial", "B", 11)
		doc.Cell(50, 8, label)
		doc.SetFont("Arial", "", 11)
		doc.Cell(0, 8, value)
		doc.Ln(8)
	}

	line("Invoice No.", fmt.Sprintf("INV-%06d", o.ID))
	line("Booked On", o.CreatedAt.Format("02 Jan 2006 15:04"))
	doc.Ln(4)

	line("Customer", o.CustomerName)
	line("Phone", o.CustomerPhone)
	if o.CustomerEmail != "" {
		line("Email", o.CustomerEmail)
	}
	line("Address", fmt.Sprintf("%s, %s", o.Address, o.City))
	doc.Ln(4)

	line("Vehicle", fmt.Sprintf("%s %s (%s)", o.CarDetails.Make, o.CarDetails.Model, o.CarDetails.Year))
	if o.CarDetails.Plate != "" {
		line("Plate", o.CarDetails.Plate)
	}
	doc.Ln(4)

	line("Service", o.ServiceName)
	line("Appointment", fmt.Sprintf(
		"%s at %s",
		o.AppointmentDate.Format("02 Jan 2006"),
		o.AppointmentTime,
	))
	line("Payment", fmt.Sprintf("%s (%s)", o.PaymentMethod, o.PaymentStatus))
	doc.Ln(6)

	doc.SetFont("Arial", "B", 14)
	doc.Cell(50, 10, "Total")
	doc.Cell(0, 10, fmt.Sprintf("Rs. %.2f", o.Amount))
	doc.Ln(10)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
