package models

import "time"

// CarDetails is the customer's own description of the vehicle. It is free
// text, not a CarModel reference; the catalog is only consulted for pricing.
type CarDetails struct {
	Make  string `gorm:"size:60" json:"make"`
	Model string `gorm:"size:60" json:"model"`
	Year  string `gorm:"size:10" json:"year"`
	Plate string `gorm:"size:20" json:"plate"`
}

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:120" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	CarDetails CarDetails `gorm:"embedded;embeddedPrefix:car_" json:"car_details"`

	ServiceID uint `json:"service_id"`

	// ServiceName and Amount are frozen at booking time. Later edits to the
	// Service must not change what the customer agreed to pay.
	ServiceName string  `gorm:"size:120" json:"service_name"`
	Amount      float64 `json:"amount"`

	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `gorm:"size:10" json:"appointment_time"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`

	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:'Pending'" json:"payment_status"`

	RazorpayOrderID   string `gorm:"size:64" json:"razorpay_order_id"`
	RazorpayPaymentID string `gorm:"size:64" json:"razorpay_payment_id"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
