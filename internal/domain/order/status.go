package order

import "github.com/gleamhub/carwash-booking/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func isTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition enforces the order state machine: forward-only through
// Pending -> Confirmed -> Completed, with Cancelled reachable from any
// non-terminal state. Terminal states never change.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if isTerminal(from) {
		return httperr.ErrBusiness("invalid_status_transition")
	}

	switch to {
	case StatusCancelled:
		return nil
	case StatusConfirmed:
		if from == StatusPending {
			return nil
		}
	case StatusCompleted:
		if from == StatusConfirmed {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_status_transition")
}

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// ===============================
// Payment Method
// ===============================

const (
	MethodRazorpay = "Razorpay"
	MethodCOD      = "COD"
)

func IsValidPaymentMethod(m string) bool {
	return m == MethodRazorpay || m == MethodCOD
}
