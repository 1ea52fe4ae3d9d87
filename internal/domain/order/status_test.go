package order

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  Status
		to    Status
		allow bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"same state is a no-op", StatusConfirmed, StatusConfirmed, true},

		{"pending skips to completed", StatusPending, StatusCompleted, false},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"completed reopened", StatusCompleted, StatusConfirmed, false},
		{"completed cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled revived", StatusCancelled, StatusPending, false},
		{"cancelled completed", StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.allow && err != nil {
				t.Fatalf("%s -> %s should be allowed, got %v", tc.from, tc.to, err)
			}
			if !tc.allow && err == nil {
				t.Fatalf("%s -> %s should be rejected", tc.from, tc.to)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Confirmed", "Completed", "Cancelled"} {
		if !IsValidStatus(s) {
			t.Fatalf("%q should be a valid status", s)
		}
	}
	for _, s := range []string{"pending", "Done", "", "CONFIRMED"} {
		if IsValidStatus(s) {
			t.Fatalf("%q should not be a valid status", s)
		}
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	if !IsValidPaymentMethod(MethodRazorpay) || !IsValidPaymentMethod(MethodCOD) {
		t.Fatal("both payment methods should validate")
	}
	if IsValidPaymentMethod("UPI") || IsValidPaymentMethod("cod") {
		t.Fatal("unknown or miscased methods should be rejected")
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Paid", "Failed"} {
		if !IsValidPaymentStatus(s) {
			t.Fatalf("%q should be a valid payment status", s)
		}
	}
	if IsValidPaymentStatus("Refunded") {
		t.Fatal("Refunded is not part of the payment status set")
	}
}
