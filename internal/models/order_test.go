package models

import "testing"

func TestCanTransitionOrderStatus(t *testing.T) {
	tests := []struct {
		name          string
		from          string
		to            string
		paymentStatus string
		want          bool
	}{
		{"processing to shipped", OrderProcessing, OrderShipped, PaymentPaid, true},
		{"processing to cancelled", OrderProcessing, OrderCancelled, PaymentPaid, true},
		{"processing to delivered skips shipped", OrderProcessing, OrderDelivered, PaymentPaid, false},
		{"shipped to delivered", OrderShipped, OrderDelivered, PaymentPaid, true},
		{"shipped back to processing", OrderShipped, OrderProcessing, PaymentPaid, false},
		{"delivered is terminal", OrderDelivered, OrderCancelled, PaymentPaid, false},
		{"cancelled is terminal", OrderCancelled, OrderShipped, PaymentPaid, false},
		{"payment failed while pending", OrderProcessing, OrderPaymentFailed, PaymentPending, true},
		{"payment failed after paid", OrderProcessing, OrderPaymentFailed, PaymentPaid, false},
		{"payment failed is terminal", OrderPaymentFailed, OrderProcessing, PaymentPending, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CanTransitionOrderStatus(tc.from, tc.to, tc.paymentStatus)
			if got != tc.want {
				t.Fatalf("CanTransitionOrderStatus(%q, %q, %q) = %v, want %v",
					tc.from, tc.to, tc.paymentStatus, got, tc.want)
			}
		})
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderPaymentFailed} {
		if !ValidOrderStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if ValidOrderStatus("Returned") {
		t.Fatal("expected unknown status to be rejected")
	}
}
