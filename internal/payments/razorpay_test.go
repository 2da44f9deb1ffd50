package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestAmountToPaise(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{100.15, 10015},
		{272.50, 27250},
		{0.01, 1},
		{33.33, 3333},
		{250, 25000},
	}

	for _, tc := range tests {
		if got := amountToPaise(tc.amount); got != tc.want {
			t.Fatalf("amountToPaise(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_key_secret"
	signature := signPayload("order_123", "pay_456", secret)

	if !VerifySignature("order_123", "pay_456", signature, secret) {
		t.Fatal("expected genuine signature to verify")
	}
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	const secret = "test_key_secret"
	signature := signPayload("order_123", "pay_456", secret)

	if VerifySignature("order_999", "pay_456", signature, secret) {
		t.Fatal("signature must not verify for a different order id")
	}
	if VerifySignature("order_123", "pay_999", signature, secret) {
		t.Fatal("signature must not verify for a different payment id")
	}
	if VerifySignature("order_123", "pay_456", signature, "other_secret") {
		t.Fatal("signature must not verify under a different secret")
	}
	if VerifySignature("order_123", "pay_456", signature+"00", secret) {
		t.Fatal("signature must not verify when altered")
	}
}

func TestGatewayVerifySignature(t *testing.T) {
	gateway := NewGateway("rzp_test_key", "test_key_secret")
	signature := signPayload("order_abc", "pay_def", "test_key_secret")

	if !gateway.VerifySignature("order_abc", "pay_def", signature) {
		t.Fatal("expected gateway verification to pass with its own secret")
	}
	if gateway.VerifySignature("order_abc", "pay_def", "deadbeef") {
		t.Fatal("expected gateway verification to reject a bogus signature")
	}
}
