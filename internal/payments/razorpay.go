package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway wraps the Razorpay client. Only order creation and signature
// verification touch this process; capture happens on the gateway side.
type Gateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewGateway(keyID, keySecret string) *Gateway {
	return &Gateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers a payment intent for the given amount (in the
// store currency) and returns the gateway response verbatim.
func (g *Gateway) CreateOrder(amount float64, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountToPaise(amount), // gateway wants the smallest unit
		"currency": "INR",
		"receipt":  receipt,
	}
	return g.client.Order.Create(data, nil)
}

// amountToPaise converts a rupee amount to paise. Rounding (not
// truncating) matters: 100.15 is stored as 100.14999..., and a plain
// int64 conversion would bill one paisa short.
func amountToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// VerifySignature recomputes the HMAC the gateway signs over
// "<orderId>|<paymentId>" and compares it to the client-supplied value in
// constant time.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.keySecret)
}

func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
