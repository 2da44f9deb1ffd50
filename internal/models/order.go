package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses.
const (
	OrderProcessing    = "Processing"
	OrderShipped       = "Shipped"
	OrderDelivered     = "Delivered"
	OrderCancelled     = "Cancelled"
	OrderPaymentFailed = "Payment Failed"
)

// Payment statuses, set once at checkout.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// orderTransitions is the legal-transition table for order status updates.
var orderTransitions = map[string][]string{
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

// CanTransitionOrderStatus reports whether an order may move from one
// status to another. "Payment Failed" is reachable from any state only
// while payment is still pending; terminal states accept nothing.
func CanTransitionOrderStatus(from, to, paymentStatus string) bool {
	if to == OrderPaymentFailed {
		return paymentStatus == PaymentPending
	}
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidOrderStatus reports whether the value is a known order status.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderPaymentFailed:
		return true
	}
	return false
}

// OrderItem snapshots a cart line at checkout time.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
}

// PaymentInfo carries the gateway confirmation fields checked at verify
// time.
type PaymentInfo struct {
	GatewayOrderID string `bson:"gatewayOrderId" json:"gatewayOrderId"`
	PaymentID      string `bson:"paymentId" json:"paymentId"`
	Signature      string `bson:"signature" json:"-"`
}

// Order is created at checkout and mutated only by admin status updates;
// it is never deleted through the API. ShippingAddress is a copy, not a
// live reference.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ItemsTotal      float64            `bson:"itemsTotal" json:"itemsTotal"`
	PlatformFee     float64            `bson:"platformFee" json:"platformFee"`
	Tax             float64            `bson:"tax" json:"tax"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	ShippingAddress Address            `bson:"shippingAddress" json:"shippingAddress"`
	Payment         PaymentInfo        `bson:"payment" json:"payment"`
	OrderStatus     string             `bson:"orderStatus" json:"orderStatus"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
