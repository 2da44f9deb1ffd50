package handlers

import (
	"math"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

// Order pricing: a fixed platform fee plus 1% tax on the items subtotal.
const (
	platformFee = 20.0
	taxRate     = 0.01
)

type orderTotals struct {
	ItemsTotal  float64
	PlatformFee float64
	Tax         float64
	TotalAmount float64
}

// computeOrderTotals sums line price x quantity and applies the platform
// fee and tax. Amounts are rounded to two decimal places.
func computeOrderTotals(items []models.OrderItem) orderTotals {
	itemsTotal := 0.0
	for _, item := range items {
		itemsTotal += item.Price * float64(item.Quantity)
	}

	tax := roundMoney(itemsTotal * taxRate)
	return orderTotals{
		ItemsTotal:  roundMoney(itemsTotal),
		PlatformFee: platformFee,
		Tax:         tax,
		TotalAmount: roundMoney(itemsTotal + platformFee + tax),
	}
}

func roundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}
