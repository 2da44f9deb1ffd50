package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

func TestComputeOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: primitive.NewObjectID(), Price: 100, Quantity: 2},
		{ProductID: primitive.NewObjectID(), Price: 50, Quantity: 1},
	}

	totals := computeOrderTotals(items)

	if totals.ItemsTotal != 250 {
		t.Fatalf("expected items total 250, got %v", totals.ItemsTotal)
	}
	if totals.PlatformFee != 20 {
		t.Fatalf("expected platform fee 20, got %v", totals.PlatformFee)
	}
	if totals.Tax != 2.5 {
		t.Fatalf("expected tax 2.5, got %v", totals.Tax)
	}
	if totals.TotalAmount != 272.5 {
		t.Fatalf("expected total 272.5, got %v", totals.TotalAmount)
	}
}

func TestComputeOrderTotalsEmptyCart(t *testing.T) {
	totals := computeOrderTotals(nil)

	if totals.ItemsTotal != 0 {
		t.Fatalf("expected items total 0, got %v", totals.ItemsTotal)
	}
	if totals.TotalAmount != platformFee {
		t.Fatalf("expected total to equal platform fee, got %v", totals.TotalAmount)
	}
}

func TestComputeOrderTotalsRoundsTax(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: primitive.NewObjectID(), Price: 33.33, Quantity: 1},
	}

	totals := computeOrderTotals(items)

	if totals.Tax != 0.33 {
		t.Fatalf("expected tax rounded to 0.33, got %v", totals.Tax)
	}
	if totals.TotalAmount != 53.66 {
		t.Fatalf("expected total 53.66, got %v", totals.TotalAmount)
	}
}
