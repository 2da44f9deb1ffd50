package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartLineMatchUsesFullTriple(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	filter := cartLineMatch(userID, productID, "M", "Black")

	if filter["userId"] != userID {
		t.Fatal("expected filter scoped to user")
	}

	elem, ok := filter["cart"].(bson.M)["$elemMatch"].(bson.M)
	if !ok {
		t.Fatal("expected $elemMatch on cart")
	}
	if elem["productId"] != productID || elem["size"] != "M" || elem["color"] != "Black" {
		t.Fatalf("expected triple match, got %v", elem)
	}
}

func TestCartLineMatchKeepsEmptyOptions(t *testing.T) {
	// products without size/color options store empty strings; the
	// filter must still match on them so two lines for the same
	// product with different options never collapse
	filter := cartLineMatch(primitive.NewObjectID(), primitive.NewObjectID(), "", "")

	elem := filter["cart"].(bson.M)["$elemMatch"].(bson.M)
	if _, present := elem["size"]; !present {
		t.Fatal("expected size key present even when empty")
	}
	if _, present := elem["color"]; !present {
		t.Fatal("expected color key present even when empty")
	}
}

func TestCartLinePullMatchesTriple(t *testing.T) {
	productID := primitive.NewObjectID()

	pull := cartLinePull(productID, "L", "Red")

	line, ok := pull["cart"].(bson.M)
	if !ok {
		t.Fatal("expected cart pull clause")
	}
	if line["productId"] != productID || line["size"] != "L" || line["color"] != "Red" {
		t.Fatalf("expected triple pull, got %v", line)
	}
}
