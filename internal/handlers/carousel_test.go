package handlers

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseReorderEntries(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	orders, err := parseReorderEntries([]reorderEntry{
		{ID: first.Hex(), DisplayOrder: 2},
		{ID: " " + second.Hex() + " ", DisplayOrder: 1},
	})
	if err != nil {
		t.Fatalf("parseReorderEntries returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(orders))
	}
	if orders[first] != 2 || orders[second] != 1 {
		t.Fatalf("unexpected order mapping: %v", orders)
	}
}

func TestParseReorderEntriesRejectsDuplicates(t *testing.T) {
	slideID := primitive.NewObjectID()
	_, err := parseReorderEntries([]reorderEntry{
		{ID: slideID.Hex(), DisplayOrder: 1},
		{ID: slideID.Hex(), DisplayOrder: 2},
	})
	if !errors.Is(err, errDuplicateSlide) {
		t.Fatalf("expected duplicate slide error, got %v", err)
	}
}

func TestParseReorderEntriesRejectsBadID(t *testing.T) {
	if _, err := parseReorderEntries([]reorderEntry{{ID: "not-an-id", DisplayOrder: 1}}); err == nil {
		t.Fatal("expected error for malformed id")
	}
}
