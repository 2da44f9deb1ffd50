package handlers

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

func TestPushRecentlyViewedPrepends(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	list := pushRecentlyViewed(nil, first, time.Now())
	list = pushRecentlyViewed(list, second, time.Now())

	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].ProductID != second {
		t.Fatal("expected most recent product first")
	}
}

func TestPushRecentlyViewedDeduplicates(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	list := []models.RecentlyViewedItem{
		{ProductID: second},
		{ProductID: first},
	}

	list = pushRecentlyViewed(list, first, time.Now())

	if len(list) != 2 {
		t.Fatalf("expected 2 entries after re-view, got %d", len(list))
	}
	if list[0].ProductID != first {
		t.Fatal("expected re-viewed product moved to front")
	}
	if list[1].ProductID != second {
		t.Fatal("expected other product preserved")
	}
}

func TestPushRecentlyViewedCapsAtLimit(t *testing.T) {
	var list []models.RecentlyViewedItem
	for i := 0; i < models.RecentlyViewedLimit+5; i++ {
		list = pushRecentlyViewed(list, primitive.NewObjectID(), time.Now())
		if len(list) > models.RecentlyViewedLimit {
			t.Fatalf("list exceeded limit: %d", len(list))
		}
	}

	if len(list) != models.RecentlyViewedLimit {
		t.Fatalf("expected %d entries, got %d", models.RecentlyViewedLimit, len(list))
	}

	newest := primitive.NewObjectID()
	list = pushRecentlyViewed(list, newest, time.Now())
	if list[0].ProductID != newest {
		t.Fatal("expected newest product first after trim")
	}
}
