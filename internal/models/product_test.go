package models

import "testing"

func TestAverageRating(t *testing.T) {
	product := Product{Reviews: []Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 2},
	}}
	got := product.AverageRating()
	want := 11.0 / 3.0
	if got != want {
		t.Fatalf("AverageRating() = %v, want %v", got, want)
	}
}

func TestAverageRatingNoReviews(t *testing.T) {
	if got := (Product{}).AverageRating(); got != 0 {
		t.Fatalf("AverageRating() = %v, want 0 for unreviewed product", got)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("Footwear") {
		t.Fatal("expected Footwear to be a valid category")
	}
	if ValidCategory("footwear") {
		t.Fatal("category match must be case sensitive")
	}
	if ValidCategory("Garden") {
		t.Fatal("expected unknown category to be rejected")
	}
}
