package handlers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWishlistAddMatchExcludesDuplicates(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	got := wishlistAddMatch(userID, productID)
	want := bson.M{
		"userId":             userID,
		"wishlist.productId": bson.M{"$ne": productID},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wishlistAddMatch = %v, want %v", got, want)
	}
}
